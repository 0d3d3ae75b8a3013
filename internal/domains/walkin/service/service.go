package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/walkin/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/gdto"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/slot"
	"github.com/savioruz/turfics/pkg/supabase"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type WalkInService interface {
	Submit(ctx context.Context, sess *session.Session, req dto.SubmitRequest) (dto.SubmitResponse, error)
	Bookings(ctx context.Context, sess *session.Session, req dto.OwnerBookingsRequest) (dto.OwnerBookingsResponse, error)
	UpdateBooking(ctx context.Context, sess *session.Session, id int64, req dto.UpdateBookingRequest) (dto.MessageResponse, error)
	Turfs(ctx context.Context, sess *session.Session) ([]turfapi.Turf, error)
	CreateTurf(ctx context.Context, sess *session.Session, req dto.CreateTurfRequest) (dto.CreatedResponse, error)
	CreateGame(ctx context.Context, sess *session.Session, turfID int64, req dto.CreateGameRequest) (dto.CreatedResponse, error)
	CreateUnit(ctx context.Context, sess *session.Session, gameID int64, req dto.CreateUnitRequest) (dto.CreatedResponse, error)
	UploadTurfImage(ctx context.Context, file *multipart.FileHeader) (dto.ImageResponse, error)
	Analytics(ctx context.Context, sess *session.Session, req dto.AnalyticsRequest) (dto.AnalyticsResponse, error)
}

type walkInService struct {
	venues  turfapi.VenueAPI
	owner   turfapi.OwnerAPI
	cache   redis.IRedisCache
	storage supabase.Storage
	cfg     *config.Config
	logger  logger.Interface
}

func New(
	v turfapi.VenueAPI,
	o turfapi.OwnerAPI,
	c redis.IRedisCache,
	st supabase.Storage,
	cfg *config.Config,
	l logger.Interface,
) WalkInService {
	return &walkInService{
		venues:  v,
		owner:   o,
		cache:   c,
		storage: st,
		cfg:     cfg,
		logger:  l,
	}
}

const (
	defaultLimit = 10

	// Covers both the turf list and every turf detail entry of the venues cache.
	cacheTurfPrefix = "turf"

	cacheAnalyticsKey = "owner-analytics"

	// Scatter volumes arrive multiplied by this for charting.
	scatterScale = 20

	MaxImageSize = 10 << 20 // 10MB

	identifier = "service - walkin - %s"
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func (s *walkInService) plan(ctx context.Context, sess *session.Session, req dto.SubmitRequest) ([]slot.Block, error) {
	wire, err := s.venues.ListSlots(ctx, sess, req.UnitID, req.Date)
	if err != nil {
		s.logger.Error(identifier, "list slots: "+err.Error())

		return nil, err
	}

	available, err := turfapi.ToSlots(wire)
	if err != nil {
		s.logger.Error(identifier, "parse slots: "+err.Error())

		return nil, failure.Upstream(http.StatusBadGateway, "turfics api returned malformed slots")
	}

	selection, err := slot.Select(available, req.SlotIDs)
	if err != nil {
		if errors.Is(err, slot.ErrSlotUnavailable) {
			return nil, failure.Conflict(err.Error())
		}

		return nil, failure.BadRequest(err)
	}

	policy := slot.DefaultPolicy().With(s.cfg.Booking.SlotDuration, s.cfg.Booking.MinSlots)

	blocks, err := slot.Plan(selection.Slots(), slot.Mode(req.Mode), policy)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	return blocks, nil
}

// Submit sends one walk-in or block request per contiguous run of the
// selected slots. Block mode accepts single slots; book mode enforces the
// minimum duration per run before anything is sent.
func (s *walkInService) Submit(ctx context.Context, sess *session.Session, req dto.SubmitRequest) (res dto.SubmitResponse, err error) {
	blocks, err := s.plan(ctx, sess, req)
	if err != nil {
		return res, err
	}

	var submit slot.SubmitFunc[turfapi.OwnerBookingResponse]

	if slot.Mode(req.Mode) == slot.ModeBlock {
		reason := req.GuestName
		if reason == "" {
			reason = constant.BlockDefaultReason
		}

		submit = func(ctx context.Context, b slot.Block) (turfapi.OwnerBookingResponse, error) {
			return s.owner.Block(ctx, sess, turfapi.BlockRequest{
				TurfID:       req.TurfID,
				UnitID:       req.UnitID,
				StartTime:    helper.FormatInstant(b.Start),
				DurationMins: b.DurationMinutes(),
				Reason:       reason,
			})
		}
	} else {
		guest := req.GuestName
		if guest == "" {
			guest = constant.WalkInDefaultGuest
		}

		mode := req.PaymentMode
		if mode == "" {
			mode = constant.PaymentModeCash
		}

		status := req.PaymentStatus
		if status == "" {
			status = constant.PaymentStatusPaid
		}

		submit = func(ctx context.Context, b slot.Block) (turfapi.OwnerBookingResponse, error) {
			return s.owner.WalkIn(ctx, sess, turfapi.WalkInRequest{
				TurfID:        req.TurfID,
				UnitID:        req.UnitID,
				StartTime:     helper.FormatInstant(b.Start),
				DurationMins:  b.DurationMinutes(),
				GuestName:     guest,
				GuestPhone:    req.GuestPhone,
				PaymentMode:   mode,
				PaymentStatus: status,
				Price:         b.Price,
			})
		}
	}

	created, err := slot.SubmitAll(ctx, blocks, submit)
	if err != nil {
		s.logger.Error(identifier, "submit "+req.Mode+": "+err.Error())

		return res, err
	}

	res = dto.SubmitResponse{
		Mode:       req.Mode,
		Message:    "Bookings confirmed",
		BookingIDs: make([]int64, len(created)),
		TotalPrice: slot.TotalPrice(blocks),
		Blocks:     make([]dto.BlockResponse, len(blocks)),
	}

	if slot.Mode(req.Mode) == slot.ModeBlock {
		res.Message = "Slots blocked"
		res.TotalPrice = 0
	}

	for i, c := range created {
		res.BookingIDs[i] = c.BookingID
	}

	for i, b := range blocks {
		ids := make([]string, len(b.Slots))
		for j, sl := range b.Slots {
			ids[j] = sl.ID
		}

		res.Blocks[i] = dto.BlockResponse{
			Start:        b.Start,
			End:          b.End,
			DurationMins: b.DurationMinutes(),
			Price:        b.Price,
			SlotIDs:      ids,
		}
	}

	return res, nil
}

func (s *walkInService) Bookings(ctx context.Context, sess *session.Session, req dto.OwnerBookingsRequest) (res dto.OwnerBookingsResponse, err error) {
	all, err := s.owner.OwnerBookings(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "owner bookings: "+err.Error())

		return res, err
	}

	if req.Status != "" {
		filtered := all[:0:0]

		for _, b := range all {
			if strings.EqualFold(b.Status, req.Status) {
				filtered = append(filtered, b)
			}
		}

		all = filtered
	}

	if req.Page <= 0 {
		req.Page = 1
	}

	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	start, end := helper.Paginate(len(all), req.Page, req.Limit)

	return dto.OwnerBookingsResponse{
		Bookings: all[start:end],
		Pagination: gdto.PaginationResponse{
			Page:       req.Page,
			Limit:      req.Limit,
			TotalItems: len(all),
			TotalPages: helper.CalculateTotalPages(len(all), req.Limit),
		},
	}, nil
}

func (s *walkInService) UpdateBooking(ctx context.Context, sess *session.Session, id int64, req dto.UpdateBookingRequest) (res dto.MessageResponse, err error) {
	if req.Empty() {
		return res, failure.BadRequestFromString("nothing to update")
	}

	msg, err := s.owner.UpdateOwnerBooking(ctx, sess, id, turfapi.OwnerBookingUpdate{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("update booking %d: %s", id, err.Error()))

		return res, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *walkInService) Turfs(ctx context.Context, sess *session.Session) ([]turfapi.Turf, error) {
	turfs, err := s.owner.OwnerTurfs(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "owner turfs: "+err.Error())

		return nil, err
	}

	return turfs, nil
}

// invalidate drops the public turf views so new venues show up in discovery.
func (s *walkInService) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheTurfPrefix)); err != nil {
			s.logger.Error(identifier, "clear turf cache: "+err.Error())
		}
	}()
}

func (s *walkInService) CreateTurf(ctx context.Context, sess *session.Session, req dto.CreateTurfRequest) (res dto.CreatedResponse, err error) {
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return res, failure.BadRequestFromString("latitude and longitude must be set together")
	}

	created, err := s.owner.CreateTurf(ctx, sess, turfapi.TurfRequest{
		Name:        req.Name,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   req.Amenities,
		ImageURL:    req.ImageURL,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		s.logger.Error(identifier, "create turf: "+err.Error())

		return res, err
	}

	s.invalidate(ctx)

	return dto.CreatedResponse{ID: created.TurfID, Message: created.Message}, nil
}

func (s *walkInService) CreateGame(ctx context.Context, sess *session.Session, turfID int64, req dto.CreateGameRequest) (res dto.CreatedResponse, err error) {
	duration := req.SlotDuration
	if duration == 0 {
		duration = 60
	}

	category := req.GameCategory
	if category == "" {
		category = "team"
	}

	created, err := s.owner.CreateGame(ctx, sess, turfID, turfapi.GameRequest{
		SportType:    req.SportType,
		GameCategory: category,
		DefaultPrice: req.DefaultPrice,
		SlotDuration: duration,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("create game on turf %d: %s", turfID, err.Error()))

		return res, err
	}

	s.invalidate(ctx)

	return dto.CreatedResponse{ID: created.GameID, Message: created.Message}, nil
}

func (s *walkInService) CreateUnit(ctx context.Context, sess *session.Session, gameID int64, req dto.CreateUnitRequest) (res dto.CreatedResponse, err error) {
	created, err := s.owner.CreateUnit(ctx, sess, gameID, turfapi.UnitRequest{
		Name:          req.Name,
		UnitType:      req.UnitType,
		Capacity:      req.Capacity,
		PriceOverride: req.PriceOverride,
		Indoor:        req.Indoor,
		HasLighting:   req.HasLighting,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("create unit on game %d: %s", gameID, err.Error()))

		return res, err
	}

	s.invalidate(ctx)

	return dto.CreatedResponse{ID: created.UnitID, Message: created.Message}, nil
}

// UploadTurfImage stores a turf photo and returns the public URL to pass as image_url.
func (s *walkInService) UploadTurfImage(ctx context.Context, file *multipart.FileHeader) (res dto.ImageResponse, err error) {
	if file == nil {
		return res, failure.BadRequestFromString("no file uploaded")
	}

	if file.Size > MaxImageSize {
		return res, failure.BadRequestFromString(fmt.Sprintf("file %s exceeds maximum size of %d bytes", file.Filename, MaxImageSize))
	}

	contentType := file.Header.Get("Content-Type")

	ext, ok := imageTypes[contentType]
	if !ok {
		return res, failure.BadRequestFromString("unsupported image type " + contentType)
	}

	if strings.EqualFold(filepath.Ext(file.Filename), ".jpeg") && ext == ".jpg" {
		ext = ".jpeg"
	}

	f, err := file.Open()
	if err != nil {
		s.logger.Error(identifier, "open image "+file.Filename+": "+err.Error())

		return res, failure.InternalError(err)
	}
	defer f.Close()

	fileURL, err := s.storage.Upload(ctx, supabase.TurfsStoragePath, ext, contentType, f)
	if err != nil {
		s.logger.Error(identifier, "upload image "+file.Filename+": "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.ImageResponse{URL: fileURL}, nil
}

func analyticsQuery(req dto.AnalyticsRequest) (turfapi.AnalyticsQuery, error) {
	q := turfapi.AnalyticsQuery{Range: req.Range, StartDate: req.StartDate, EndDate: req.EndDate}
	if q.Range == "" {
		q.Range = constant.AnalyticsRangeMonth
	}

	if (q.StartDate == "") != (q.EndDate == "") {
		return q, failure.BadRequestFromString("start_date and end_date must be set together")
	}

	if q.StartDate == "" {
		if q.Range == constant.AnalyticsRangeCustom {
			return q, failure.BadRequestFromString("custom range needs start_date and end_date")
		}

		return q, nil
	}

	start, err := time.Parse(constant.DateFormat, q.StartDate)
	if err != nil {
		return q, failure.BadRequest(err)
	}

	end, err := time.Parse(constant.DateFormat, q.EndDate)
	if err != nil {
		return q, failure.BadRequest(err)
	}

	if end.Before(start) {
		return q, failure.BadRequestFromString("end_date is before start_date")
	}

	q.Range = constant.AnalyticsRangeCustom

	return q, nil
}

// Analytics reports revenue, booking times and customer mix for the owner's
// turfs. Views are cached per owner and window.
func (s *walkInService) Analytics(ctx context.Context, sess *session.Session, req dto.AnalyticsRequest) (res dto.AnalyticsResponse, err error) {
	q, err := analyticsQuery(req)
	if err != nil {
		return res, err
	}

	key := helper.BuildCacheKey(cacheAnalyticsKey, helper.GenerateUniqueKey(map[string]string{
		"user":  sess.Identity().UserID,
		"range": q.Range,
		"start": q.StartDate,
		"end":   q.EndDate,
	}))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	raw, err := s.owner.OwnerAnalytics(ctx, sess, q)
	if err != nil {
		s.logger.Error(identifier, "owner analytics: "+err.Error())

		return res, err
	}

	res = analyticsView(q, raw)

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

func analyticsView(q turfapi.AnalyticsQuery, raw turfapi.OwnerAnalytics) dto.AnalyticsResponse {
	res := dto.AnalyticsResponse{
		Range:             q.Range,
		StartDate:         q.StartDate,
		EndDate:           q.EndDate,
		AdvanceCollected:  raw.AdvanceCollected,
		PendingCollection: raw.PendingCollection,
		RevenueBreakdown:  raw.RevenueBreakdown,
		BookingTimes:      make([]dto.BookingTime, 0, len(raw.BookingScatter)),
		UserRetention:     raw.UserRetention,
		TournamentStats:   raw.TournamentStats,
		TopRegions:        raw.TopRegions,
		AvgPaymentTime:    raw.AvgPaymentTime,
	}

	for _, r := range raw.RevenueBreakdown {
		res.TotalRevenue += r.Value
	}

	var played [24]int

	for _, p := range raw.BookingScatter {
		n := p.Z / scatterScale
		res.TotalBookings += n
		res.BookingTimes = append(res.BookingTimes, dto.BookingTime{BookedHour: p.X, PlayedHour: p.Y, Bookings: n})

		if p.Y >= 0 && p.Y < len(played) {
			played[p.Y] += n
		}
	}

	sort.Slice(res.BookingTimes, func(i, j int) bool {
		a, b := res.BookingTimes[i], res.BookingTimes[j]
		if a.BookedHour != b.BookedHour {
			return a.BookedHour < b.BookedHour
		}

		return a.PlayedHour < b.PlayedHour
	})

	peak := -1

	for h, n := range played {
		if n > 0 && (peak < 0 || n > played[peak]) {
			peak = h
		}
	}

	if peak >= 0 {
		res.PeakPlayHour = &peak
	}

	return res
}
