package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/bookings/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/export"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/gdto"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/hold"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/mail"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/slot"
	"github.com/savioruz/turfics/pkg/supabase"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type BookingService interface {
	CreateHold(ctx context.Context, sess *session.Session, req dto.CreateHoldRequest) (dto.HoldResponse, error)
	GetHold(ctx context.Context, sess *session.Session, id string) (dto.HoldResponse, error)
	WatchHold(ctx context.Context, sess *session.Session, id string) (<-chan hold.Snapshot, func(), error)
	ConfirmHold(ctx context.Context, sess *session.Session, id string, req dto.ConfirmHoldRequest) (dto.HoldResponse, error)
	CancelHold(ctx context.Context, sess *session.Session, id string) error
	PaymentSummary(ctx context.Context, sess *session.Session, id string, req dto.PaymentSummaryRequest) (dto.PaymentSummaryResponse, error)
	MyBookings(ctx context.Context, sess *session.Session, req dto.MyBookingsRequest) (dto.BookingsResponse, error)
	CancelBooking(ctx context.Context, sess *session.Session, id int64) (dto.MessageResponse, error)
	Invoice(ctx context.Context, sess *session.Session, id int64) (string, []byte, error)
	ShareInvoice(ctx context.Context, sess *session.Session, id int64, req dto.ShareInvoiceRequest) (dto.ShareInvoiceResponse, error)
	HostMatch(ctx context.Context, sess *session.Session, id int64, req dto.HostMatchRequest) (dto.HostMatchResponse, error)
}

type bookingService struct {
	venues   turfapi.VenueAPI
	bookings turfapi.BookingAPI
	matches  turfapi.MatchAPI
	holds    *hold.Registry
	storage  supabase.Storage
	mail     mail.Service
	cfg      *config.Config
	logger   logger.Interface
}

func New(
	v turfapi.VenueAPI,
	b turfapi.BookingAPI,
	m turfapi.MatchAPI,
	h *hold.Registry,
	st supabase.Storage,
	ms mail.Service,
	cfg *config.Config,
	l logger.Interface,
) BookingService {
	return &bookingService{
		venues:   v,
		bookings: b,
		matches:  m,
		holds:    h,
		storage:  st,
		mail:     ms,
		cfg:      cfg,
		logger:   l,
	}
}

const (
	defaultLimit = 10

	identifier = "service - booking - %s"
)

// CreateHold books every contiguous block of the selected slots and starts the
// payment countdown over the resulting bookings.
func (s *bookingService) CreateHold(ctx context.Context, sess *session.Session, req dto.CreateHoldRequest) (res dto.HoldResponse, err error) {
	wire, err := s.venues.ListSlots(ctx, sess, req.UnitID, req.Date)
	if err != nil {
		s.logger.Error(identifier, "list slots: "+err.Error())

		return res, err
	}

	available, err := turfapi.ToSlots(wire)
	if err != nil {
		s.logger.Error(identifier, "parse slots: "+err.Error())

		return res, failure.Upstream(http.StatusBadGateway, "turfics api returned malformed slots")
	}

	selection, err := slot.Select(available, req.SlotIDs)
	if err != nil {
		if errors.Is(err, slot.ErrSlotUnavailable) {
			return res, failure.Conflict(err.Error())
		}

		return res, failure.BadRequest(err)
	}

	policy := slot.DefaultPolicy().With(s.cfg.Booking.SlotDuration, s.cfg.Booking.MinSlots)

	blocks, err := slot.Plan(selection.Slots(), slot.ModeBook, policy)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	created, err := slot.SubmitAll(ctx, blocks, func(ctx context.Context, b slot.Block) (turfapi.CreateBookingResponse, error) {
		return s.bookings.CreateBooking(ctx, sess, turfapi.CreateBookingRequest{
			TurfUnitID: req.UnitID,
			StartTime:  helper.FormatInstant(b.Start),
			EndTime:    helper.FormatInstant(b.End),
			TotalPrice: b.Price,
		})
	})
	if err != nil {
		s.logger.Error(identifier, "create bookings: "+err.Error())

		return res, err
	}

	ids := make([]int64, len(created))
	for i, c := range created {
		ids[i] = c.BookingID
	}

	h := s.holds.Create(sess.Identity().UserID, ids, slot.TotalPrice(blocks))

	res = dto.HoldResponse{Snapshot: h.Snapshot(), Blocks: make([]dto.BlockResponse, len(blocks))}

	for i, b := range blocks {
		slotIDs := make([]string, len(b.Slots))
		for j, sl := range b.Slots {
			slotIDs[j] = sl.ID
		}

		res.Blocks[i] = dto.BlockResponse{
			Start:        b.Start,
			End:          b.End,
			DurationMins: b.DurationMinutes(),
			Price:        b.Price,
			SlotIDs:      slotIDs,
		}
	}

	return res, nil
}

// owned returns the hold when it belongs to the session user. Other users see it as missing.
func (s *bookingService) owned(sess *session.Session, id string) (*hold.Hold, error) {
	h, err := s.holds.Get(id)
	if err != nil || h.Owner() != sess.Identity().UserID {
		return nil, failure.NotFound("hold")
	}

	return h, nil
}

func (s *bookingService) GetHold(_ context.Context, sess *session.Session, id string) (res dto.HoldResponse, err error) {
	h, err := s.owned(sess, id)
	if err != nil {
		return res, err
	}

	return dto.HoldResponse{Snapshot: h.Snapshot()}, nil
}

func (s *bookingService) WatchHold(_ context.Context, sess *session.Session, id string) (<-chan hold.Snapshot, func(), error) {
	h, err := s.owned(sess, id)
	if err != nil {
		return nil, nil, err
	}

	ch, stop := h.Subscribe()

	return ch, stop, nil
}

func (s *bookingService) ConfirmHold(ctx context.Context, sess *session.Session, id string, req dto.ConfirmHoldRequest) (res dto.HoldResponse, err error) {
	h, err := s.owned(sess, id)
	if err != nil {
		return res, err
	}

	// Confirm calls run one after another, so the flag needs no lock.
	rejected := false

	snap, err := h.Confirm(ctx, s.holds.Policy(), func(ctx context.Context, bookingID int64) error {
		_, cerr := s.bookings.ConfirmBooking(ctx, sess, turfapi.ConfirmBookingRequest{
			BookingID:   bookingID,
			PaymentMode: req.PaymentMode,
		})
		if cerr != nil {
			s.logger.Error(identifier, fmt.Sprintf("confirm booking %d: %s", bookingID, cerr.Error()))

			rejected = rejected || errors.Is(cerr, failure.ErrSessionExpired)
		}

		return cerr
	})

	res = dto.HoldResponse{Snapshot: snap}

	switch {
	case errors.Is(err, hold.ErrExpired):
		return res, failure.Gone("hold expired, select the slots again")
	case errors.Is(err, hold.ErrNotHolding):
		return res, failure.Conflict("hold is not awaiting confirmation")
	case rejected:
		// Whatever the policy, a rejected session sends the user to log in.
		return res, failure.SessionExpired()
	case err != nil:
		return res, err
	}

	return res, nil
}

// CancelHold stops the countdown. No release call is sent; the server lets unpaid bookings lapse.
func (s *bookingService) CancelHold(_ context.Context, sess *session.Session, id string) error {
	if _, err := s.owned(sess, id); err != nil {
		return err
	}

	if err := s.holds.Cancel(id); err != nil {
		return failure.NotFound("hold")
	}

	return nil
}

func (s *bookingService) PaymentSummary(_ context.Context, sess *session.Session, id string, req dto.PaymentSummaryRequest) (res dto.PaymentSummaryResponse, err error) {
	h, err := s.owned(sess, id)
	if err != nil {
		return res, err
	}

	mode := req.PaymentMode
	if mode == "" {
		mode = constant.PaymentModeFull
	}

	total := h.Snapshot().TotalPrice
	payNow := helper.PayNowAmount(total, mode, s.cfg.Booking.PartialRatio)
	balance := total - payNow

	return dto.PaymentSummaryResponse{
		PaymentMode: mode,
		Total:       total,
		PayNow:      payNow,
		Balance:     balance,
		Friends:     req.Friends,
		PerPerson:   helper.SplitPerPerson(balance, req.Friends),
	}, nil
}

func (s *bookingService) MyBookings(ctx context.Context, sess *session.Session, req dto.MyBookingsRequest) (res dto.BookingsResponse, err error) {
	all, err := s.bookings.MyBookings(ctx, sess, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "my bookings: "+err.Error())

		return res, err
	}

	if req.Page <= 0 {
		req.Page = 1
	}

	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	start, end := helper.Paginate(len(all), req.Page, req.Limit)

	return dto.BookingsResponse{
		Bookings: all[start:end],
		Pagination: gdto.PaginationResponse{
			Page:       req.Page,
			Limit:      req.Limit,
			TotalItems: len(all),
			TotalPages: helper.CalculateTotalPages(len(all), req.Limit),
		},
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, sess *session.Session, id int64) (res dto.MessageResponse, err error) {
	msg, err := s.bookings.CancelBooking(ctx, sess, id)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("cancel booking %d: %s", id, err.Error()))

		return res, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *bookingService) find(ctx context.Context, sess *session.Session, id int64) (turfapi.Booking, error) {
	all, err := s.bookings.MyBookings(ctx, sess, "")
	if err != nil {
		return turfapi.Booking{}, err
	}

	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}

	return turfapi.Booking{}, failure.NotFound("booking")
}

func (s *bookingService) invoice(sess *session.Session, b turfapi.Booking) export.Invoice {
	customer := b.GuestName
	if customer == "" {
		customer = sess.Identity().Username
	}

	inv := export.Invoice{
		Reference:    b.Reference,
		CustomerName: customer,
		TurfName:     b.TurfName,
		Location:     b.Location,
		Sport:        b.Sport,
		UnitName:     b.UnitName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Price:        b.Price,
		Status:       b.Status,
		IssuedAt:     helper.NowInAppTimezone(),
		VerifyURL:    strings.TrimRight(s.cfg.App.URL, "/") + "/bookings/" + b.Reference,
	}

	if b.Status == constant.BookingStatusConfirmed || b.Status == constant.BookingStatusCompleted {
		inv.PaidNow = b.Price
	}

	return inv
}

// Invoice renders the PDF invoice of one of the caller's bookings and returns its file name.
func (s *bookingService) Invoice(ctx context.Context, sess *session.Session, id int64) (string, []byte, error) {
	b, err := s.find(ctx, sess, id)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("invoice %d: %s", id, err.Error()))

		return "", nil, err
	}

	pdf, err := export.InvoicePDF(s.invoice(sess, b))
	if err != nil {
		s.logger.Error(identifier, "render invoice: "+err.Error())

		return "", nil, failure.InternalError(err)
	}

	return "invoice-" + b.Reference + ".pdf", pdf, nil
}

func (s *bookingService) ShareInvoice(ctx context.Context, sess *session.Session, id int64, req dto.ShareInvoiceRequest) (res dto.ShareInvoiceResponse, err error) {
	b, err := s.find(ctx, sess, id)
	if err != nil {
		return res, err
	}

	inv := s.invoice(sess, b)

	pdf, err := export.InvoicePDF(inv)
	if err != nil {
		s.logger.Error(identifier, "render invoice: "+err.Error())

		return res, failure.InternalError(err)
	}

	fileURL, err := s.storage.Upload(ctx, supabase.InvoicesStoragePath, ".pdf", "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		s.logger.Error(identifier, "upload invoice: "+err.Error())

		return res, failure.InternalError(err)
	}

	err = s.mail.SendInvoice(req.Email, mail.InvoiceData{
		CustomerName: inv.CustomerName,
		Reference:    inv.Reference,
		TurfName:     inv.TurfName,
		Date:         inv.Date,
		StartTime:    inv.StartTime,
		EndTime:      inv.EndTime,
		TotalAmount:  fmt.Sprintf("INR %.2f", inv.Price),
		InvoiceURL:   fileURL,
	}, pdf)
	if err != nil {
		s.logger.Error(identifier, "mail invoice: "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.ShareInvoiceResponse{InvoiceURL: fileURL, SentTo: req.Email}, nil
}

// HostMatch opens a match-finder request on a booking the caller already holds.
func (s *bookingService) HostMatch(ctx context.Context, sess *session.Session, id int64, req dto.HostMatchRequest) (res dto.HostMatchResponse, err error) {
	pref := req.GenderPreference
	if pref == "" {
		pref = constant.GenderAny
	}

	created, err := s.matches.HostMatch(ctx, sess, turfapi.HostMatchRequest{
		BookingID:        id,
		Sport:            req.Sport,
		PlayersNeeded:    req.PlayersNeeded,
		GenderPreference: pref,
		SkillLevel:       req.SkillLevel,
		Description:      req.Description,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("host match on booking %d: %s", id, err.Error()))

		return res, err
	}

	return dto.HostMatchResponse{MatchID: created.ID, Message: created.Message}, nil
}
