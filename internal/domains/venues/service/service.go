package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/venues/dto"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/geo"
	"github.com/savioruz/turfics/pkg/geocoding"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/routing"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type VenueService interface {
	ListTurfs(ctx context.Context, sess *session.Session) ([]turfapi.Turf, error)
	GetTurf(ctx context.Context, sess *session.Session, id int64) (turfapi.Turf, error)
	ListSlots(ctx context.Context, sess *session.Session, unitID int64, date string) (dto.SlotsResponse, error)
	Discover(ctx context.Context, sess *session.Session, req dto.DiscoverRequest) (dto.DiscoverResponse, error)
	Refine(ctx context.Context, origin geo.Point, venues []dto.Venue) []dto.Venue
	NewFeed(ctx context.Context, sess *session.Session, emit func(FeedEvent)) *Feed
	ReverseGeocode(ctx context.Context, p geo.Point) dto.PlaceResponse
	Cities() dto.CitiesResponse
}

type venueService struct {
	api      turfapi.VenueAPI
	router   routing.Router
	geocoder geocoding.Geocoder
	cache    redis.IRedisCache
	cfg      *config.Config
	logger   logger.Interface
}

func New(api turfapi.VenueAPI, r routing.Router, g geocoding.Geocoder, c redis.IRedisCache, cfg *config.Config, l logger.Interface) VenueService {
	return &venueService{
		api:      api,
		router:   r,
		geocoder: g,
		cache:    c,
		cfg:      cfg,
		logger:   l,
	}
}

const (
	cacheTurfsKey = "turfs"
	cacheTurfKey  = "turf"

	refineWorkers = 4

	identifier = "service - venues - %s"
)

func (s *venueService) ListTurfs(ctx context.Context, sess *session.Session) (res []turfapi.Turf, err error) {
	key := helper.BuildCacheKey(cacheTurfsKey)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	res, err = s.api.ListTurfs(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "list turfs: "+err.Error())

		return nil, err
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

func (s *venueService) GetTurf(ctx context.Context, sess *session.Session, id int64) (res turfapi.Turf, err error) {
	key := helper.BuildCacheKey(cacheTurfKey, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	var games []turfapi.Game

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (gerr error) {
		res, gerr = s.api.GetTurf(gctx, sess, id)

		return gerr
	})

	g.Go(func() (gerr error) {
		games, gerr = s.api.ListGames(gctx, sess, id)

		return gerr
	})

	if err = g.Wait(); err != nil {
		s.logger.Error(identifier, fmt.Sprintf("get turf %d: %s", id, err.Error()))

		return turfapi.Turf{}, err
	}

	if len(games) > 0 {
		res.Games = games
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

func (s *venueService) ListSlots(ctx context.Context, sess *session.Session, unitID int64, date string) (res dto.SlotsResponse, err error) {
	if _, err = time.Parse(time.DateOnly, date); err != nil {
		return res, failure.BadRequestFromString("date must be YYYY-MM-DD")
	}

	slots, err := s.api.ListSlots(ctx, sess, unitID, date)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("list slots of unit %d: %s", unitID, err.Error()))

		return res, err
	}

	return dto.SlotsResponse{UnitID: unitID, Date: date, Slots: slots}, nil
}

func (s *venueService) Discover(ctx context.Context, sess *session.Session, req dto.DiscoverRequest) (res dto.DiscoverResponse, err error) {
	turfs, err := s.ListTurfs(ctx, sess)
	if err != nil {
		return res, err
	}

	venues := make([]dto.Venue, 0, len(turfs))

	for _, t := range turfs {
		if !matches(t, req) {
			continue
		}

		venues = append(venues, dto.Venue{Turf: t})
	}

	if city := strings.TrimSpace(req.City); city != "" {
		return dto.DiscoverResponse{Mode: dto.ModeCity, City: city, Venues: venues}, nil
	}

	origin, ok := req.Origin()
	if !ok {
		origin, _ = geo.CityCenter(s.cfg.Discovery.DefaultCity)
	}

	for i := range venues {
		if p, ok := venues[i].Point(); ok {
			venues[i].SetDistance(geo.EstimateRoad(origin, p, s.cfg.Discovery.Tortuosity), true)
		}
	}

	geo.SortByDistance(venues)

	res = dto.DiscoverResponse{Mode: dto.ModeLocation, Origin: &origin, Venues: venues}

	if req.Refine {
		res.Venues = s.Refine(ctx, origin, venues)
		res.Refined = true
	}

	return res, nil
}

func matches(t turfapi.Turf, req dto.DiscoverRequest) bool {
	if city := strings.TrimSpace(req.City); city != "" && !helper.ContainsFold(t.Location, city) {
		return false
	}

	if q := strings.TrimSpace(req.Search); q != "" && !helper.ContainsFold(t.Name, q) && !helper.ContainsFold(t.Location, q) {
		return false
	}

	if sport := strings.TrimSpace(req.Sport); sport != "" {
		for _, sp := range t.Sports {
			if strings.EqualFold(sp, sport) {
				return true
			}
		}

		return false
	}

	return true
}

// Refine replaces estimates with routed distances until the refine deadline.
// A venue whose route fails or arrives late keeps its estimate.
func (s *venueService) Refine(ctx context.Context, origin geo.Point, venues []dto.Venue) []dto.Venue {
	out := make([]dto.Venue, len(venues))
	copy(out, venues)

	if s.router == nil {
		return out
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Discovery.RefineDeadline)
	defer cancel()

	routed := make([]*float64, len(out))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refineWorkers)

	for i := range out {
		p, ok := out[i].Point()
		if !ok {
			continue
		}

		g.Go(func() error {
			km, err := s.router.Distance(gctx, origin, p)
			if err != nil {
				s.logger.Debug(identifier, fmt.Sprintf("refine turf %d: %s", out[i].ID, err.Error()))

				return nil
			}

			routed[i] = &km

			return nil
		})
	}

	_ = g.Wait()

	for i, km := range routed {
		if km != nil {
			out[i].SetDistance(*km, false)
		}
	}

	geo.SortByDistance(out)

	return out
}

// ReverseGeocode never fails: without a geocoder answer the label is the coordinate pair.
func (s *venueService) ReverseGeocode(ctx context.Context, p geo.Point) dto.PlaceResponse {
	fallback := fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lng)

	if s.geocoder == nil {
		return dto.PlaceResponse{Label: fallback}
	}

	place, err := s.geocoder.Reverse(ctx, p)
	if err != nil {
		s.logger.Warn(identifier, "reverse geocode: "+err.Error())

		return dto.PlaceResponse{Label: fallback}
	}

	if place.Label == "" {
		place.Label = fallback
	}

	return dto.PlaceResponse{DisplayName: place.DisplayName, Label: place.Label}
}

func (s *venueService) Cities() dto.CitiesResponse {
	return dto.CitiesResponse{Default: s.cfg.Discovery.DefaultCity, Cities: geo.Cities()}
}
