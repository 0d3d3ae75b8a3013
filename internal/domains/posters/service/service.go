package service

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/posters/dto"
	"github.com/savioruz/turfics/pkg/export"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/mail"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/supabase"
	"github.com/savioruz/turfics/pkg/turfapi"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type PosterService interface {
	Options() dto.OptionsResponse
	Generate(ctx context.Context, sess *session.Session, req dto.GenerateRequest) (dto.PosterResponse, error)
	Render(ctx context.Context, sess *session.Session, req dto.RenderRequest) ([]byte, error)
	Share(ctx context.Context, sess *session.Session, req dto.ShareRequest) (dto.ShareResponse, error)
}

type posterService struct {
	posters     turfapi.PosterAPI
	tournaments turfapi.TournamentAPI
	storage     supabase.Storage
	mail        mail.Service
	cfg         *config.Config
	logger      logger.Interface
}

func New(p turfapi.PosterAPI, t turfapi.TournamentAPI, st supabase.Storage, m mail.Service, cfg *config.Config, l logger.Interface) PosterService {
	return &posterService{
		posters:     p,
		tournaments: t,
		storage:     st,
		mail:        m,
		cfg:         cfg,
		logger:      l,
	}
}

const (
	ToneEnergetic    = "Energetic & Competitive"
	ToneProfessional = "Clean & Professional"
	ToneCommunity    = "Fun & Community"
	ToneUrgent       = "Urgent (Last Call)"
	ToneOther        = "Other"

	startDateUnknown = "Date TBD"
	mailConcurrency  = 4

	identifier = "service - poster - %s"
)

var tones = []string{ToneEnergetic, ToneProfessional, ToneCommunity, ToneUrgent, ToneOther}

func (s *posterService) Options() dto.OptionsResponse {
	return dto.OptionsResponse{
		Tones:       slices.Clone(tones),
		Backgrounds: export.Backgrounds(),
	}
}

func validate(req dto.GenerateRequest) error {
	if !slices.Contains(tones, req.Tone) {
		return failure.BadRequestFromString("unknown tone " + req.Tone)
	}

	if req.Tone == ToneOther && strings.TrimSpace(req.CustomTone) == "" {
		return failure.BadRequestFromString("custom tone is required")
	}

	if !export.ValidBackground(req.Background) {
		return failure.BadRequestFromString("unknown background " + req.Background)
	}

	if req.Background == export.BackgroundAICustom && strings.TrimSpace(req.ImagePrompt) == "" {
		return failure.BadRequestFromString("image prompt is required for an AI background")
	}

	return nil
}

func optional(cond bool, v string) *string {
	if !cond {
		return nil
	}

	v = strings.TrimSpace(v)

	return &v
}

// Generate asks the AI endpoint for poster copy about a tournament. The custom
// tone and image prompt are only sent with the options that use them.
func (s *posterService) Generate(ctx context.Context, sess *session.Session, req dto.GenerateRequest) (res dto.PosterResponse, err error) {
	if err := validate(req); err != nil {
		return res, err
	}

	t, err := s.tournaments.GetTournament(ctx, sess, req.TournamentID)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("generate - tournament %d: %s", req.TournamentID, err.Error()))

		return res, err
	}

	start := t.StartDate
	if start == "" {
		start = startDateUnknown
	}

	content, err := s.posters.GeneratePoster(ctx, sess, turfapi.PosterRequest{
		Name:        t.Name,
		Sport:       t.Sport,
		EntryFee:    t.EntryFee,
		PrizePool:   t.PrizePool,
		StartDate:   start,
		Tone:        req.Tone,
		CustomTone:  optional(req.Tone == ToneOther, req.CustomTone),
		ImagePrompt: optional(req.Background == export.BackgroundAICustom, req.ImagePrompt),
	})
	if err != nil {
		s.logger.Error(identifier, "generate: "+err.Error())

		return res, err
	}

	return dto.PosterResponse{
		TournamentID: t.ID,
		Background:   req.Background,
		Content:      content,
	}, nil
}

func (s *posterService) registerURL(id int64) string {
	return fmt.Sprintf("%s/tournaments/%d", strings.TrimRight(s.cfg.App.URL, "/"), id)
}

func (s *posterService) render(ctx context.Context, sess *session.Session, req dto.RenderRequest) (turfapi.Tournament, []byte, error) {
	if !export.ValidBackground(req.Background) {
		return turfapi.Tournament{}, nil, failure.BadRequestFromString("unknown background " + req.Background)
	}

	t, err := s.tournaments.GetTournament(ctx, sess, req.TournamentID)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("render - tournament %d: %s", req.TournamentID, err.Error()))

		return t, nil, err
	}

	pdf, err := export.PosterPDF(export.Poster{
		Name:         t.Name,
		Sport:        t.Sport,
		StartDate:    t.StartDate,
		EntryFee:     t.EntryFee,
		PrizePool:    t.PrizePool,
		Headline:     req.Headline,
		Subheadline:  req.Subheadline,
		Highlights:   req.Highlights,
		CallToAction: req.CallToAction,
		Background:   req.Background,
		RegisterURL:  s.registerURL(t.ID),
	})
	if err != nil {
		s.logger.Error(identifier, "render: "+err.Error())

		return t, nil, failure.InternalError(err)
	}

	return t, pdf, nil
}

func (s *posterService) Render(ctx context.Context, sess *session.Session, req dto.RenderRequest) ([]byte, error) {
	_, pdf, err := s.render(ctx, sess, req)

	return pdf, err
}

// Share uploads the rendered poster and mails its link to every recipient.
// Recipients that could not be reached are reported, not fatal.
func (s *posterService) Share(ctx context.Context, sess *session.Session, req dto.ShareRequest) (res dto.ShareResponse, err error) {
	t, pdf, err := s.render(ctx, sess, req.RenderRequest)
	if err != nil {
		return res, err
	}

	posterURL, err := s.storage.Upload(ctx, supabase.PostersStoragePath, ".pdf", "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		s.logger.Error(identifier, "upload poster: "+err.Error())

		return res, failure.InternalError(err)
	}

	res = dto.ShareResponse{PosterURL: posterURL, SentTo: []string{}}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	g.SetLimit(mailConcurrency)

	for _, to := range slices.Compact(slices.Sorted(slices.Values(req.Emails))) {
		g.Go(func() error {
			err := s.mail.SendPoster(to, mail.PosterData{
				TournamentName: t.Name,
				StartDate:      t.StartDate,
				PosterURL:      posterURL,
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				s.logger.Warn(identifier, "mail poster to "+to+": "+err.Error())
				res.Failed = append(res.Failed, to)

				return nil
			}

			res.SentTo = append(res.SentTo, to)

			return nil
		})
	}

	_ = g.Wait()

	slices.Sort(res.SentTo)
	slices.Sort(res.Failed)

	return res, nil
}
