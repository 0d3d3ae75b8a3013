package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/posters/dto"
	"github.com/savioruz/turfics/pkg/failure"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/mail"
	mailmock "github.com/savioruz/turfics/pkg/mail/mock"
	"github.com/savioruz/turfics/pkg/session"
	storagemock "github.com/savioruz/turfics/pkg/supabase/mock"
	"github.com/savioruz/turfics/pkg/turfapi"
	api "github.com/savioruz/turfics/pkg/turfapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc         PosterService
	posters     *api.MockPosterAPI
	tournaments *api.MockTournamentAPI
	storage     *storagemock.MockStorage
	mail        *mailmock.MockService
	logger      *log.MockInterface
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.URL = "https://turfics.test/"

	f := fixture{
		posters:     api.NewMockPosterAPI(ctrl),
		tournaments: api.NewMockTournamentAPI(ctrl),
		storage:     storagemock.NewMockStorage(ctrl),
		mail:        mailmock.NewMockService(ctrl),
		logger:      log.NewMockInterface(ctrl),
	}
	f.svc = New(f.posters, f.tournaments, f.storage, f.mail, cfg, f.logger)

	return f
}

var monsoonCup = turfapi.Tournament{
	ID:        7,
	Name:      "Monsoon Cup",
	Sport:     "Football",
	StartDate: "2026-11-01",
	EntryFee:  1500,
	PrizePool: 25000,
}

func TestPosterService_Options(t *testing.T) {
	f := setup(t)

	res := f.svc.Options()
	assert.Contains(t, res.Tones, ToneOther)
	assert.Equal(t, []string{"neon", "dark", "minimal", "ai-custom"}, res.Backgrounds)
}

func TestPosterService_Generate(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: preset tone sends no extras", func(t *testing.T) {
		f := setup(t)

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(monsoonCup, nil)
		f.posters.EXPECT().GeneratePoster(ctx, sess, turfapi.PosterRequest{
			Name:      "Monsoon Cup",
			Sport:     "Football",
			EntryFee:  1500,
			PrizePool: 25000,
			StartDate: "2026-11-01",
			Tone:      ToneEnergetic,
		}).Return(turfapi.PosterContent{Headline: "Rule the Monsoon"}, nil)

		res, err := f.svc.Generate(ctx, sess, dto.GenerateRequest{
			TournamentID: 7,
			Tone:         ToneEnergetic,
			CustomTone:   "ignored",
			Background:   "neon",
			ImagePrompt:  "ignored too",
		})
		require.NoError(t, err)
		assert.Equal(t, "Rule the Monsoon", res.Content.Headline)
		assert.Equal(t, "neon", res.Background)
	})

	t.Run("success: custom tone, AI background and unknown date", func(t *testing.T) {
		f := setup(t)

		undated := monsoonCup
		undated.StartDate = ""

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(undated, nil)
		f.posters.EXPECT().GeneratePoster(ctx, sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, req turfapi.PosterRequest) (turfapi.PosterContent, error) {
				assert.Equal(t, "Date TBD", req.StartDate)
				require.NotNil(t, req.CustomTone)
				assert.Equal(t, "Luxurious", *req.CustomTone)
				require.NotNil(t, req.ImagePrompt)
				assert.Equal(t, "stadium at night", *req.ImagePrompt)

				return turfapi.PosterContent{Headline: "Gold Standard"}, nil
			})

		_, err := f.svc.Generate(ctx, sess, dto.GenerateRequest{
			TournamentID: 7,
			Tone:         ToneOther,
			CustomTone:   " Luxurious ",
			Background:   "ai-custom",
			ImagePrompt:  "stadium at night",
		})
		require.NoError(t, err)
	})

	for name, req := range map[string]dto.GenerateRequest{
		"error: unknown tone":            {TournamentID: 7, Tone: "Sleepy", Background: "neon"},
		"error: other without a tone":    {TournamentID: 7, Tone: ToneOther, Background: "neon"},
		"error: unknown background":      {TournamentID: 7, Tone: ToneUrgent, Background: "sunset"},
		"error: AI background no prompt": {TournamentID: 7, Tone: ToneUrgent, Background: "ai-custom"},
	} {
		t.Run(name, func(t *testing.T) {
			f := setup(t)

			_, err := f.svc.Generate(ctx, sess, req)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func renderRequest() dto.RenderRequest {
	return dto.RenderRequest{
		TournamentID: 7,
		Background:   "dark",
		Headline:     "Rule the Monsoon",
		Subheadline:  "Eight teams. One cup.",
		Highlights:   []string{"Floodlit finals", "Prize pool INR 25,000"},
		CallToAction: "Register now",
	}
}

func TestPosterService_Render(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(monsoonCup, nil)

		pdf, err := f.svc.Render(ctx, sess, renderRequest())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	})

	t.Run("error: tournament not found", func(t *testing.T) {
		f := setup(t)

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(turfapi.Tournament{}, failure.Upstream(http.StatusNotFound, "Tournament not found"))
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := f.svc.Render(ctx, sess, renderRequest())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPosterService_Share(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: duplicates mailed once, failures reported", func(t *testing.T) {
		f := setup(t)

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(monsoonCup, nil)
		f.storage.EXPECT().Upload(ctx, "posters", ".pdf", "application/pdf", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, body io.Reader) (string, error) {
				raw, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))

				return "https://cdn.test/posters/p.pdf", nil
			})

		data := mail.PosterData{TournamentName: "Monsoon Cup", StartDate: "2026-11-01", PosterURL: "https://cdn.test/posters/p.pdf"}
		f.mail.EXPECT().SendPoster("a@example.com", data).Return(nil)
		f.mail.EXPECT().SendPoster("b@example.com", data).Return(errors.New("mailbox full"))
		f.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		req := dto.ShareRequest{RenderRequest: renderRequest(), Emails: []string{"b@example.com", "a@example.com", "a@example.com"}}

		res, err := f.svc.Share(ctx, sess, req)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/posters/p.pdf", res.PosterURL)
		assert.Equal(t, []string{"a@example.com"}, res.SentTo)
		assert.Equal(t, []string{"b@example.com"}, res.Failed)
	})

	t.Run("error: upload", func(t *testing.T) {
		f := setup(t)

		f.tournaments.EXPECT().GetTournament(ctx, sess, int64(7)).Return(monsoonCup, nil)
		f.storage.EXPECT().Upload(ctx, "posters", ".pdf", "application/pdf", gomock.Any()).Return("", errors.New("bucket missing"))
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := f.svc.Share(ctx, sess, dto.ShareRequest{RenderRequest: renderRequest()})
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
