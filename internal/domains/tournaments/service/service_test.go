package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/tournaments/dto"
	"github.com/savioruz/turfics/pkg/failure"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	cache "github.com/savioruz/turfics/pkg/redis/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	api "github.com/savioruz/turfics/pkg/turfapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc    TournamentService
	api    *api.MockTournamentAPI
	cache  *cache.MockIRedisCache
	logger *log.MockInterface
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.Duration = 60

	f := fixture{
		api:    api.NewMockTournamentAPI(ctrl),
		cache:  cache.NewMockIRedisCache(ctrl),
		logger: log.NewMockInterface(ctrl),
	}

	svc := New(f.api, f.cache, cfg, f.logger).(*tournamentService)
	svc.background = func(fn func()) { fn() }
	f.svc = svc

	return f
}

func score(v int) *int {
	return &v
}

func cup() turfapi.Tournament {
	return turfapi.Tournament{
		ID:    7,
		Name:  "Monsoon Cup",
		Sport: "Football",
		Matches: []turfapi.TourneyMatch{
			{ID: 31, Round: "Semi Final", Team1: "Strikers", Team2: "Rovers", Status: "scheduled"},
			{ID: 32, Round: "Semi Final", Team1: "Falcons", Team2: "United", Status: "scheduled"},
		},
		Announcements: []turfapi.Announcement{{ID: 1, Content: "Kick-off at 6pm", CreatedAt: "2026-10-10 09:00"}},
		Registrations: []turfapi.Registration{
			{ID: 11, TeamName: "Strikers", CaptainName: "Arjun", Status: "pending", PaymentStatus: "pending"},
			{ID: 12, TeamName: "Rovers", CaptainName: "Kiran", Status: "confirmed", PaymentStatus: "paid"},
		},
	}
}

const viewCacheKey = "turfics-gateway:cache:tournament:7"

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background call not made")
	}
}

func TestTournamentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fetch and cache", func(t *testing.T) {
		f := setup(t)
		saved := make(chan struct{})

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.api.EXPECT().ListTournaments(ctx, nil, "all", "").Return([]turfapi.Tournament{cup()}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), []turfapi.Tournament{cup()}, 60).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		res, err := f.svc.List(ctx, nil, dto.ListRequest{Sport: "All"})
		require.NoError(t, err)
		assert.Len(t, res, 1)

		wait(t, saved)
	})

	t.Run("success: from cache", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).SetArg(2, []turfapi.Tournament{cup()}).Return(nil)

		res, err := f.svc.List(ctx, nil, dto.ListRequest{Filter: "upcoming", Sport: "Football"})
		require.NoError(t, err)
		assert.Equal(t, "Monsoon Cup", res[0].Name)
	})

	t.Run("error: upstream", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.api.EXPECT().ListTournaments(ctx, nil, "upcoming", "").Return(nil, failure.Upstream(http.StatusInternalServerError, "boom"))
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := f.svc.List(ctx, nil, dto.ListRequest{Filter: "upcoming"})
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestTournamentService_Create(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	req := dto.CreateRequest{
		Name:      "Monsoon Cup",
		Sport:     "Football",
		StartDate: "2026-11-01",
		EndDate:   "2026-11-03",
		Location:  "Koramangala",
		EntryFee:  1500,
	}

	t.Run("success: list cache cleared", func(t *testing.T) {
		f := setup(t)
		cleared := make(chan struct{})

		f.api.EXPECT().CreateTournament(ctx, sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, r turfapi.TournamentRequest) (turfapi.Created, error) {
				assert.Equal(t, "2026-11-03", r.EndDate)
				assert.InDelta(t, 1500, r.EntryFee, 0.001)

				return turfapi.Created{Message: "Tournament created", TournamentID: 7}, nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "turfics-gateway:cache:tournaments").
			DoAndReturn(func(context.Context, string) error {
				close(cleared)

				return nil
			})

		res, err := f.svc.Create(ctx, sess, req)
		require.NoError(t, err)
		assert.Equal(t, dto.CreatedResponse{ID: 7, Message: "Tournament created"}, res)

		wait(t, cleared)
	})

	t.Run("error: ends before it starts", func(t *testing.T) {
		f := setup(t)

		bad := req
		bad.EndDate = "2026-10-30"

		_, err := f.svc.Create(ctx, sess, bad)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTournamentService_UpdateRegistration(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: applied before the server confirms, then reconciled", func(t *testing.T) {
		f := setup(t)

		fresh := cup()
		fresh.Registrations[0].Status = "confirmed"
		fresh.Registrations[0].PaymentStatus = "paid"
		fresh.TeamCount = 2

		gomock.InOrder(
			f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil),
			f.cache.EXPECT().Save(ctx, viewCacheKey, gomock.Any(), 60).
				DoAndReturn(func(_ context.Context, _ string, v any, _ int) error {
					reg := v.(turfapi.Tournament).Registrations[0]
					assert.Equal(t, "confirmed", reg.Status)
					assert.Equal(t, "paid", reg.PaymentStatus)

					return nil
				}),
			f.api.EXPECT().UpdateRegistration(ctx, sess, int64(11), turfapi.RegistrationUpdate{Status: "confirmed", PaymentStatus: "paid"}).
				Return(turfapi.Message{Message: "Updated"}, nil),
			f.api.EXPECT().GetTournament(gomock.Any(), sess, int64(7)).Return(fresh, nil),
			f.cache.EXPECT().Save(gomock.Any(), viewCacheKey, fresh, 60).Return(nil),
		)

		res, err := f.svc.UpdateRegistration(ctx, sess, 7, 11, dto.RegistrationUpdateRequest{Status: "confirmed", PaymentStatus: "paid"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Registrations[0].Status)
		assert.Equal(t, "confirmed", res.Registrations[1].Status)
	})

	t.Run("error: reverted when the server refuses", func(t *testing.T) {
		f := setup(t)

		gomock.InOrder(
			f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil),
			f.cache.EXPECT().Save(ctx, viewCacheKey, gomock.Any(), 60).Return(nil),
			f.api.EXPECT().UpdateRegistration(ctx, sess, int64(11), gomock.Any()).
				Return(turfapi.Message{}, failure.Upstream(http.StatusForbidden, "not your tournament")),
			f.cache.EXPECT().Save(gomock.Any(), viewCacheKey, cup(), 60).Return(nil),
		)
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res, err := f.svc.UpdateRegistration(ctx, sess, 7, 11, dto.RegistrationUpdateRequest{Status: "rejected"})
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "pending", res.Registrations[0].Status)
	})

	t.Run("error: nothing to update", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.UpdateRegistration(ctx, sess, 7, 11, dto.RegistrationUpdateRequest{})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTournamentService_Announce(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: newest first", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil)
		f.cache.EXPECT().Save(gomock.Any(), viewCacheKey, gomock.Any(), 60).Return(nil).Times(2)
		f.api.EXPECT().PostAnnouncement(ctx, sess, int64(7), turfapi.AnnouncementRequest{Content: "Final moved to Sunday"}).
			Return(turfapi.Message{Message: "Posted"}, nil)
		f.api.EXPECT().GetTournament(gomock.Any(), sess, int64(7)).Return(cup(), nil)

		res, err := f.svc.Announce(ctx, sess, 7, dto.AnnouncementRequest{Content: "  Final moved to Sunday "})
		require.NoError(t, err)
		require.Len(t, res.Announcements, 2)
		assert.Equal(t, "Final moved to Sunday", res.Announcements[0].Content)
		assert.NotEmpty(t, res.Announcements[0].CreatedAt)
	})

	t.Run("success: reconcile failure only warns", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).Return(errors.New("redis: nil"))
		f.api.EXPECT().GetTournament(ctx, sess, int64(7)).Return(cup(), nil)
		f.cache.EXPECT().Save(ctx, viewCacheKey, gomock.Any(), 60).Return(nil)
		f.api.EXPECT().PostAnnouncement(ctx, sess, int64(7), gomock.Any()).Return(turfapi.Message{}, nil)
		f.api.EXPECT().GetTournament(gomock.Any(), sess, int64(7)).Return(turfapi.Tournament{}, errors.New("timeout"))
		f.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		res, err := f.svc.Announce(ctx, sess, 7, dto.AnnouncementRequest{Content: "Bring ID cards"})
		require.NoError(t, err)
		assert.Equal(t, "Bring ID cards", res.Announcements[0].Content)
	})

	t.Run("error: blank", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Announce(ctx, sess, 7, dto.AnnouncementRequest{Content: "   "})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTournamentService_ScheduleMatch(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: time normalised and view dropped", func(t *testing.T) {
		f := setup(t)
		dropped := make(chan struct{})

		f.api.EXPECT().ScheduleMatch(ctx, sess, int64(7), turfapi.ScheduleMatchRequest{
			RoundName: "Final",
			Team1:     "Strikers",
			Team2:     "Falcons",
			Time:      "2026-11-03T18:00:00",
		}).Return(turfapi.Message{Message: "Match scheduled"}, nil)
		f.cache.EXPECT().Delete(gomock.Any(), viewCacheKey).DoAndReturn(func(context.Context, string) error {
			close(dropped)

			return nil
		})

		res, err := f.svc.ScheduleMatch(ctx, sess, 7, dto.ScheduleMatchRequest{
			RoundName: "Final",
			Team1:     " Strikers",
			Team2:     "Falcons ",
			Time:      "2026-11-03T18:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "Match scheduled", res.Message)

		wait(t, dropped)
	})

	t.Run("error: same team twice", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.ScheduleMatch(ctx, sess, 7, dto.ScheduleMatchRequest{RoundName: "Final", Team1: "Rovers", Team2: "rovers "})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: unreadable time", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.ScheduleMatch(ctx, sess, 7, dto.ScheduleMatchRequest{RoundName: "Final", Team1: "A", Team2: "B", Time: "tomorrow"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTournamentService_UpdateScore(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: winner derived from the score", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil).Times(2)
		f.cache.EXPECT().Save(gomock.Any(), viewCacheKey, gomock.Any(), 60).Return(nil).Times(2)
		f.api.EXPECT().UpdateScore(ctx, sess, int64(31), turfapi.ScoreUpdate{Score1: 1, Score2: 3, Status: "completed", Winner: "Rovers"}).
			Return(turfapi.Message{Message: "Score updated"}, nil)
		f.api.EXPECT().GetTournament(gomock.Any(), sess, int64(7)).Return(cup(), nil)

		res, err := f.svc.UpdateScore(ctx, sess, 7, 31, dto.ScoreRequest{Score1: 1, Score2: 3, Status: "completed"})
		require.NoError(t, err)

		m := res.Matches[0]
		assert.Equal(t, score(1), m.Score1)
		assert.Equal(t, score(3), m.Score2)
		assert.Equal(t, "completed", m.Status)
		assert.Equal(t, "Rovers", m.Winner)
		assert.Nil(t, res.Matches[1].Score1)
	})

	t.Run("success: live score keeps no winner", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil).Times(2)
		f.cache.EXPECT().Save(gomock.Any(), viewCacheKey, gomock.Any(), 60).Return(nil).Times(2)
		f.api.EXPECT().UpdateScore(ctx, sess, int64(32), turfapi.ScoreUpdate{Score1: 2, Score2: 2, Status: "live"}).
			Return(turfapi.Message{}, nil)
		f.api.EXPECT().GetTournament(gomock.Any(), sess, int64(7)).Return(cup(), nil)

		res, err := f.svc.UpdateScore(ctx, sess, 7, 32, dto.ScoreRequest{Score1: 2, Score2: 2, Status: "live"})
		require.NoError(t, err)
		assert.Empty(t, res.Matches[1].Winner)
	})

	for name, req := range map[string]dto.ScoreRequest{
		"error: completed tie":      {Score1: 2, Score2: 2, Status: "completed"},
		"error: winner not playing":  {Score1: 2, Score2: 0, Status: "completed", Winner: "Falcons"},
	} {
		t.Run(name, func(t *testing.T) {
			f := setup(t)

			f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil)

			_, err := f.svc.UpdateScore(ctx, sess, 7, 31, req)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("error: unknown match", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(ctx, viewCacheKey, gomock.Any()).SetArg(2, cup()).Return(nil)

		_, err := f.svc.UpdateScore(ctx, sess, 7, 99, dto.ScoreRequest{Score1: 1})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTournamentService_RegisterBulk(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: per-row outcome", func(t *testing.T) {
		f := setup(t)
		dropped := make(chan struct{})

		roster := strings.Join([]string{
			"contact_number,team_name,captain_name",
			"9800000001,Strikers,Arjun",
			"9800000002,Rovers,",
			",,",
			"9800000003,Falcons,Meera",
		}, "\n")

		f.api.EXPECT().RegisterTeam(gomock.Any(), sess, int64(7), turfapi.RegisterTeamRequest{
			TeamName: "Strikers", CaptainName: "Arjun", ContactNumber: "9800000001",
		}).Return(turfapi.Message{Message: "Registered"}, nil)
		f.api.EXPECT().RegisterTeam(gomock.Any(), sess, int64(7), turfapi.RegisterTeamRequest{
			TeamName: "Falcons", CaptainName: "Meera", ContactNumber: "9800000003",
		}).Return(turfapi.Message{}, failure.Upstream(http.StatusConflict, "Tournament is full"))
		f.cache.EXPECT().Delete(gomock.Any(), viewCacheKey).DoAndReturn(func(context.Context, string) error {
			close(dropped)

			return nil
		})

		res, err := f.svc.RegisterBulk(ctx, sess, 7, strings.NewReader(roster))
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, 1, res.Registered)
		require.Len(t, res.Failed, 2)
		assert.Equal(t, dto.BulkRowError{Row: 3, TeamName: "Rovers", Error: "missing captain_name"}, res.Failed[0])
		assert.Equal(t, 5, res.Failed[1].Row)
		assert.Contains(t, res.Failed[1].Error, "Tournament is full")

		wait(t, dropped)
	})

	t.Run("success: positional columns", func(t *testing.T) {
		f := setup(t)

		f.api.EXPECT().RegisterTeam(gomock.Any(), sess, int64(7), turfapi.RegisterTeamRequest{
			TeamName: "United", CaptainName: "Ravi", ContactNumber: "9800000004",
		}).Return(turfapi.Message{}, errors.New("connection reset"))

		res, err := f.svc.RegisterBulk(ctx, sess, 7, strings.NewReader("United, Ravi, 9800000004\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, res.Registered)
		assert.Len(t, res.Failed, 1)
	})

	t.Run("error: session expired aborts", func(t *testing.T) {
		f := setup(t)

		f.api.EXPECT().RegisterTeam(gomock.Any(), sess, int64(7), gomock.Any()).
			Return(turfapi.Message{}, failure.SessionExpired()).MinTimes(1).MaxTimes(2)
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := f.svc.RegisterBulk(ctx, sess, 7, strings.NewReader("A,a,1\nB,b,2\n"))
		assert.ErrorIs(t, err, failure.ErrSessionExpired)
	})

	t.Run("error: empty roster", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.RegisterBulk(ctx, sess, 7, strings.NewReader("team_name,captain_name,contact_number\n"))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: too many rows", func(t *testing.T) {
		f := setup(t)

		roster := strings.Repeat("T,c,1\n", MaxBulkRows+1)

		_, err := f.svc.RegisterBulk(ctx, sess, 7, strings.NewReader(roster))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
