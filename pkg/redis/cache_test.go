package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routed struct {
	Meters float64 `json:"meters"`
}

func TestRedisCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	cache := NewRedisCache(db, mockLogger)

	t.Run("success: save marshals value", func(t *testing.T) {
		mock.ExpectSet("route:a", `{"meters":4200}`, 300*time.Second).SetVal("OK")

		err := cache.Save(ctx, "route:a", routed{Meters: 4200}, 300)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: get unmarshals value", func(t *testing.T) {
		mock.ExpectGet("route:a").SetVal(`{"meters":4200}`)

		var got routed
		err := cache.Get(ctx, "route:a", &got)

		assert.NoError(t, err)
		assert.InDelta(t, 4200.0, got.Meters, 0.001)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: cache miss", func(t *testing.T) {
		mock.ExpectGet("route:b").RedisNil()

		var got routed
		err := cache.Get(ctx, "route:b", &got)

		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: save failure", func(t *testing.T) {
		mock.ExpectSet("label", "Koramangala, Bangalore", 60*time.Second).SetErr(errors.New("readonly"))

		err := cache.Save(ctx, "label", "Koramangala, Bangalore", 60)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: delete", func(t *testing.T) {
		mock.ExpectDel("route:a").SetVal(1)

		assert.NoError(t, cache.Delete(ctx, "route:a"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
