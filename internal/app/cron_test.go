package app

import (
	"testing"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/pkg/hold"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCron(t *testing.T) {
	t.Run("success: hold sweep is scheduled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := log.NewMockInterface(ctrl)

		holds := hold.NewRegistry(hold.DefaultOptions(), l)
		defer holds.Close()

		cfg := &config.Config{}
		cfg.Schedule.HoldSweep = "0 */1 * * * *"

		c := Cron(holds, cfg, l)
		defer c.Stop()

		assert.Len(t, c.Entries(), 1)
	})

	t.Run("error: bad schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := log.NewMockInterface(ctrl)

		holds := hold.NewRegistry(hold.DefaultOptions(), l)
		defer holds.Close()

		cfg := &config.Config{}
		cfg.Schedule.HoldSweep = "every minute"

		l.EXPECT().Error(gomock.Any(), gomock.Any())

		c := Cron(holds, cfg, l)

		assert.Empty(t, c.Entries())
	})
}
