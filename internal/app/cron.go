package app

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/pkg/hold"
	"github.com/savioruz/turfics/pkg/logger"
)

// Cron schedules the housekeeping jobs. Finished holds are dropped from the
// registry once they are older than the configured retention.
func Cron(holds *hold.Registry, cfg *config.Config, l logger.Interface) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.HoldSweep, func() {
		if removed := holds.Sweep(time.Now(), cfg.Schedule.HoldRetention); removed > 0 {
			l.Debug(fmt.Sprintf("Cron job - SweepHolds removed %d holds, %d left", removed, holds.Len()))
		}
	})
	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return c
	}

	c.Start()

	return c
}
