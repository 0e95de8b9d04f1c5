package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InsightRotation pre-warms the daily insight cache at local midnight so
// the first request of the day does not pay for the catalogue read.
type InsightRotation struct {
	insights *InsightService
	location *time.Location
	log      *zap.Logger
	cron     *cron.Cron
}

func NewInsightRotation(insights *InsightService, location *time.Location, log *zap.Logger) *InsightRotation {
	return &InsightRotation{
		insights: insights,
		location: location,
		log:      log,
	}
}

func (rotation *InsightRotation) Start() error {
	scheduler := cron.New(cron.WithLocation(rotation.location))
	if _, err := scheduler.AddFunc("0 0 * * *", rotation.rotate); err != nil {
		return err
	}
	scheduler.Start()
	rotation.cron = scheduler

	// Warm the cache for today so the schedule only has to keep it fresh.
	rotation.rotate()
	return nil
}

func (rotation *InsightRotation) Stop() {
	if rotation.cron == nil {
		return
	}
	<-rotation.cron.Stop().Done()
}

func (rotation *InsightRotation) rotate() {
	if err := rotation.insights.Refresh(time.Now(), rotation.location); err != nil {
		rotation.log.Warn("daily insight refresh failed", zap.Error(err))
		return
	}
	rotation.log.Info("daily insight refreshed")
}
