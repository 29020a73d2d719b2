package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
)

// ParentNotifier delivers reminder notifications to an athlete's parents.
// Delivery transport (email/SMS) lives outside this service; the shipped
// implementation logs.
type ParentNotifier interface {
	SendMetricsReminder(ctx context.Context, athlete *models.Athlete) error
}

// LogNotifier writes reminders to the application log. Used in development
// and as the default until a delivery integration is configured.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendMetricsReminder(ctx context.Context, athlete *models.Athlete) error {
	n.logger.WithFields(logrus.Fields{
		"athlete_id":   athlete.ID,
		"parent_email": athlete.ParentEmail,
	}).Info("Parent reminder: combine metrics are out of date")
	return nil
}

// MetricsWatchdog periodically scans for athletes whose combine metrics have
// gone stale and queues parent reminders. Recruiting profiles with old
// numbers get passed over; the nudge keeps them current.
type MetricsWatchdog struct {
	db       *database.DB
	notifier ParentNotifier
	logger   *logrus.Logger
	window   time.Duration
	schedule string
	cron     *cron.Cron
}

func NewMetricsWatchdog(db *database.DB, notifier ParentNotifier, logger *logrus.Logger, window time.Duration, schedule string) *MetricsWatchdog {
	return &MetricsWatchdog{
		db:       db,
		notifier: notifier,
		logger:   logger,
		window:   window,
		schedule: schedule,
		cron:     cron.New(),
	}
}

func (w *MetricsWatchdog) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.scan); err != nil {
		return err
	}
	w.cron.Start()
	w.logger.WithField("schedule", w.schedule).Info("Metrics watchdog started")
	return nil
}

func (w *MetricsWatchdog) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info("Metrics watchdog stopped")
}

func (w *MetricsWatchdog) scan() {
	ctx := context.Background()
	cutoff := time.Now().Add(-w.window)

	athletes, err := models.ListAthletesWithStaleMetrics(w.db, cutoff)
	if err != nil {
		w.logger.WithError(err).Error("Stale metrics scan failed")
		return
	}

	notified := 0
	for i := range athletes {
		if athletes[i].ParentEmail == "" && athletes[i].ParentPhone == "" {
			continue
		}
		if err := w.notifier.SendMetricsReminder(ctx, &athletes[i]); err != nil {
			w.logger.WithError(err).WithField("athlete_id", athletes[i].ID).
				Warn("Failed to send metrics reminder")
			continue
		}
		notified++
	}

	w.logger.WithFields(logrus.Fields{
		"stale":    len(athletes),
		"notified": notified,
	}).Info("Stale metrics scan complete")
}
