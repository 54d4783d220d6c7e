package usecase

import (
	"context"
	"fmt"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/metrics"
)

// SendNotificationsStep drains the queued file notifications to the FIFO
// queue. Every notification is attempted even when an earlier one fails.
type SendNotificationsStep struct {
	notifier repository.NotifierRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewSendNotificationsStep creates the notification step
func NewSendNotificationsStep(notifier repository.NotifierRepository, m *metrics.Metrics, logger logger.Logger) pipeline.Step {
	step := &SendNotificationsStep{notifier: notifier, metrics: m, logger: logger}
	return pipeline.NewStep("send_notifications", false, step.Execute)
}

// Execute sends every queued notification, recording the message ids
func (s *SendNotificationsStep) Execute(ctx context.Context, run *pipeline.Context) error {
	if len(run.Notifications) == 0 {
		s.logger.Info("No notifications queued", "hotelCode", run.HotelCode)
		return nil
	}

	failed := 0
	var lastErr error
	for i := range run.Notifications {
		notification := &run.Notifications[i]
		messageID, err := s.notifier.Send(ctx, *notification)
		if err != nil {
			failed++
			lastErr = err
			s.logger.Error("Notification send failed",
				"hotelCode", run.HotelCode,
				"fileType", notification.FileType,
				"fileKey", notification.FileKey,
				"error", err)
			continue
		}
		notification.MessageID = messageID
		s.metrics.NotificationsSent.Inc()
	}

	run.Stats["notifications"] = map[string]interface{}{
		"queued": len(run.Notifications),
		"failed": failed,
	}

	if failed > 0 {
		return fmt.Errorf("send notifications: %d of %d failed: %w", failed, len(run.Notifications), lastErr)
	}
	return nil
}
