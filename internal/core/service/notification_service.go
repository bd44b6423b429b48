package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/api/metrics"
	"github.com/venuelink/venue-services/internal/core/ports"
)

// notificationService records user-facing notifications. Provider
// integrations (email, SMS, push) are out of scope; each notification is
// logged and counted so the pipeline stays observable end to end.
type notificationService struct {
	log zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(log zerolog.Logger) ports.NotificationService {
	return &notificationService{log: log}
}

func (s *notificationService) Process(_ context.Context, n ports.NotificationInput) error {
	start := time.Now()

	s.log.Info().
		Str("kind", n.Kind).
		Str("subject_id", n.SubjectID).
		Str("user_id", n.UserID).
		Time("occurred", n.Occurred).
		Msg("notification delivered")

	metrics.NotificationDuration.WithLabelValues(n.Kind).Observe(time.Since(start).Seconds())
	return nil
}
