package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"kwagala/config"
	"kwagala/infras/mail"
	"kwagala/infras/otel"
	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/notification/template"
	"kwagala/shared/constant"
	"kwagala/shared/metrics"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Notify(ctx context.Context, booking dto.BookingResponse) error
}

type serviceImpl struct {
	mail    mail.Client
	cfg     *config.Config
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(mailClient mail.Client, cfg *config.Config, m *metrics.Metrics, otel otel.Otel) Notification {
	return &serviceImpl{
		mail:    mailClient,
		cfg:     cfg,
		metrics: m,
		otel:    otel,
	}
}

// recipient falls back to the sending mailbox when no admin address is configured.
func (s *serviceImpl) recipient() string {
	if s.cfg.Mail.AdminAddress != "" {
		return s.cfg.Mail.AdminAddress
	}

	return s.cfg.Mail.Username
}

// Notify emails the admin about a new booking. There is no retry.
func (s *serviceImpl) Notify(ctx context.Context, booking dto.BookingResponse) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.id", booking.ID)

	body, err := template.Render(booking)
	if err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("failed to render booking email")
		s.metrics.Notification(metrics.OutcomeFailed)

		return err
	}

	err = s.mail.Send(ctx, mail.Message{
		To:      []string{s.recipient()},
		Subject: template.Subject,
		HTML:    body,
	})
	if err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("failed to send booking email")
		s.metrics.Notification(metrics.OutcomeFailed)

		return fmt.Errorf("failed to notify admin: %w", err)
	}

	s.metrics.Notification(metrics.OutcomeSent)

	return nil
}
