package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"

	"kwagala/config"
	"kwagala/infras/otel"
	"kwagala/internal/domains/admin/model/dto"
	"kwagala/shared/constant"
	"kwagala/shared/failure"
	"kwagala/shared/metrics"

	"github.com/rs/zerolog/log"
)

type Admin interface {
	VerifyPass(ctx context.Context, req dto.VerifyPassRequest) error
	Allowed(pass string) bool
}

type serviceImpl struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(cfg *config.Config, m *metrics.Metrics, otel otel.Otel) Admin {
	if cfg.App.Admin.Pass == "" {
		log.Warn().Msg("APP_ADMIN_PASS is empty, every admin pass check will be denied")
	}

	return &serviceImpl{
		cfg:     cfg,
		metrics: m,
		otel:    otel,
	}
}

// Allowed compares pass to the configured secret in constant time. An unset secret matches nothing.
func (s *serviceImpl) Allowed(pass string) bool {
	secret := s.cfg.App.Admin.Pass
	if secret == "" || pass == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(pass), []byte(secret)) == 1
}

// VerifyPass answers the admin page's pass prompt. Nothing is issued on success.
func (s *serviceImpl) VerifyPass(ctx context.Context, req dto.VerifyPassRequest) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPass")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Pass == "" {
		return failure.PassRequired
	}

	allowed := s.Allowed(req.Pass)
	s.metrics.AdminVerification(allowed)

	if !allowed {
		log.Warn().Msg("admin pass rejected")

		return failure.AccessDenied
	}

	return nil
}
