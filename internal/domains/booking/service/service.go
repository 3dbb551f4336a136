package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"kwagala/infras/otel"
	"kwagala/internal/domains/booking/export"
	"kwagala/internal/domains/booking/model"
	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/booking/repository"
	notification "kwagala/internal/domains/notification/service"
	"kwagala/shared"
	"kwagala/shared/constant"
	gDto "kwagala/shared/dto"
	"kwagala/shared/failure"
	"kwagala/shared/metrics"
	"kwagala/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo         repository.Booking
	notification notification.Notification
	metrics      *metrics.Metrics
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	notification notification.Notification,
	m *metrics.Metrics,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		notification: notification,
		metrics:      m,
		otel:         otel,
	}
}

// Create stores a pending booking and then emails the admin. A mail failure is returned
// even though the booking is already stored.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		return res, failure.BadRequestFromString("checkOut must be after checkIn") //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"booking.location": booking.Location,
		"booking.room":     booking.Room,
		"booking.nights":   booking.Nights,
	})

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.metrics.BookingCreated(booking.Location)

	log.Info().Str("booking", booking.ID).Str("location", booking.Location).Msg("booking created")

	if err = s.notification.Notify(ctx, res); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("booking stored but admin was not notified")

		return res, fmt.Errorf("failed to notify admin of booking %s: %w", booking.ID, err)
	}

	return res, nil
}

// GetAll lists every booking, newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, gDto.Newest(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

// Delete hard-deletes one booking. Ids that are not UUIDs cannot exist and answer 404; any
// accepted spelling (upper case, braces, urn prefix) is looked up in canonical form.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == "" {
		return failure.BookingIDRequired
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return failure.BookingNotFound
	}

	removed, err := s.repo.Delete(ctx, shared.FilterByID(parsed.String(), model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if removed == 0 {
		return failure.BookingNotFound
	}

	s.metrics.BookingDeleted()

	log.Info().Str("booking", parsed.String()).Msg("booking deleted")

	return nil
}

// Export renders the same listing as GetAll as a spreadsheet.
func (s *serviceImpl) Export(ctx context.Context) (raw []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	raw, err = export.Workbook(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to export bookings")

		return nil, fmt.Errorf("failed to export bookings: %w", err)
	}

	return raw, nil
}
