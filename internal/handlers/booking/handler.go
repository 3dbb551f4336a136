package booking

import (
	"net/http"

	"kwagala/infras/otel"
	"kwagala/internal/domains/booking/export"
	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/booking/service"
	"kwagala/shared/constant"
	"kwagala/shared/validator"
	"kwagala/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageCreated = "Booking created successfully"
	messageDeleted = "Booking deleted successfully"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the booking endpoints relative to the bookings mount point.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateBooking)
	router.Get("/admin", handler.GetBookings)
	router.Get("/admin/export", handler.ExportBookings)
	router.Delete("/", handler.DeleteBooking)
	router.Delete("/{id}", handler.DeleteBooking)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Store a pending booking and email the admin. A mail failure answers 500 although the booking is kept.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Status
// @Failure 500 {object} response.Status
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking created " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{
		Message: messageCreated,
		Booking: booking,
	})
}

// GetBookings lists every booking for the admin page.
// @Summary List bookings
// @Description Every booking, newest first. No pagination.
// @Tags Booking
// @Produce json
// @Param X-Admin-Pass header string false "Admin pass, required when APP_ADMIN_ENFORCE is on"
// @Success 200 {array} dto.BookingResponse
// @Failure 403 {object} response.Status
// @Failure 500 {object} response.Status
// @Router /api/bookings/admin [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("bookings.count", len(bookings))

	response.WithJSON(writer, http.StatusOK, bookings)
}

// ExportBookings downloads every booking as a spreadsheet.
// @Summary Export bookings
// @Tags Booking
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Admin-Pass header string false "Admin pass, required when APP_ADMIN_ENFORCE is on"
// @Success 200 {file} file
// @Failure 403 {object} response.Status
// @Failure 500 {object} response.Status
// @Router /api/bookings/admin/export [get]
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	raw, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(writer, err)

		return
	}

	response.WithFile(writer, constant.ContentTypeXLSX, export.FileName, raw)
}

// DeleteBooking removes a booking permanently.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Admin-Pass header string false "Admin pass, required when APP_ADMIN_ENFORCE is on"
// @Success 200 {object} response.Status
// @Failure 400 {object} response.Status
// @Failure 403 {object} response.Status
// @Failure 404 {object} response.Status
// @Failure 500 {object} response.Status
// @Router /api/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageDeleted)
}
