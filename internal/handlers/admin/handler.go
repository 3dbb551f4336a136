package admin

import (
	"net/http"

	"kwagala/infras/otel"
	"kwagala/internal/domains/admin/model/dto"
	"kwagala/internal/domains/admin/service"
	"kwagala/shared/constant"
	"kwagala/shared/validator"
	"kwagala/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const messageAllowed = "Access allowed"

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bypass", handler.VerifyPass)
}

// VerifyPass checks the admin pass typed on the admin page.
// @Summary Verify the admin pass
// @Description Compares the pass with APP_ADMIN_PASS. Nothing is issued on success.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VerifyPassRequest true "Admin pass"
// @Success 200 {object} response.Status
// @Failure 400 {object} response.Status
// @Failure 403 {object} response.Status
// @Router /api/bookings/bypass [post]
func (handler *Handler) VerifyPass(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPass")
	defer scope.End()

	req := dto.VerifyPassRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.VerifyPass(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageAllowed)
}
