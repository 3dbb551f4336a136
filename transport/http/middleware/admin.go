package middleware

import (
	"net/http"

	"kwagala/config"
	"kwagala/infras/otel"
	admin "kwagala/internal/domains/admin/service"
	"kwagala/permissions"
	"kwagala/shared/constant"
	"kwagala/shared/failure"
	"kwagala/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AdminGate guards the endpoints marked admin in permissions.json.
type AdminGate interface {
	Gate(next http.Handler) http.Handler
}

type adminGate struct {
	admin      admin.Admin
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAdminGate(admin admin.Admin, otel otel.Otel, permission *permissions.PermissionData, cfg *config.Config) AdminGate {
	if !cfg.App.Admin.Enforce {
		log.Warn().Msg("APP_ADMIN_ENFORCE is off, admin endpoints are open")
	}

	return &adminGate{
		admin:      admin,
		otel:       otel,
		permission: permission,
		cfg:        cfg,
	}
}

// Gate requires X-Admin-Pass on admin endpoints. With enforcement off every request passes.
func (m *adminGate) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.cfg.App.Admin.Enforce {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()

		rctx := chi.RouteContext(ctx)
		if rctx == nil || rctx.Routes == nil {
			next.ServeHTTP(writer, request)

			return
		}

		path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
		if !m.permission.IsAdmin(path, request.Method) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "admin.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "admin",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if !m.admin.Allowed(request.Header.Get(constant.RequestHeaderAdminPass)) {
			err := failure.AccessDenied
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
