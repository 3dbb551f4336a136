package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kwagala/config"
	"kwagala/infras/otel/mocks"
	"kwagala/infras/postgres"
	adminService "kwagala/internal/domains/admin/service"
	bookingMocks "kwagala/internal/domains/booking/mocks"
	"kwagala/internal/domains/booking/model/dto"
	adminHandler "kwagala/internal/handlers/admin"
	bookingHandler "kwagala/internal/handlers/booking"
	"kwagala/permissions"
	"kwagala/shared/metrics"
	"kwagala/transport/http/middleware"
	"kwagala/transport/http/router"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminPass = "kwagala-admin"

type server struct {
	http     *HTTP
	bookings *bookingMocks.MockBookingService
}

func newServer(t *testing.T) server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "kwagala"
	cfg.App.Admin.Pass = adminPass
	cfg.App.Admin.Enforce = true
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://kwagalahomes.co.ke"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
	cfg.Server.Env = "development"

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	ot := mocks.NewOtel()
	m := metrics.New(cfg)
	ctrl := gomock.NewController(t)
	bookings := bookingMocks.NewMockBookingService(ctrl)
	admin := adminService.New(cfg, m, ot)

	r := router.New(router.DomainHandlers{
		Booking: bookingHandler.New(bookings, ot),
		Admin:   adminHandler.New(admin, ot),
	})

	h := New(
		cfg,
		r,
		middleware.NewAppMiddleware(ot, cfg, nil, m),
		middleware.NewAdminGate(admin, ot, permissions.Get(), cfg),
		m,
		&postgres.Connection{Read: db, Write: db},
		ot,
	)

	return server{http: h, bookings: bookings}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHTTP_Routes(t *testing.T) {
	s := newServer(t)
	handler := s.http.Handler()

	s.bookings.EXPECT().GetAll(gomock.Any()).Return([]dto.BookingResponse{}, nil)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, httptest.NewRequest(http.MethodPost, "/api/bookings/bypass", strings.NewReader(`{"pass":"kwagala-admin"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Access allowed"}`, rec.Body.String())

	rec = serve(handler, httptest.NewRequest(http.MethodGet, "/api/bookings/admin", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/admin", nil)
	req.Header.Set("X-Admin-Pass", adminPass)
	rec = serve(handler, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(handler, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `kwagala_http_requests_total{method="GET",route="/api/bookings/admin",status="403"} 1`)
	assert.Contains(t, rec.Body.String(), `kwagala_admin_pass_checks_total{allowed="true"} 1`)

	rec = serve(handler, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/bookings/bypass")
}

func TestHTTP_CORSPreflight(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings/", nil)
	req.Header.Set("Origin", "https://kwagalahomes.co.ke")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := serve(s.http.Handler(), req)

	assert.Equal(t, "https://kwagalahomes.co.ke", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_Shutdown(t *testing.T) {
	s := newServer(t)
	handler := s.http.Handler()

	assert.True(t, s.http.Ready())

	s.http.state.Store(int32(ServerStateInGracePeriod))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.http.shutdown()

	assert.Equal(t, ServerStateInCleanupPeriod, s.http.State())
	assert.Error(t, s.http.DB.Ping(context.Background()))
}
