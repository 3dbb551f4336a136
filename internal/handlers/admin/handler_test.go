package admin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kwagala/infras/otel/mocks"
	adminMocks "kwagala/internal/domains/admin/mocks"
	"kwagala/internal/domains/admin/model/dto"
	"kwagala/internal/handlers/admin"
	"kwagala/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_VerifyPass(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *adminMocks.MockAdmin)
		wantCode  int
		wantBody  string
	}{
		{
			name: "correct pass",
			body: `{"pass":"kwagala-admin"}`,
			setupMock: func(svc *adminMocks.MockAdmin) {
				svc.EXPECT().VerifyPass(gomock.Any(), dto.VerifyPassRequest{Pass: "kwagala-admin"}).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Access allowed"}`,
		},
		{
			name: "wrong pass",
			body: `{"pass":"guess"}`,
			setupMock: func(svc *adminMocks.MockAdmin) {
				svc.EXPECT().VerifyPass(gomock.Any(), dto.VerifyPassRequest{Pass: "guess"}).Return(failure.AccessDenied)
			},
			wantCode: http.StatusForbidden,
			wantBody: `{"success":false,"message":"Access denied"}`,
		},
		{
			name: "empty pass",
			body: `{}`,
			setupMock: func(svc *adminMocks.MockAdmin) {
				svc.EXPECT().VerifyPass(gomock.Any(), dto.VerifyPassRequest{}).Return(failure.PassRequired)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Password is required"}`,
		},
		{
			name:     "not json",
			body:     `pass=guess`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := adminMocks.NewMockAdmin(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			handler := admin.New(svc, mocks.NewOtel())

			router := chi.NewRouter()
			router.Route("/api/bookings", handler.Router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/bypass", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
