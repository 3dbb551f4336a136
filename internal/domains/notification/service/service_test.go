package service_test

import (
	"context"
	"errors"
	"testing"

	"kwagala/config"
	"kwagala/infras/mail"
	mailMocks "kwagala/infras/mail/mocks"
	otelMocks "kwagala/infras/otel/mocks"
	"kwagala/internal/domains/booking/model/dto"
	"kwagala/internal/domains/notification/service"
	"kwagala/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func booking() dto.BookingResponse {
	return dto.BookingResponse{
		ID:          "0190a7e2-7a6c-7cc4-9d3a-3f1c2b9e0a11",
		Location:    "CBD",
		Room:        "One bedroom",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-03",
		Nights:      2,
		Amount:      8000,
		PhoneNumber: "0790074065",
		Status:      "pending",
	}
}

func setup(t *testing.T, adminAddress string) (service.Notification, *mailMocks.MockClient, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mailClient := mailMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Mail.Username = "bookings@kwagala.test"
	cfg.Mail.AdminAddress = adminAddress

	m := metrics.New(cfg)

	return service.New(mailClient, cfg, m, otelMocks.NewOtel()), mailClient, m
}

func TestNotify(t *testing.T) {
	svc, mailClient, m := setup(t, "admin@kwagala.test")

	var sent mail.Message
	mailClient.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mail.Message) error {
		sent = msg

		return nil
	})

	require.NoError(t, svc.Notify(context.Background(), booking()))

	assert.Equal(t, []string{"admin@kwagala.test"}, sent.To)
	assert.Equal(t, "New Booking Request", sent.Subject)
	assert.Contains(t, sent.HTML, "CBD")
	assert.Contains(t, sent.HTML, "8,000")

	count, err := testutil.GatherAndCount(m.Registry(), "kwagala_booking_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotify_DefaultsToSenderMailbox(t *testing.T) {
	svc, mailClient, _ := setup(t, "")

	mailClient.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mail.Message) error {
		assert.Equal(t, []string{"bookings@kwagala.test"}, msg.To)

		return nil
	})

	require.NoError(t, svc.Notify(context.Background(), booking()))
}

func TestNotify_RelayError(t *testing.T) {
	svc, mailClient, _ := setup(t, "admin@kwagala.test")

	relayErr := errors.New("535 authentication failed")
	mailClient.EXPECT().Send(gomock.Any(), gomock.Any()).Return(relayErr)

	err := svc.Notify(context.Background(), booking())

	require.Error(t, err)
	assert.ErrorIs(t, err, relayErr)
}
