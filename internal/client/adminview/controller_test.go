package adminview_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"kwagala/internal/client/adminview"
	"kwagala/internal/client/adminview/mocks"
	"kwagala/internal/client/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clock() time.Time {
	return now
}

func TestController_Verify(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(client *mocks.MockClient)
		wantState adminview.State
		wantError string
		wantLoad  string
		wantCount int
	}{
		{
			name: "accepted pass loads the list",
			setupMock: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil),
					client.EXPECT().ListBookings(gomock.Any()).Return(bookings, nil),
				)
			},
			wantState: adminview.Unlocked,
			wantCount: 2,
		},
		{
			name: "wrong pass shows the server message",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").
					Return(&api.Error{StatusCode: http.StatusForbidden, Message: "Access denied"})
			},
			wantState: adminview.Locked,
			wantError: "Access denied",
		},
		{
			name: "unreachable server falls back",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(errors.New("connection refused"))
			},
			wantState: adminview.Locked,
			wantError: adminview.MessageVerifyFailed,
		},
		{
			name: "list failure after unlocking",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil)
				client.EXPECT().ListBookings(gomock.Any()).
					Return(nil, &api.Error{StatusCode: http.StatusInternalServerError, Message: "Server error"})
			},
			wantState: adminview.Unlocked,
			wantLoad:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)

			c := adminview.NewController(client, adminview.WithClock(clock))

			v, err := c.Verify(context.Background(), "s3cret")

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, v.State)
			assert.Equal(t, tt.wantError, v.Error)
			assert.Equal(t, tt.wantLoad, v.LoadError)
			assert.Len(t, v.Bookings, tt.wantCount)
			assert.False(t, v.Loading)
			assert.Equal(t, v, c.View())

			if tt.wantError != "" {
				assert.Equal(t, now.Add(adminview.ErrorDisplay), v.ErrorUntil)
			}
		})
	}
}

func TestController_VerifyTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil)
	client.EXPECT().ListBookings(gomock.Any()).Return(bookings, nil)

	c := adminview.NewController(client)
	_, err := c.Verify(context.Background(), "s3cret")
	require.NoError(t, err)

	_, err = c.Verify(context.Background(), "s3cret")
	assert.ErrorIs(t, err, adminview.ErrInvalidTransition)
}

func TestController_Delete(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(client *mocks.MockClient)
		wantDelete string
		wantCount  int
		wantTarget string
	}{
		{
			name: "deleted then reloaded",
			setupMock: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().DeleteBooking(gomock.Any(), "b1").Return(nil),
					client.EXPECT().ListBookings(gomock.Any()).Return(bookings[:1], nil),
				)
			},
			wantCount: 1,
		},
		{
			name: "server rejects the delete",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().DeleteBooking(gomock.Any(), "b1").
					Return(&api.Error{StatusCode: http.StatusNotFound, Message: "Booking not found"})
			},
			wantDelete: "Booking not found",
			wantCount:  2,
			wantTarget: "b1",
		},
		{
			name: "network failure falls back",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().DeleteBooking(gomock.Any(), "b1").Return(errors.New("timeout"))
			},
			wantDelete: adminview.MessageDeleteFailed,
			wantCount:  2,
			wantTarget: "b1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil)
			client.EXPECT().ListBookings(gomock.Any()).Return(bookings, nil)

			c := adminview.NewController(client)
			_, err := c.Verify(context.Background(), "s3cret")
			require.NoError(t, err)

			_, err = c.Dispatch(adminview.RequestDelete{ID: "b1"})
			require.NoError(t, err)

			tt.setupMock(client)

			v, err := c.Delete(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantDelete, v.DeleteError)
			assert.Equal(t, tt.wantTarget, v.ConfirmingDelete)
			assert.Len(t, v.Bookings, tt.wantCount)
			assert.False(t, v.Deleting)
		})
	}
}

func TestController_DeleteWithoutSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil)
	client.EXPECT().ListBookings(gomock.Any()).Return(bookings, nil)

	c := adminview.NewController(client)
	_, err := c.Verify(context.Background(), "s3cret")
	require.NoError(t, err)

	_, err = c.Delete(context.Background())
	assert.ErrorIs(t, err, adminview.ErrNothingToDelete)
}

func TestController_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	c := adminview.NewController(client)

	_, err := c.Reload(context.Background())
	require.ErrorIs(t, err, adminview.ErrInvalidTransition)

	client.EXPECT().VerifyAdminPass(gomock.Any(), "s3cret").Return(nil)
	client.EXPECT().ListBookings(gomock.Any()).Return(nil, nil)
	client.EXPECT().ListBookings(gomock.Any()).Return(bookings, nil)

	_, err = c.Verify(context.Background(), "s3cret")
	require.NoError(t, err)

	v, err := c.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, v.Bookings, 2)
}
