package notify_test

import (
	"context"
	"log/slog"
	"testing"

	"guest-push/domain"
	"guest-push/mocks"
	. "guest-push/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckInHandler_HandleStatusChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := mocks.NewMockIDispatcher(ctrl)
	handler := NewCheckInHandler(mockDispatcher, slog.Default())

	t.Run("should notify the client when a check-in is approved", func(t *testing.T) {
		req := require.New(t)
		expected := domain.Notification{
			Title: "Check-In Update",
			Body:  "Your check-in was approved!",
			Data: map[string]string{
				domain.DataKeyType:   domain.TypeCheckIn,
				domain.DataKeyStatus: "approved",
			},
		}
		mockDispatcher.EXPECT().
			Dispatch(gomock.Any(), "u1", expected).
			Return(nil).
			Times(1)

		before := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInPending}
		after := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInApproved}
		req.NoError(handler.HandleStatusChange(context.Background(), before, after))
	})

	t.Run("should do nothing when the status did not change", func(t *testing.T) {
		req := require.New(t)
		mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		snapshot := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInPending}
		req.NoError(handler.HandleStatusChange(context.Background(), snapshot, snapshot))
	})

	t.Run("should do nothing for a silent status", func(t *testing.T) {
		req := require.New(t)
		mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		before := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInApproved}
		after := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInPending}
		req.NoError(handler.HandleStatusChange(context.Background(), before, after))
	})

	t.Run("should do nothing for an unknown status", func(t *testing.T) {
		req := require.New(t)
		mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		before := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInPending}
		after := domain.CheckInRequest{ID: "r1", ClientID: "u1", Status: domain.CheckInStatus("cancelled")}
		req.NoError(handler.HandleStatusChange(context.Background(), before, after))
	})
}
