//go:generate go run go.uber.org/mock/mockgen -source=checkin.go -destination=../mocks/mock_checkin_handler.go -package=mocks
package notify

import (
	"context"
	"log/slog"

	"guest-push/domain"
)

type ICheckInHandler interface {
	HandleStatusChange(ctx context.Context, before, after domain.CheckInRequest) error
}

// CheckInHandler observes check-in request update events.
type CheckInHandler struct {
	dispatcher IDispatcher
	log        *slog.Logger
}

func NewCheckInHandler(dispatcher IDispatcher, log *slog.Logger) ICheckInHandler {
	return &CheckInHandler{dispatcher: dispatcher, log: log}
}

// HandleStatusChange notifies the client when a check-in request moved to
// a status with a message on file. Unchanged or silent statuses no-op.
func (h *CheckInHandler) HandleStatusChange(ctx context.Context, before, after domain.CheckInRequest) error {
	if before.Status == after.Status {
		return nil
	}

	body, ok := after.Status.Message()
	if !ok {
		h.log.Debug("Check-in status carries no message, skipping",
			"request", after.ID, "status", after.Status)
		return nil
	}

	return h.dispatcher.Dispatch(ctx, after.ClientID, domain.Notification{
		Title: "Check-In Update",
		Body:  body,
		Data: map[string]string{
			domain.DataKeyType:   domain.TypeCheckIn,
			domain.DataKeyStatus: string(after.Status),
		},
	})
}
