//go:generate go run go.uber.org/mock/mockgen -source=direct.go -destination=../mocks/mock_direct_sender.go -package=mocks
package notify

import (
	"context"
	"log/slog"

	"guest-push/contract"
	"guest-push/domain"
)

type IDirectSender interface {
	SendDirect(ctx context.Context, token, title, body string, data map[string]string) SendResult
}

// SendResult is the wire contract of the direct-send entry point.
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DirectSender pushes to an explicit device token supplied by the caller,
// bypassing recipient resolution. This is the one place where transport
// failures are caught and reported instead of propagated.
type DirectSender struct {
	pusher contract.Pusher
	log    *slog.Logger
}

func NewDirectSender(pusher contract.Pusher, log *slog.Logger) IDirectSender {
	return &DirectSender{pusher: pusher, log: log}
}

func (s *DirectSender) SendDirect(ctx context.Context, token, title, body string, data map[string]string) SendResult {
	if data == nil {
		data = map[string]string{}
	}

	err := s.pusher.Send(ctx, token, domain.Notification{Title: title, Body: body, Data: data})
	if err != nil {
		s.log.Warn("Direct send failed", "error", err)
		return SendResult{Success: false, Error: err.Error()}
	}

	return SendResult{Success: true}
}
