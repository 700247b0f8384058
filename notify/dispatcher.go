//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=../mocks/mock_dispatcher.go -package=mocks
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"guest-push/contract"
	"guest-push/domain"
	"guest-push/errors"

	"github.com/google/uuid"
)

type IDispatcher interface {
	Dispatch(ctx context.Context, userID string, n domain.Notification) error
	DispatchAll(ctx context.Context, userIDs []string, n domain.Notification) error
}

// Dispatcher resolves a recipient and invokes the push transport.
type Dispatcher struct {
	resolver IResolver
	pusher   contract.Pusher
	log      *slog.Logger
}

func NewDispatcher(resolver IResolver, pusher contract.Pusher, log *slog.Logger) IDispatcher {
	return &Dispatcher{resolver: resolver, pusher: pusher, log: log}
}

// Dispatch sends a notification to a single user.
// A recipient without a push token is dropped silently: undeliverable
// notifications are neither queued nor retried. Transport failures
// propagate to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, n domain.Notification) error {
	token, err := d.resolver.Resolve(userID)
	if err != nil {
		return err
	}
	if token == "" {
		d.log.Debug("No push token on file, dropping notification",
			"user", userID, "type", n.Data[domain.DataKeyType])
		return nil
	}

	dispatchID := uuid.New().String()
	d.log.Info("Dispatching notification",
		"dispatch", dispatchID, "user", userID, "type", n.Data[domain.DataKeyType])

	if err := d.pusher.Send(ctx, token, n); err != nil {
		return fmt.Errorf("dispatch %s to user %s: %w", dispatchID, userID, err)
	}
	return nil
}

// DispatchAll fans a notification out to every recipient concurrently.
// A failing recipient never prevents the remaining sends; per-recipient
// failures are joined into the returned error so the caller sees each one.
func (d *Dispatcher) DispatchAll(ctx context.Context, userIDs []string, n domain.Notification) error {
	var wg sync.WaitGroup
	errs := make([]error, len(userIDs))

	for i, userID := range userIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = d.Dispatch(ctx, userID, n)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
