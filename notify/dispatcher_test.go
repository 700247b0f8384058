package notify_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"guest-push/domain"
	"guest-push/mocks"
	. "guest-push/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func chatNotification(chatID string) domain.Notification {
	return domain.Notification{
		Title: "New Message",
		Body:  "hi",
		Data: map[string]string{
			domain.DataKeyType:   domain.TypeChat,
			domain.DataKeyChatID: chatID,
		},
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockIResolver(ctrl)
	mockPusher := mocks.NewMockPusher(ctrl)
	dispatcher := NewDispatcher(mockResolver, mockPusher, slog.Default())

	n := chatNotification("c1")

	t.Run("should send when a token is on file", func(t *testing.T) {
		req := require.New(t)
		mockResolver.EXPECT().Resolve("u1").Return("token-u1", nil).Times(1)
		mockPusher.EXPECT().Send(gomock.Any(), "token-u1", n).Return(nil).Times(1)

		req.NoError(dispatcher.Dispatch(context.Background(), "u1", n))
	})

	t.Run("should drop silently when no token is on file", func(t *testing.T) {
		req := require.New(t)
		mockResolver.EXPECT().Resolve("u2").Return("", nil).Times(1)
		// The transport must never be called for an absent recipient
		mockPusher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req.NoError(dispatcher.Dispatch(context.Background(), "u2", n))
	})

	t.Run("should propagate transport failures", func(t *testing.T) {
		req := require.New(t)
		sendErr := fmt.Errorf("gateway rejected token")
		mockResolver.EXPECT().Resolve("u3").Return("token-u3", nil).Times(1)
		mockPusher.EXPECT().Send(gomock.Any(), "token-u3", n).Return(sendErr).Times(1)

		err := dispatcher.Dispatch(context.Background(), "u3", n)

		req.ErrorIs(err, sendErr)
	})
}

func TestDispatcher_DispatchAll_FailureIsolation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockIResolver(ctrl)
	mockPusher := mocks.NewMockPusher(ctrl)
	dispatcher := NewDispatcher(mockResolver, mockPusher, slog.Default())

	n := chatNotification("c1")
	sendErr := fmt.Errorf("unregistered token")

	// Given three resolvable recipients
	mockResolver.EXPECT().Resolve("A").Return("token-A", nil).Times(1)
	mockResolver.EXPECT().Resolve("B").Return("token-B", nil).Times(1)
	mockResolver.EXPECT().Resolve("C").Return("token-C", nil).Times(1)

	// Given the middle recipient fails at the transport
	var mu sync.Mutex
	sent := map[string]struct{}{}
	record := func(ctx context.Context, token string, _ domain.Notification) error {
		mu.Lock()
		defer mu.Unlock()
		sent[token] = struct{}{}
		if token == "token-B" {
			return sendErr
		}
		return nil
	}
	mockPusher.EXPECT().Send(gomock.Any(), gomock.Any(), n).DoAndReturn(record).Times(3)

	// When fanning out to all three
	err := dispatcher.DispatchAll(context.Background(), []string{"A", "B", "C"}, n)

	// Then every send was attempted and only B's failure is reported
	req.Len(sent, 3, "one failing recipient must not abort the siblings")
	req.ErrorIs(err, sendErr)
}

func TestDispatcher_DispatchAll_AllDelivered(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockIResolver(ctrl)
	mockPusher := mocks.NewMockPusher(ctrl)
	dispatcher := NewDispatcher(mockResolver, mockPusher, slog.Default())

	n := chatNotification("c1")
	mockResolver.EXPECT().Resolve(gomock.Any()).Return("a-token", nil).Times(2)
	mockPusher.EXPECT().Send(gomock.Any(), "a-token", n).Return(nil).Times(2)

	req.NoError(dispatcher.DispatchAll(context.Background(), []string{"B", "C"}, n))
}
