//go:generate go run go.uber.org/mock/mockgen -source=chat_message.go -destination=../mocks/mock_chat_message_handler.go -package=mocks
package notify

import (
	"context"
	"log/slog"

	"guest-push/domain"
	"guest-push/errors"
	"guest-push/repositories"

	"github.com/samber/lo"
)

type IChatMessageHandler interface {
	HandleNewMessage(ctx context.Context, msg domain.ChatMessage) error
}

// ChatMessageHandler observes chat message creation events.
type ChatMessageHandler struct {
	chats      repositories.IChatRepository
	dispatcher IDispatcher
	log        *slog.Logger
}

func NewChatMessageHandler(chats repositories.IChatRepository, dispatcher IDispatcher, log *slog.Logger) IChatMessageHandler {
	return &ChatMessageHandler{chats: chats, dispatcher: dispatcher, log: log}
}

// HandleNewMessage notifies every chat participant except the sender.
// An unknown chat means an empty participant list, not an error.
func (h *ChatMessageHandler) HandleNewMessage(ctx context.Context, msg domain.ChatMessage) error {
	chat, err := h.chats.GetChat(msg.ChatID)
	if errors.Is(err, errors.ErrChatNotFound) {
		h.log.Warn("Chat not found, nobody to notify", "chat", msg.ChatID)
		return nil
	}
	if err != nil {
		return err
	}

	recipients := lo.Uniq(lo.Filter(chat.Participants, func(id string, _ int) bool {
		return id != msg.SenderID
	}))
	if len(recipients) == 0 {
		return nil
	}

	return h.dispatcher.DispatchAll(ctx, recipients, domain.Notification{
		Title: "New Message",
		Body:  msg.NotificationBody(),
		Data: map[string]string{
			domain.DataKeyType:   domain.TypeChat,
			domain.DataKeyChatID: msg.ChatID,
		},
	})
}
