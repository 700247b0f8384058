package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatMessage_NotificationBody(t *testing.T) {
	req := require.New(t)

	msg := ChatMessage{ChatID: "c1", SenderID: "A", Text: "hi"}
	req.Equal("hi", msg.NotificationBody())

	empty := ChatMessage{ChatID: "c1", SenderID: "A"}
	req.Equal(FallbackMessageBody, empty.NotificationBody())
}
