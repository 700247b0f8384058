package domain

import "time"

// FallbackMessageBody replaces an empty message text in the notification.
// Kept from the original behavior: a message with no text still notifies.
const FallbackMessageBody = "You have a new message"

// Chat groups the participants able to exchange messages.
type Chat struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
}

// ChatMessage is an immutable chat event. Only its creation is observed.
type ChatMessage struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// NotificationBody returns the text shown to recipients.
func (m ChatMessage) NotificationBody() string {
	if m.Text == "" {
		return FallbackMessageBody
	}
	return m.Text
}
