// Package domain contains the core concepts of the guest-services
// notification system: the closed status enumerations, their message
// tables and the transient notification payload.
package domain

// Keys of the structured data attached to every notification.
// Clients route taps on a notification based on these values.
const (
	DataKeyType      = "type"
	DataKeyChatID    = "chatId"
	DataKeyStatus    = "status"
	DataKeyRequestID = "requestId"
)

// Event categories carried under DataKeyType.
const (
	TypeChat           = "chat"
	TypeCheckIn        = "checkin"
	TypeServiceRequest = "service_request"
)

// Notification is the payload handed to the push transport.
// It is constructed fresh for every dispatch and never persisted.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}
