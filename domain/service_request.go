package domain

// ServiceStatus is the closed set of states a service request moves through.
type ServiceStatus string

const (
	ServicePending   ServiceStatus = "pending"
	ServiceAccepted  ServiceStatus = "accepted"
	ServiceDenied    ServiceStatus = "denied"
	ServiceCompleted ServiceStatus = "completed"
)

// ServiceStatuses lists every declared status for the message-table test.
func ServiceStatuses() []ServiceStatus {
	return []ServiceStatus{ServicePending, ServiceAccepted, ServiceDenied, ServiceCompleted}
}

var serviceMessages = map[ServiceStatus]string{
	ServiceAccepted:  "Your service request was accepted!",
	ServiceDenied:    "Your service request was denied.",
	ServiceCompleted: "Your service request was completed!",
}

// silentServiceStatuses produce no notification on purpose.
var silentServiceStatuses = map[ServiceStatus]struct{}{
	ServicePending: {},
}

// Message returns the notification body for a transition into s.
// ok is false when the transition is deliberately silent or s is unknown.
func (s ServiceStatus) Message() (string, bool) {
	body, ok := serviceMessages[s]
	return body, ok
}

// ServiceRequest is a snapshot of a service request document.
type ServiceRequest struct {
	ID          string        `json:"id"`
	HotelID     string        `json:"hotelId"`
	ClientID    string        `json:"clientId"`
	ServiceType string        `json:"serviceType"`
	Status      ServiceStatus `json:"status"`
}
