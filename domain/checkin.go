package domain

// CheckInStatus is the closed set of states a check-in request moves through.
type CheckInStatus string

const (
	CheckInPending    CheckInStatus = "pending"
	CheckInApproved   CheckInStatus = "approved"
	CheckInRejected   CheckInStatus = "rejected"
	CheckInCheckedOut CheckInStatus = "checked_out"
)

// CheckInStatuses lists every declared status. The message-table test
// walks it to catch a status added here but forgotten below.
func CheckInStatuses() []CheckInStatus {
	return []CheckInStatus{CheckInPending, CheckInApproved, CheckInRejected, CheckInCheckedOut}
}

var checkInMessages = map[CheckInStatus]string{
	CheckInApproved:   "Your check-in was approved!",
	CheckInRejected:   "Your check-in was rejected.",
	CheckInCheckedOut: "You have checked out.",
}

// silentCheckInStatuses produce no notification on purpose.
var silentCheckInStatuses = map[CheckInStatus]struct{}{
	CheckInPending: {},
}

// Message returns the notification body for a transition into s.
// ok is false when the transition is deliberately silent or s is unknown.
func (s CheckInStatus) Message() (string, bool) {
	body, ok := checkInMessages[s]
	return body, ok
}

// CheckInRequest is a snapshot of a check-in request document.
type CheckInRequest struct {
	ID       string        `json:"id"`
	ClientID string        `json:"clientId"`
	Status   CheckInStatus `json:"status"`
}
