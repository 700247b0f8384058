package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every declared status must either map to a body or be listed as silent.
// This is the guard against a new status being swallowed without a decision.
func TestCheckInStatus_TableIsExhaustive(t *testing.T) {
	req := require.New(t)

	for _, status := range CheckInStatuses() {
		_, mapped := checkInMessages[status]
		_, silent := silentCheckInStatuses[status]
		req.Truef(mapped || silent,
			"status %q is neither mapped to a message nor declared silent", status)
		req.Falsef(mapped && silent,
			"status %q is both mapped and declared silent", status)
	}
}

func TestCheckInStatus_Message(t *testing.T) {
	req := require.New(t)

	body, ok := CheckInApproved.Message()
	req.True(ok)
	req.Equal("Your check-in was approved!", body)

	body, ok = CheckInRejected.Message()
	req.True(ok)
	req.Equal("Your check-in was rejected.", body)

	body, ok = CheckInCheckedOut.Message()
	req.True(ok)
	req.Equal("You have checked out.", body)

	_, ok = CheckInPending.Message()
	req.False(ok, "pending never notifies")

	_, ok = CheckInStatus("cancelled").Message()
	req.False(ok, "unknown statuses never notify")
}
