package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceStatus_TableIsExhaustive(t *testing.T) {
	req := require.New(t)

	for _, status := range ServiceStatuses() {
		_, mapped := serviceMessages[status]
		_, silent := silentServiceStatuses[status]
		req.Truef(mapped || silent,
			"status %q is neither mapped to a message nor declared silent", status)
		req.Falsef(mapped && silent,
			"status %q is both mapped and declared silent", status)
	}
}

func TestServiceStatus_Message(t *testing.T) {
	req := require.New(t)

	body, ok := ServiceAccepted.Message()
	req.True(ok)
	req.Equal("Your service request was accepted!", body)

	body, ok = ServiceDenied.Message()
	req.True(ok)
	req.Equal("Your service request was denied.", body)

	body, ok = ServiceCompleted.Message()
	req.True(ok)
	req.Equal("Your service request was completed!", body)

	_, ok = ServicePending.Message()
	req.False(ok)

	_, ok = ServiceStatus("escalated").Message()
	req.False(ok)
}
