package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"guest-push/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSendEndpoint(t *testing.T) {
	t.Run("should report success as a structured result", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.direct.EXPECT().
			SendDirect(gomock.Any(), "device-token", "Hello", "world",
				map[string]string{"type": "chat"}).
			Return(notify.SendResult{Success: true}).
			Times(1)

		resp := perform(server, http.MethodPost, "/api/v1/notifications/send",
			`{"token": "device-token", "title": "Hello", "body": "world", "dataPayload": {"type": "chat"}}`)

		req.Equal(http.StatusOK, resp.Code)
		var result notify.SendResult
		req.NoError(json.Unmarshal(resp.Body.Bytes(), &result))
		req.True(result.Success)
		req.Empty(result.Error)
	})

	t.Run("should report a transport failure with 200 and the message", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.direct.EXPECT().
			SendDirect(gomock.Any(), "bad-token", "Hello", "world", nil).
			Return(notify.SendResult{Success: false, Error: "requested entity was not found"}).
			Times(1)

		resp := perform(server, http.MethodPost, "/api/v1/notifications/send",
			`{"token": "bad-token", "title": "Hello", "body": "world"}`)

		req.Equal(http.StatusOK, resp.Code)
		var result notify.SendResult
		req.NoError(json.Unmarshal(resp.Body.Bytes(), &result))
		req.False(result.Success)
		req.Equal("requested entity was not found", result.Error)
	})

	t.Run("should reject a request without a token", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.direct.EXPECT().SendDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := perform(server, http.MethodPost, "/api/v1/notifications/send",
			`{"title": "Hello", "body": "world"}`)

		req.Equal(http.StatusBadRequest, resp.Code)
	})
}
