package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"guest-push/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetPushToken(t *testing.T) {
	t.Run("should register the token", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.users.EXPECT().SetPushToken("u1", "device-token").Return(nil).Times(1)

		resp := perform(server, http.MethodPut, "/api/v1/users/u1/push-token",
			`{"token": "device-token"}`)

		req.Equal(http.StatusNoContent, resp.Code)
	})

	t.Run("should reject an empty token", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.users.EXPECT().SetPushToken(gomock.Any(), gomock.Any()).Times(0)

		resp := perform(server, http.MethodPut, "/api/v1/users/u1/push-token", `{}`)

		req.Equal(http.StatusBadRequest, resp.Code)
	})

	t.Run("should answer 500 when the store fails", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.users.EXPECT().
			SetPushToken("u1", "device-token").
			Return(fmt.Errorf("disk on fire")).
			Times(1)

		resp := perform(server, http.MethodPut, "/api/v1/users/u1/push-token",
			`{"token": "device-token"}`)

		req.Equal(http.StatusInternalServerError, resp.Code)
	})
}

func TestSaveChat(t *testing.T) {
	t.Run("should save the participant list", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.chats.EXPECT().
			SaveChat(domain.Chat{ID: "c1", Participants: []string{"A", "B", "C"}}).
			Return(nil).
			Times(1)

		resp := perform(server, http.MethodPut, "/api/v1/chats/c1",
			`{"participants": ["A", "B", "C"]}`)

		req.Equal(http.StatusNoContent, resp.Code)
	})

	t.Run("should reject an empty participant list", func(t *testing.T) {
		req := require.New(t)
		server, m := newTestServer(t)

		m.chats.EXPECT().SaveChat(gomock.Any()).Times(0)

		resp := perform(server, http.MethodPut, "/api/v1/chats/c1", `{"participants": []}`)

		req.Equal(http.StatusBadRequest, resp.Code)
	})
}

func TestSetReceptionist(t *testing.T) {
	req := require.New(t)
	server, m := newTestServer(t)

	m.staff.EXPECT().SetReceptionist("h1", "reception-h1").Return(nil).Times(1)

	resp := perform(server, http.MethodPut, "/api/v1/hotels/h1/receptionist",
		`{"userId": "reception-h1"}`)

	req.Equal(http.StatusNoContent, resp.Code)
}
