package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"guest-push/domain"

	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	req := require.New(t)

	var captured sendRequest
	var capturedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, sendPath, r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")

	n := domain.Notification{
		Title: "New Message",
		Body:  "hi",
		Data:  map[string]string{"type": "chat", "chatId": "c1"},
	}
	req.NoError(client.Send(context.Background(), "device-token", n))

	req.Equal("Bearer secret-key", capturedAuth)
	req.Equal("device-token", captured.To)
	req.Equal("New Message", captured.Notification.Title)
	req.Equal("hi", captured.Notification.Body)
	req.Equal(map[string]string{"type": "chat", "chatId": "c1"}, captured.Data)
}

func TestClient_Send_NilDataBecomesEmptyMapping(t *testing.T) {
	req := require.New(t)

	var captured sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	req.NoError(client.Send(context.Background(), "device-token", domain.Notification{Title: "t", Body: "b"}))

	req.NotNil(captured.Data)
	req.Empty(captured.Data)
}

func TestClient_Send_GatewayRejection(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "requested entity was not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	err := client.Send(context.Background(), "stale-token", domain.Notification{Title: "t", Body: "b"})

	req.Error(err)
	req.Contains(err.Error(), "requested entity was not found")
}

func TestClient_Send_OpaqueGatewayError(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream melted", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	err := client.Send(context.Background(), "device-token", domain.Notification{Title: "t", Body: "b"})

	req.Error(err)
	req.Contains(err.Error(), "status=502")
}
