package expo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsExpoPushToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[xxxxxxxxxxxxxxxxxxxxxx]", true},
		{"ExpoPushToken[xxxxxxxxxxxxxxxxxxxxxx]", true},
		{"", false},
		{"not-a-token", false},
		{"ExponentPushToken[unterminated", false},
		{"FCMToken[abc]", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsExpoPushToken(tt.token), tt.token)
	}
}

func TestClient_Send_AcceptedTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var msgs []Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msgs))
		require.Len(t, msgs, 1)
		assert.Equal(t, "ExponentPushToken[abc]", msgs[0].To)
		assert.Equal(t, "default", msgs[0].Sound)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []Ticket{{ID: "ticket-1", Status: "ok"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ticket, err := c.Send(context.Background(), Message{
		To:    "ExponentPushToken[abc]",
		Sound: "default",
		Title: "Meal Reminder",
	})
	require.NoError(t, err)
	assert.True(t, ticket.Accepted())
	assert.Equal(t, "ticket-1", ticket.ID)
}

func TestClient_Send_ErrorTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []Ticket{{Status: "error", Message: "DeviceNotRegistered"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ticket, err := c.Send(context.Background(), Message{To: "ExponentPushToken[abc]"})
	require.NoError(t, err)
	assert.False(t, ticket.Accepted())
	assert.Equal(t, "DeviceNotRegistered", ticket.Message)
}

func TestClient_Send_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Send(context.Background(), Message{To: "ExponentPushToken[abc]"})
	assert.Error(t, err)
}

func TestClient_Send_NoTickets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []Ticket{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Send(context.Background(), Message{To: "ExponentPushToken[abc]"})
	assert.Error(t, err)
}

func TestClient_Send_AccessTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []Ticket{{Status: "ok"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.Send(context.Background(), Message{To: "ExponentPushToken[abc]"})
	assert.NoError(t, err)
}

func TestClient_Send_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read can observe the
		// client disconnect and cancel the request context.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Send(ctx, Message{To: "ExponentPushToken[abc]"})
	assert.Error(t, err)
}
