package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatedesk/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishLedgerEvent(t *testing.T) {
	var received PubSubPushMessage
	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	event := &service.LedgerEvent{
		RequestID:     "req-1",
		Event:         service.LedgerEventConsumed,
		TransactionID: "tx-1",
		UserID:        "user-1",
		Type:          "building",
		Action:        "add",
		OccurredAt:    time.Now().UTC(),
	}

	err := publisher.PublishLedgerEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "tx-1", received.Message.MessageID)
	assert.Equal(t, service.LedgerEventConsumed, received.Message.Attributes["event"])

	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var payload service.LedgerEvent
	require.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, "tx-1", payload.TransactionID)
	assert.Equal(t, "building", payload.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	err := publisher.PublishLedgerEvent(context.Background(), &service.LedgerEvent{TransactionID: "tx-1"})
	assert.Error(t, err)
}
