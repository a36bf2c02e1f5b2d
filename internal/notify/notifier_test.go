package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/constants"
)

func TestWebhookDeliversPayload(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	docID := uuid.New()
	wh := NewWebhook(srv.URL, 5*time.Second, nil)
	err := wh.Notify(context.Background(), Payload{
		DocID:            docID,
		Status:           constants.DocumentCompleted,
		ArtifactsSummary: map[string]string{"export": "/out/doc.xlsx"},
	})
	require.NoError(t, err)

	assert.Equal(t, docID, got.DocID)
	assert.Equal(t, constants.DocumentCompleted, got.Status)
	assert.Equal(t, "/out/doc.xlsx", got.ArtifactsSummary["export"])
}

func TestWebhookRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, 5*time.Second, nil)
	err := wh.Notify(context.Background(), Payload{DocID: uuid.New(), Status: constants.DocumentFailed})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopNeverFails(t *testing.T) {
	assert.NoError(t, Noop{}.Notify(context.Background(), Payload{}))
}
