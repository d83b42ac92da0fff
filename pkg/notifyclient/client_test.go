package notifyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MaterialCreated(t *testing.T) {
	var (
		mu       sync.Mutex
		received []Request
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/send", r.URL.Path)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		mu.Lock()
		received = append(received, req)
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", []string{"a@b.com", "c@d.com"}, time.Second)
	require.NoError(t, c.MaterialCreated(context.Background(), 3, "Algebra"))

	require.Len(t, received, 2)
	assert.Equal(t, "a@b.com", received[0].RecipientEmail)
	assert.Equal(t, "c@d.com", received[1].RecipientEmail)
	assert.Equal(t, "New material: Algebra", received[0].Subject)
	assert.Equal(t, ServiceSource, received[0].ServiceSource)
	assert.Equal(t, EventMaterialCreate, received[0].EventType)
	assert.Equal(t, "email", received[0].Type)
}

func TestClient_MaterialCreated_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid recipient_email"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, []string{"bad"}, time.Second).MaterialCreated(context.Background(), 1, "T")
	assert.ErrorContains(t, err, "status 422")
}

func TestClient_MaterialCreated_NoRecipients(t *testing.T) {
	err := New("http://127.0.0.1:1", nil, time.Second).MaterialCreated(context.Background(), 1, "T")
	assert.NoError(t, err)
}
