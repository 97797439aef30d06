package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-rescue/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_PostsPayload(t *testing.T) {
	var got payload
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	s, err := New(Config{URL: ts.URL, Token: "t0k"})
	require.NoError(t, err)

	err = s.Send(context.Background(), notify.Message{
		From:    "rescue@test.local",
		To:      []string{"a@x.com"},
		Subject: "Rescue Team Acknowledged Your Report",
		Body:    "Dear Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer t0k", auth)
	assert.Equal(t, []string{"a@x.com"}, got.To)
	assert.Equal(t, "Rescue Team Acknowledged Your Report", got.Subject)
}

func TestSink_UpstreamErrorIsReturned(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	s, err := New(Config{URL: ts.URL})
	require.NoError(t, err)

	err = s.Send(context.Background(), notify.Message{To: []string{"a@x.com"}})
	assert.Error(t, err)
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New(Config{URL: "not-a-url"})
	assert.Error(t, err)
}
