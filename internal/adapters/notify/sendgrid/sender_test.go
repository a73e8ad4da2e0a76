package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/httpclient"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

func TestSender_Notify(t *testing.T) {
	var got mailSend
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s, err := New(Config{APIKey: "SG.key", From: "site@abrigo.org", To: "abrigo@abrigo.org", BaseURL: srv.URL})
	require.NoError(t, err)

	err = s.Notify(context.Background(), notify.Message{Subject: "Nova solicitação", HTML: "<p>oi</p>"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer SG.key", auth)
	assert.Equal(t, "Nova solicitação", got.Subject)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "abrigo@abrigo.org", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "text/html", got.Content[0].Type)
}

func TestSender_Notify_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad key"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s, err := New(Config{APIKey: "x", To: "abrigo@abrigo.org", BaseURL: srv.URL})
	require.NoError(t, err)

	err = s.Notify(context.Background(), notify.Message{Subject: "x"})
	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(Config{To: "abrigo@abrigo.org"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
