package fsmedia

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/photos"
)

// Cabecera mínima de PNG; DetectContentType solo mira la firma.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestStore_SaveAndServe(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "/media", 1024)

	url, err := s.Save(context.Background(), "mimi.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	exists, err := afero.Exists(fs, strings.TrimPrefix(url, "/media"))
	require.NoError(t, err)
	assert.True(t, exists)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestStore_RejectsNonImage(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/media/", 1024)
	_, err := s.Save(context.Background(), "notas.txt", strings.NewReader("apenas texto"))
	assert.ErrorIs(t, err, photos.ErrInvalidPhoto)
}

func TestStore_RejectsTooLarge(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/media/", 16)
	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)

	_, err := s.Save(context.Background(), "grande.png", bytes.NewReader(payload))
	require.ErrorIs(t, err, photos.ErrTooLarge)
	assert.Contains(t, err.Error(), "16 B")
}

func TestStore_HandlerDoesNotListDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "/media/", 1024)
	url, err := s.Save(context.Background(), "mimi.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll("/antigas", 0o755))

	for _, path := range []string{"/media/", "/media/antigas/", "/media/antigas"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), strings.TrimPrefix(url, "/media/"), path)
	}
}
