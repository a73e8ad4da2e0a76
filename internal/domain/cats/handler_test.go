package cats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
)

func newPublicRouter(svc *Service) (http.Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	r := chi.NewRouter()
	RegisterListRoutes(r, svc, log)
	RegisterDetailRoutes(r, svc, log)
	return r, logs
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListHandler_QueryErrorRendersEmptyList(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Create(context.Background(), validInput("Mimi", "F"))
	require.NoError(t, err)
	repo.listErr = errors.New("db down")

	h, logs := newPublicRouter(svc)

	for _, path := range []string{"/adocoes/?nome=mi", "/lares-temporarios/?q=mi"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body listResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotNil(t, body.Gatos)
		assert.Empty(t, body.Gatos)
		assert.Equal(t, "mi", body.Nome)
	}

	failed := logs.FilterMessage("catalog query failed").All()
	require.Len(t, failed, 2)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}

func TestDetailHandler_SimilarErrorStillRendersCat(t *testing.T) {
	svc, repo := newTestService()
	c, err := svc.Create(context.Background(), validInput("Mimi", "F"))
	require.NoError(t, err)
	repo.listErr = errors.New("db down")

	h, logs := newPublicRouter(svc)

	rec := get(t, h, "/adocoes/gato/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body detailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, c.ID, body.Gato.ID)
	assert.Equal(t, "Mimi", body.Gato.Nome)
	assert.NotNil(t, body.OutrosGatos)
	assert.Empty(t, body.OutrosGatos)

	warned := logs.FilterMessage("similar cats query failed").All()
	require.Len(t, warned, 1)
	assert.Equal(t, zapcore.WarnLevel, warned[0].Level)
	assert.Contains(t, warned[0].ContextMap()["err"], "db down")
}

func TestDetailHandler_UnknownCat(t *testing.T) {
	svc, _ := newTestService()
	h, logs := newPublicRouter(svc)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/adocoes/gato/99").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/lares-temporarios/gato/abc").Code)
	assert.Zero(t, logs.Len())
}
