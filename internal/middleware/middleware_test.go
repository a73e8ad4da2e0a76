package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/auth"
)

type fakeVerifier struct {
	token string
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != f.token {
		return auth.Claims{}, errors.New("invalid")
	}
	return auth.Claims{AdminID: 7, Username: "ana"}, nil
}

func protected() http.Handler {
	mw := AuthContext(fakeVerifier{token: "good"}, "sessionid")
	return mw(RequireAdmin("/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := GetClaims(r.Context())
		_, _ = w.Write([]byte(c.Username))
	})))
}

func TestRequireAdmin_ValidSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/adocoes", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "good"})
	rec := httptest.NewRecorder()

	protected().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", rec.Body.String())
}

func TestRequireAdmin_RedirectsPages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/adocoes?nome=mi", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "stale"})
	rec := httptest.NewRecorder()

	protected().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fadmin%2Fdashboard%2Fadocoes%3Fnome%3Dmi", rec.Header().Get("Location"))
}

func TestRequireAdmin_AJAXGets401(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin/gatos/1/excluir", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec := httptest.NewRecorder()

	protected().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"erro"`)
}

func TestGetClaims_Empty(t *testing.T) {
	_, ok := GetClaims(context.Background())
	assert.False(t, ok)
}

func TestRecover_Returns500(t *testing.T) {
	h := Recover(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro interno.")
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	h := rl.Middleware(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/adocoes/solicitar", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// otra IP tiene su propio balde
	req := httptest.NewRequest(http.MethodPost, "/adocoes/solicitar", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// los GET no cuentan
	get := httptest.NewRequest(http.MethodGet, "/adocoes/", nil)
	get.RemoteAddr = "10.0.0.1:5555"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, get)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	for range 50 {
		require.True(t, rl.allow("1.2.3.4"))
	}
}

func TestResponseCache_HitThenFlushOnWrite(t *testing.T) {
	c := NewResponseCache(time.Minute, time.Minute)
	calls := 0
	list := c.Cache(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		web.WriteJSON(w, http.StatusOK, map[string]int{"n": calls})
	}))
	write := c.Invalidate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		list.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adocoes/?sexo=F", nil))
		return rec
	}

	first := get()
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	second := get()
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.Equal(t, 1, calls)

	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/gatos", strings.NewReader("")))
	assert.Equal(t, 0, c.Len())

	third := get()
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestResponseCache_FailedWriteKeepsEntries(t *testing.T) {
	c := NewResponseCache(time.Minute, time.Minute)
	list := c.Cache(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, "ok")
	}))
	list.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/adocoes/gato/1", nil))
	require.Equal(t, 1, c.Len())

	write := c.Invalidate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/gatos", nil))

	assert.Equal(t, 1, c.Len())
}

func TestResponseCache_SkipsPendingFlashes(t *testing.T) {
	c := NewResponseCache(time.Minute, time.Minute)
	list := c.Cache(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, "ok")
	}))
	req := httptest.NewRequest(http.MethodGet, "/adocoes/", nil)
	req.AddCookie(&http.Cookie{Name: web.FlashCookie, Value: "x"})

	list.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 0, c.Len())
}
