package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// ResponseCache guarda las respuestas GET públicas (catálogo y detalle).
// Cualquier escritura exitosa del panel la vacía.
type ResponseCache struct {
	store     *gocache.Cache
	listTTL   time.Duration
	detailTTL time.Duration
}

func NewResponseCache(listTTL, detailTTL time.Duration) *ResponseCache {
	return &ResponseCache{
		store:     gocache.New(listTTL, 2*listTTL),
		listTTL:   listTTL,
		detailTTL: detailTTL,
	}
}

func (c *ResponseCache) Flush() { c.store.Flush() }

func (c *ResponseCache) Len() int { return c.store.ItemCount() }

// ttlFor: las rutas con /gato/ son detalle, el resto listados.
func (c *ResponseCache) ttlFor(path string) time.Duration {
	if strings.Contains(path, "/gato/") {
		return c.detailTTL
	}
	return c.listTTL
}

// Cache sirve desde memoria las respuestas 200 de GET. Las peticiones con
// mensajes flash pendientes no se cachean.
func (c *ResponseCache) Cache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || hasFlashes(r) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if v, ok := c.store.Get(key); ok {
			resp := v.(cachedResponse)
			w.Header().Set("Content-Type", resp.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(resp.status)
			_, _ = w.Write(resp.body)
			return
		}

		rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			c.store.Set(key, cachedResponse{
				status:      rec.status,
				contentType: w.Header().Get("Content-Type"),
				body:        rec.buf.Bytes(),
			}, c.ttlFor(r.URL.Path))
		}
	})
}

// Invalidate vacía el cache después de cada escritura 2xx/3xx.
func (c *ResponseCache) Invalidate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		rec := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.status < http.StatusBadRequest {
			c.store.Flush()
		}
	})
}

func hasFlashes(r *http.Request) bool {
	ck, err := r.Cookie(web.FlashCookie)
	return err == nil && ck.Value != ""
}

type recordingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
