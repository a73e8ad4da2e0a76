package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si viene la cookie de sesión => intenta Verify() y setea claims.
// - Si no hay claims, el request sigue igual; RequireAdmin decide si corta.
func AuthContext(verifier auth.AuthVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(cookieName)
			if err != nil || strings.TrimSpace(c.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin corta los requests sin sesión: 401 JSON para AJAX,
// 303 a loginURL?next=... para navegación normal.
func RequireAdmin(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetClaims(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			if web.IsAJAX(r) {
				web.WriteStatus(w, http.StatusUnauthorized, web.StatusError, "Faça login para continuar.")
				return
			}
			web.Redirect(w, r, loginURL+"?next="+url.QueryEscape(r.URL.RequestURI()))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
