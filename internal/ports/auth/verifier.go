package auth

import "context"

// AuthVerifier valida el token de sesión (cookie) y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
