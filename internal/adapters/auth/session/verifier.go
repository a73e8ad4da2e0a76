package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implementa auth.AuthVerifier con las sesiones guardadas en la base.
type Verifier struct {
	admins *admins.Service
}

func NewVerifier(svc *admins.Service) *Verifier {
	return &Verifier{admins: svc}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	a, err := v.admins.Authenticate(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("session verify failed: %w", err)
	}

	return auth.Claims{
		AdminID:  a.ID,
		Username: a.Username,
		Email:    a.Email,
	}, nil
}
