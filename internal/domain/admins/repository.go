package admins

import (
	"context"
	"time"
)

// Repository devuelve ErrNotFound / ErrSessionNotFound para registros inexistentes.
type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id uint) (Admin, error)
	// GetByLogin busca por e-mail (sin distinguir mayúsculas) o por usuario.
	GetByLogin(ctx context.Context, login string) (Admin, error)
	Exists(ctx context.Context, username, email string) (bool, error)

	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
