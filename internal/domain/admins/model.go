package admins

import "time"

// Admin es una cuenta del equipo del abrigo.
type Admin struct {
	ID           uint
	Name         string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session es una sesión de login guardada en la base; Token va en la cookie.
type Session struct {
	Token     string
	AdminID   uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
