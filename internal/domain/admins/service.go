package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/validate"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("admin not found")
	ErrDuplicate          = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	DefaultSessionTTL = 14 * 24 * time.Hour
	minPasswordLen    = 8
)

type Service struct {
	repo Repository
	ttl  time.Duration
	cost int
	now  func() time.Time
}

func NewService(repo Repository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Service{
		repo: repo,
		ttl:  sessionTTL,
		cost: bcrypt.DefaultCost,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Create da de alta una cuenta del equipo con la contraseña hasheada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Admin, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	verrs := validate.Errors{}
	verrs.Required("usuario", in.Username)
	verrs.MaxLen("usuario", in.Username, 150)
	verrs.Email("email", in.Email)
	if len(in.Password) < minPasswordLen {
		verrs.Add("senha", fmt.Sprintf("A senha deve ter pelo menos %d caracteres.", minPasswordLen))
	}
	if err := verrs.Err(); err != nil {
		return Admin{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	exists, err := s.repo.Exists(ctx, in.Username, in.Email)
	if err != nil {
		return Admin{}, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return Admin{}, ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Admin{}, fmt.Errorf("hash password: %w", err)
	}

	a := Admin{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return a, nil
}

// Login acepta e-mail o nombre de usuario. Cualquier falla de credenciales
// devuelve ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (Session, Admin, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return Session{}, Admin{}, ErrInvalidCredentials
	}

	a, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, Admin{}, ErrInvalidCredentials
		}
		return Session{}, Admin{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return Session{}, Admin{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{
		Token:     uuid.NewString(),
		AdminID:   a.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return Session{}, Admin{}, fmt.Errorf("create session: %w", err)
	}
	return sess, a, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}

// Authenticate resuelve el dueño de una sesión vigente.
// Las sesiones vencidas se borran al encontrarlas.
func (s *Service) Authenticate(ctx context.Context, token string) (Admin, error) {
	sess, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return Admin{}, err
	}
	if sess.Expired(s.now()) {
		_ = s.repo.DeleteSession(ctx, token)
		return Admin{}, ErrSessionExpired
	}
	return s.repo.GetByID(ctx, sess.AdminID)
}

// PurgeSessions borra las sesiones vencidas.
func (s *Service) PurgeSessions(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredSessions(ctx, s.now())
}

func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}
