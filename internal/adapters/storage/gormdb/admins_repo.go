package gormdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
)

type AdminsRepo struct {
	db *gorm.DB
}

func NewAdminsRepo(db *gorm.DB) *AdminsRepo {
	return &AdminsRepo{db: db}
}

func (r *AdminsRepo) Create(ctx context.Context, a *admins.Admin) error {
	rec := adminRecord{
		Name:         a.Name,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	a.ID = rec.ID
	return nil
}

func (r *AdminsRepo) GetByID(ctx context.Context, id uint) (admins.Admin, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *AdminsRepo) GetByLogin(ctx context.Context, login string) (admins.Admin, error) {
	login = strings.TrimSpace(login)
	return r.first(r.db.WithContext(ctx).Where("LOWER(email) = ? OR username = ?", strings.ToLower(login), login))
}

func (r *AdminsRepo) first(q *gorm.DB) (admins.Admin, error) {
	var rec adminRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admins.Admin{}, admins.ErrNotFound
		}
		return admins.Admin{}, err
	}
	return rec.toDomain(), nil
}

func (r *AdminsRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adminRecord{}).
		Where("username = ? OR LOWER(email) = ?", username, strings.ToLower(email)).
		Count(&n).Error
	return n > 0, err
}

func (r *AdminsRepo) CreateSession(ctx context.Context, s admins.Session) error {
	return r.db.WithContext(ctx).Create(&sessionRecord{
		Token:     s.Token,
		AdminID:   s.AdminID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}).Error
}

func (r *AdminsRepo) GetSession(ctx context.Context, token string) (admins.Session, error) {
	var rec sessionRecord
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admins.Session{}, admins.ErrSessionNotFound
		}
		return admins.Session{}, err
	}
	return rec.toDomain(), nil
}

func (r *AdminsRepo) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&sessionRecord{}).Error
}

func (r *AdminsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&sessionRecord{})
	return res.RowsAffected, res.Error
}
