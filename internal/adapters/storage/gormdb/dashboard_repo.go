package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/dashboard"
)

type DashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) Counts(ctx context.Context) (dashboard.Counts, error) {
	var c dashboard.Counts
	db := r.db.WithContext(ctx)

	if err := db.Model(&catRecord{}).Where(notAdoptedCond).Count(&c.AwaitingAdoption).Error; err != nil {
		return dashboard.Counts{}, err
	}
	if err := db.Model(&catRecord{}).Where(notAdoptedCond).Where("needs_foster = ?", true).Count(&c.InFoster).Error; err != nil {
		return dashboard.Counts{}, err
	}
	if err := db.Model(&adoptedRecord{}).Count(&c.Adopted).Error; err != nil {
		return dashboard.Counts{}, err
	}
	return c, nil
}
