package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
)

type FosterCareRepo struct {
	db *gorm.DB
}

func NewFosterCareRepo(db *gorm.DB) *FosterCareRepo {
	return &FosterCareRepo{db: db}
}

func fosterApplicationQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&fosterApplicationRecord{}).
		Select("lares_temporarios.*, COALESCE(gatos.name, '') AS cat_name").
		Joins("LEFT JOIN gatos ON gatos.id = lares_temporarios.cat_id")
}

func placementQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&placementRecord{}).
		Select("lares_temporarios_atuais.*, gatos.name AS cat_name").
		Joins("JOIN gatos ON gatos.id = lares_temporarios_atuais.cat_id").
		Preload("Application")
}

func historyQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&historyRecord{}).
		Select("historico_lares_temporarios.*, gatos.name AS cat_name").
		Joins("JOIN gatos ON gatos.id = historico_lares_temporarios.cat_id").
		Preload("Application")
}

// -------------------------
// Solicitudes
// -------------------------

func (r *FosterCareRepo) CreateApplication(ctx context.Context, a *fostercare.Application) error {
	rec := fosterApplicationRecord{
		CatID:         a.CatID,
		Answers:       a.Answers,
		AvailableFrom: a.AvailableFrom,
		CreatedAt:     a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	a.ID = rec.ID
	return nil
}

func (r *FosterCareRepo) GetApplication(ctx context.Context, id uint) (fostercare.Application, error) {
	var rec fosterApplicationRecord
	err := fosterApplicationQuery(r.db.WithContext(ctx)).Where("lares_temporarios.id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fostercare.Application{}, fostercare.ErrApplicationNotFound
		}
		return fostercare.Application{}, err
	}
	return rec.toDomain(), nil
}

func (r *FosterCareRepo) ListApplications(ctx context.Context) ([]fostercare.Application, error) {
	return listFosterApplications(fosterApplicationQuery(r.db.WithContext(ctx)))
}

func (r *FosterCareRepo) ListApplicationsByCat(ctx context.Context, catID uint) ([]fostercare.Application, error) {
	return listFosterApplications(fosterApplicationQuery(r.db.WithContext(ctx)).Where("lares_temporarios.cat_id = ?", catID))
}

func listFosterApplications(q *gorm.DB) ([]fostercare.Application, error) {
	var recs []fosterApplicationRecord
	if err := q.Order("lares_temporarios.created_at DESC").Order("lares_temporarios.id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]fostercare.Application, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

// -------------------------
// Lar actual
// -------------------------

func (r *FosterCareRepo) HasPlacement(ctx context.Context, catID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&placementRecord{}).Where("cat_id = ?", catID).Count(&n).Error
	return n > 0, err
}

func (r *FosterCareRepo) GetPlacement(ctx context.Context, catID uint) (fostercare.Placement, error) {
	rec, err := getPlacement(r.db.WithContext(ctx), catID)
	if err != nil {
		return fostercare.Placement{}, err
	}
	return rec.toDomain(), nil
}

func getPlacement(tx *gorm.DB, catID uint) (placementRecord, error) {
	var rec placementRecord
	if err := placementQuery(tx).Where("lares_temporarios_atuais.cat_id = ?", catID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return placementRecord{}, fostercare.ErrNotFound
		}
		return placementRecord{}, err
	}
	return rec, nil
}

func (r *FosterCareRepo) ListPlacements(ctx context.Context) ([]fostercare.Placement, error) {
	var recs []placementRecord
	err := placementQuery(r.db.WithContext(ctx)).
		Order("lares_temporarios_atuais.start_date DESC").
		Order("lares_temporarios_atuais.id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]fostercare.Placement, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *FosterCareRepo) CreatePlacement(ctx context.Context, p *fostercare.Placement) error {
	rec := placementRecord{CatID: p.CatID, ApplicationID: p.ApplicationID, StartDate: p.StartDate}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}
		return tx.Model(&catRecord{}).Where("id = ?", p.CatID).Update("needs_foster", true).Error
	})
	if err != nil {
		return err
	}
	p.ID = rec.ID
	return nil
}

func (r *FosterCareRepo) CreateIntakePlacement(ctx context.Context, p *fostercare.Placement) error {
	rec := placementRecord{CatID: p.CatID, ApplicationID: p.ApplicationID, StartDate: p.StartDate}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}
		h := historyRecord{CatID: p.CatID, ApplicationID: p.ApplicationID, StartDate: p.StartDate}
		return tx.Omit(clause.Associations).Create(&h).Error
	})
	if err != nil {
		return err
	}
	p.ID = rec.ID
	return nil
}

func (r *FosterCareRepo) UpdatePlacement(ctx context.Context, p fostercare.Placement) error {
	res := r.db.WithContext(ctx).Model(&placementRecord{}).Where("id = ?", p.ID).Updates(map[string]any{
		"application_id": p.ApplicationID,
		"start_date":     p.StartDate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fostercare.ErrNotFound
	}
	return nil
}

func (r *FosterCareRepo) DeletePlacement(ctx context.Context, catID uint) (fostercare.Placement, error) {
	var deleted fostercare.Placement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := getPlacement(tx, catID)
		if err != nil {
			return err
		}
		deleted = rec.toDomain()
		return tx.Where("cat_id = ?", catID).Delete(&placementRecord{}).Error
	})
	if err != nil {
		return fostercare.Placement{}, err
	}
	return deleted, nil
}

func (r *FosterCareRepo) Finalize(ctx context.Context, catID uint, end time.Time) (fostercare.HistoryEntry, error) {
	var entry fostercare.HistoryEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := getPlacement(tx, catID)
		if err != nil {
			return err
		}

		h := historyRecord{
			CatID:         p.CatID,
			ApplicationID: p.ApplicationID,
			StartDate:     p.StartDate,
			EndDate:       &end,
		}
		if err := tx.Omit(clause.Associations).Create(&h).Error; err != nil {
			return err
		}
		if err := tx.Where("cat_id = ?", catID).Delete(&placementRecord{}).Error; err != nil {
			return err
		}

		h.CatName = p.CatName
		h.Application = p.Application
		entry = h.toDomain()
		return nil
	})
	if err != nil {
		return fostercare.HistoryEntry{}, err
	}
	return entry, nil
}

// -------------------------
// Historial
// -------------------------

func (r *FosterCareRepo) GetHistory(ctx context.Context, id uint) (fostercare.HistoryEntry, error) {
	rec, err := getHistory(r.db.WithContext(ctx), id)
	if err != nil {
		return fostercare.HistoryEntry{}, err
	}
	return rec.toDomain(), nil
}

func getHistory(tx *gorm.DB, id uint) (historyRecord, error) {
	var rec historyRecord
	if err := historyQuery(tx).Where("historico_lares_temporarios.id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return historyRecord{}, fostercare.ErrNotFound
		}
		return historyRecord{}, err
	}
	return rec, nil
}

func (r *FosterCareRepo) ListHistory(ctx context.Context) ([]fostercare.HistoryEntry, error) {
	var recs []historyRecord
	err := historyQuery(r.db.WithContext(ctx)).
		Order("historico_lares_temporarios.start_date DESC").
		Order("historico_lares_temporarios.id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]fostercare.HistoryEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *FosterCareRepo) UpdateHistory(ctx context.Context, h fostercare.HistoryEntry) error {
	res := r.db.WithContext(ctx).Model(&historyRecord{}).Where("id = ?", h.ID).Updates(map[string]any{
		"application_id": h.ApplicationID,
		"start_date":     h.StartDate,
		"end_date":       h.EndDate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fostercare.ErrNotFound
	}
	return nil
}

func (r *FosterCareRepo) DeleteHistory(ctx context.Context, id uint) (fostercare.HistoryEntry, error) {
	var deleted fostercare.HistoryEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := getHistory(tx, id)
		if err != nil {
			return err
		}
		deleted = rec.toDomain()
		return tx.Delete(&historyRecord{}, id).Error
	})
	if err != nil {
		return fostercare.HistoryEntry{}, err
	}
	return deleted, nil
}
