package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *gorm.DB
}

func NewAdoptionsRepo(db *gorm.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func adoptionApplicationQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&adoptionApplicationRecord{}).
		Select("adocoes.*, COALESCE(gatos.name, '') AS cat_name").
		Joins("LEFT JOIN gatos ON gatos.id = adocoes.cat_id")
}

func adoptedQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&adoptedRecord{}).
		Select("adotados.*, gatos.name AS cat_name, gatos.adopted AS cat_adopted, COALESCE(adocoes.name, '') AS applicant_name").
		Joins("JOIN gatos ON gatos.id = adotados.cat_id").
		Joins("LEFT JOIN adocoes ON adocoes.id = adotados.application_id")
}

func (r *AdoptionsRepo) CreateApplication(ctx context.Context, a *adoptions.Application) error {
	rec := adoptionApplicationRecord{
		CatID:     a.CatID,
		Answers:   a.Answers,
		CreatedAt: a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	a.ID = rec.ID
	return nil
}

func (r *AdoptionsRepo) GetApplication(ctx context.Context, id uint) (adoptions.Application, error) {
	var rec adoptionApplicationRecord
	err := adoptionApplicationQuery(r.db.WithContext(ctx)).Where("adocoes.id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adoptions.Application{}, adoptions.ErrApplicationNotFound
		}
		return adoptions.Application{}, err
	}
	return rec.toDomain(), nil
}

func (r *AdoptionsRepo) ListApplications(ctx context.Context) ([]adoptions.Application, error) {
	return r.listApplications(adoptionApplicationQuery(r.db.WithContext(ctx)))
}

func (r *AdoptionsRepo) ListApplicationsByCat(ctx context.Context, catID uint) ([]adoptions.Application, error) {
	return r.listApplications(adoptionApplicationQuery(r.db.WithContext(ctx)).Where("adocoes.cat_id = ?", catID))
}

func (r *AdoptionsRepo) listApplications(q *gorm.DB) ([]adoptions.Application, error) {
	var recs []adoptionApplicationRecord
	if err := q.Order("adocoes.created_at DESC").Order("adocoes.id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]adoptions.Application, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *AdoptionsRepo) HasAdoption(ctx context.Context, catID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adoptedRecord{}).Where("cat_id = ?", catID).Count(&n).Error
	return n > 0, err
}

func (r *AdoptionsRepo) GetAdopted(ctx context.Context, id uint) (adoptions.Adopted, error) {
	return getAdopted(r.db.WithContext(ctx), id)
}

func getAdopted(tx *gorm.DB, id uint) (adoptions.Adopted, error) {
	var rec adoptedRecord
	if err := adoptedQuery(tx).Where("adotados.id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adoptions.Adopted{}, adoptions.ErrNotFound
		}
		return adoptions.Adopted{}, err
	}
	return rec.toDomain(), nil
}

func (r *AdoptionsRepo) ListAdopted(ctx context.Context, limit int) ([]adoptions.Adopted, error) {
	q := adoptedQuery(r.db.WithContext(ctx)).Order("adotados.created_at DESC").Order("adotados.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []adoptedRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]adoptions.Adopted, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *AdoptionsRepo) CountAdopted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adoptedRecord{}).Count(&n).Error
	return n, err
}

func (r *AdoptionsRepo) Register(ctx context.Context, a *adoptions.Adopted) error {
	rec := adoptedRecord{
		CatID:         a.CatID,
		ApplicationID: a.ApplicationID,
		StartDate:     a.StartDate,
		Photo:         a.Photo,
		CreatedAt:     a.CreatedAt,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return markAdopted(tx, a.CatID, true)
	})
	if err != nil {
		return err
	}
	a.ID = rec.ID
	return nil
}

func (r *AdoptionsRepo) UpdateAdopted(ctx context.Context, a adoptions.Adopted, previousCatID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&adoptedRecord{}).Where("id = ?", a.ID).Updates(map[string]any{
			"cat_id":         a.CatID,
			"application_id": a.ApplicationID,
			"start_date":     a.StartDate,
			"photo":          a.Photo,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return adoptions.ErrNotFound
		}

		if a.CatID == previousCatID {
			return nil
		}
		if err := markAdopted(tx, previousCatID, false); err != nil {
			return err
		}
		return markAdopted(tx, a.CatID, true)
	})
}

func (r *AdoptionsRepo) DeleteAdopted(ctx context.Context, id uint) (adoptions.Adopted, error) {
	var deleted adoptions.Adopted
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := getAdopted(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&adoptedRecord{}, id).Error; err != nil {
			return err
		}
		if err := markAdopted(tx, a.CatID, false); err != nil {
			return err
		}
		a.CatAdopted = false
		deleted = a
		return nil
	})
	if err != nil {
		return adoptions.Adopted{}, err
	}
	return deleted, nil
}

// markAdopted cambia la marca del gato; al adoptarlo también borra su lar actual.
func markAdopted(tx *gorm.DB, catID uint, adopted bool) error {
	if err := tx.Model(&catRecord{}).Where("id = ?", catID).Update("adopted", adopted).Error; err != nil {
		return err
	}
	if !adopted {
		return nil
	}
	return tx.Where("cat_id = ?", catID).Delete(&placementRecord{}).Error
}
