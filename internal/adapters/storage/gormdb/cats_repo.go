package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
)

const (
	inFosterColumn = "EXISTS (SELECT 1 FROM lares_temporarios_atuais p WHERE p.cat_id = gatos.id) AS in_foster"
	notAdoptedCond = "NOT EXISTS (SELECT 1 FROM adotados a WHERE a.cat_id = gatos.id)"
)

type CatsRepo struct {
	db *gorm.DB
}

func NewCatsRepo(db *gorm.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func catQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&catRecord{}).
		Select("gatos.*, " + inFosterColumn).
		Preload("Care").
		Preload("Temperament").
		Preload("Sociability").
		Preload("Housing")
}

func (r *CatsRepo) Create(ctx context.Context, c *cats.Cat) error {
	rec := catRecord{
		Name:        c.Name,
		Sex:         string(c.Sex),
		BirthDate:   c.BirthDate,
		Description: c.Description,
		Photo:       c.Photo,
		NeedsFoster: c.NeedsFoster,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}
		return createAttributes(tx, rec.ID, *c)
	})
	if err != nil {
		return err
	}

	c.ID = rec.ID
	return nil
}

func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&catRecord{}).Where("id = ?", c.ID).Updates(map[string]any{
			"name":         c.Name,
			"sex":          string(c.Sex),
			"birth_date":   c.BirthDate,
			"description":  c.Description,
			"photo":        c.Photo,
			"needs_foster": c.NeedsFoster,
			"updated_at":   c.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return cats.ErrNotFound
		}

		if err := deleteAttributes(tx, c.ID); err != nil {
			return err
		}
		return createAttributes(tx, c.ID, c)
	})
}

func (r *CatsRepo) GetByID(ctx context.Context, id uint) (cats.Cat, error) {
	return getCat(r.db.WithContext(ctx), id)
}

func getCat(tx *gorm.DB, id uint) (cats.Cat, error) {
	var rec catRecord
	if err := catQuery(tx).Where("gatos.id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return rec.toDomain(), nil
}

func (r *CatsRepo) ListAvailable(ctx context.Context, f cats.ListFilter) ([]cats.Cat, error) {
	q := catQuery(r.db.WithContext(ctx)).Where(notAdoptedCond)

	if name := strings.TrimSpace(f.Name); name != "" {
		q = q.Where("LOWER(gatos.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if f.Sex != "" {
		q = q.Where("gatos.sex = ?", string(f.Sex))
	}
	if f.OnlyNeedsFoster {
		q = q.Where("gatos.needs_foster = ?", true)
	}
	if f.ExcludeID != 0 {
		q = q.Where("gatos.id <> ?", f.ExcludeID)
	}
	q = q.Order("gatos.created_at DESC").Order("gatos.id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var recs []catRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]cats.Cat, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *CatsRepo) CountAvailable(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&catRecord{}).Where(notAdoptedCond).Count(&n).Error
	return n, err
}

// Delete borra el gato con sus atributos, adopciones, lares y solicitudes
// de adopción. Las solicitudes de lar quedan sin gato.
func (r *CatsRepo) Delete(ctx context.Context, id uint) (cats.Cat, error) {
	var deleted cats.Cat
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := getCat(tx, id)
		if err != nil {
			return err
		}
		deleted = c

		for _, model := range []any{&adoptedRecord{}, &placementRecord{}, &historyRecord{}, &adoptionApplicationRecord{}} {
			if err := tx.Where("cat_id = ?", id).Delete(model).Error; err != nil {
				return fmt.Errorf("delete dependents: %w", err)
			}
		}
		if err := tx.Model(&fosterApplicationRecord{}).Where("cat_id = ?", id).Update("cat_id", nil).Error; err != nil {
			return fmt.Errorf("detach foster applications: %w", err)
		}
		if err := deleteAttributes(tx, id); err != nil {
			return err
		}
		return tx.Delete(&catRecord{}, id).Error
	})
	if err != nil {
		return cats.Cat{}, err
	}
	return deleted, nil
}

func createAttributes(tx *gorm.DB, catID uint, c cats.Cat) error {
	attrs := []any{
		&careRecord{CatID: catID, Care: c.Care},
		&temperamentRecord{CatID: catID, Temperament: c.Temperament},
		&sociabilityRecord{CatID: catID, Sociability: c.Sociability},
		&housingRecord{CatID: catID, Housing: c.Housing},
	}
	for _, a := range attrs {
		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("create cat attributes: %w", err)
		}
	}
	return nil
}

func deleteAttributes(tx *gorm.DB, catID uint) error {
	for _, model := range []any{&careRecord{}, &temperamentRecord{}, &sociabilityRecord{}, &housingRecord{}} {
		if err := tx.Where("cat_id = ?", catID).Delete(model).Error; err != nil {
			return fmt.Errorf("delete cat attributes: %w", err)
		}
	}
	return nil
}
