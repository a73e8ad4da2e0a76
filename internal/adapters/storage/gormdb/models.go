package gormdb

import (
	"time"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
)

// Los campos "->;-:migration" son columnas calculadas en el SELECT.

type catRecord struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;index"`
	Sex         string    `gorm:"size:1;not null"`
	BirthDate   time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Photo       string    `gorm:"size:500"`
	NeedsFoster bool
	Adopted     bool
	InFoster    bool `gorm:"->;-:migration"`

	Care        careRecord        `gorm:"foreignKey:CatID"`
	Temperament temperamentRecord `gorm:"foreignKey:CatID"`
	Sociability sociabilityRecord `gorm:"foreignKey:CatID"`
	Housing     housingRecord     `gorm:"foreignKey:CatID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (catRecord) TableName() string { return "gatos" }

type careRecord struct {
	ID    uint `gorm:"primaryKey"`
	CatID uint `gorm:"uniqueIndex"`
	cats.Care
}

func (careRecord) TableName() string { return "cuidado" }

type temperamentRecord struct {
	ID    uint `gorm:"primaryKey"`
	CatID uint `gorm:"uniqueIndex"`
	cats.Temperament
}

func (temperamentRecord) TableName() string { return "temperamento" }

type sociabilityRecord struct {
	ID    uint `gorm:"primaryKey"`
	CatID uint `gorm:"uniqueIndex"`
	cats.Sociability
}

func (sociabilityRecord) TableName() string { return "sociavel" }

type housingRecord struct {
	ID    uint `gorm:"primaryKey"`
	CatID uint `gorm:"uniqueIndex"`
	cats.Housing
}

func (housingRecord) TableName() string { return "moradia" }

type adoptionApplicationRecord struct {
	ID    uint `gorm:"primaryKey"`
	CatID uint `gorm:"index"`
	adoptions.Answers
	CatName   string `gorm:"->;-:migration"`
	CreatedAt time.Time
}

func (adoptionApplicationRecord) TableName() string { return "adocoes" }

type adoptedRecord struct {
	ID            uint `gorm:"primaryKey"`
	CatID         uint `gorm:"index"`
	ApplicationID uint `gorm:"index"`
	StartDate     time.Time
	Photo         string `gorm:"size:500"`
	CreatedAt     time.Time

	CatName       string `gorm:"->;-:migration"`
	CatAdopted    bool   `gorm:"->;-:migration"`
	ApplicantName string `gorm:"->;-:migration"`
}

func (adoptedRecord) TableName() string { return "adotados" }

type fosterApplicationRecord struct {
	ID    uint  `gorm:"primaryKey"`
	CatID *uint `gorm:"index"`
	fostercare.Answers
	AvailableFrom time.Time
	CatName       string `gorm:"->;-:migration"`
	CreatedAt     time.Time
}

func (fosterApplicationRecord) TableName() string { return "lares_temporarios" }

type placementRecord struct {
	ID            uint `gorm:"primaryKey"`
	CatID         uint `gorm:"index"`
	ApplicationID uint `gorm:"index"`
	StartDate     time.Time

	CatName     string                  `gorm:"->;-:migration"`
	Application fosterApplicationRecord `gorm:"foreignKey:ApplicationID"`
}

func (placementRecord) TableName() string { return "lares_temporarios_atuais" }

type historyRecord struct {
	ID            uint `gorm:"primaryKey"`
	CatID         uint `gorm:"index"`
	ApplicationID uint `gorm:"index"`
	StartDate     time.Time
	EndDate       *time.Time

	CatName     string                  `gorm:"->;-:migration"`
	Application fosterApplicationRecord `gorm:"foreignKey:ApplicationID"`
}

func (historyRecord) TableName() string { return "historico_lares_temporarios" }

type adminRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:150"`
	Username     string `gorm:"size:150;uniqueIndex"`
	Email        string `gorm:"size:254;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	CreatedAt    time.Time
}

func (adminRecord) TableName() string { return "administradores" }

type sessionRecord struct {
	Token     string    `gorm:"primaryKey;size:64"`
	AdminID   uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (sessionRecord) TableName() string { return "sessoes_admin" }

// -------------------------
// Conversiones
// -------------------------

func (r catRecord) toDomain() cats.Cat {
	return cats.Cat{
		ID:          r.ID,
		Name:        r.Name,
		Sex:         cats.Sex(r.Sex),
		BirthDate:   r.BirthDate,
		Description: r.Description,
		Photo:       r.Photo,
		NeedsFoster: r.NeedsFoster,
		Adopted:     r.Adopted,
		InFoster:    r.InFoster,
		Care:        r.Care.Care,
		Temperament: r.Temperament.Temperament,
		Sociability: r.Sociability.Sociability,
		Housing:     r.Housing.Housing,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r adoptionApplicationRecord) toDomain() adoptions.Application {
	return adoptions.Application{
		ID:        r.ID,
		CatID:     r.CatID,
		CatName:   r.CatName,
		Answers:   r.Answers,
		CreatedAt: r.CreatedAt,
	}
}

func (r adoptedRecord) toDomain() adoptions.Adopted {
	return adoptions.Adopted{
		ID:            r.ID,
		CatID:         r.CatID,
		CatName:       r.CatName,
		CatAdopted:    r.CatAdopted,
		ApplicationID: r.ApplicationID,
		ApplicantName: r.ApplicantName,
		StartDate:     r.StartDate,
		Photo:         r.Photo,
		CreatedAt:     r.CreatedAt,
	}
}

func (r fosterApplicationRecord) toDomain() fostercare.Application {
	return fostercare.Application{
		ID:            r.ID,
		CatID:         r.CatID,
		CatName:       r.CatName,
		Answers:       r.Answers,
		AvailableFrom: r.AvailableFrom,
		CreatedAt:     r.CreatedAt,
	}
}

func caregiverOf(r fosterApplicationRecord) fostercare.Caregiver {
	return fostercare.Caregiver{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Street:   r.Street,
		Number:   r.Number,
		District: r.District,
		City:     r.City,
		CEP:      r.CEP,
	}
}

func (r placementRecord) toDomain() fostercare.Placement {
	return fostercare.Placement{
		ID:            r.ID,
		CatID:         r.CatID,
		CatName:       r.CatName,
		ApplicationID: r.ApplicationID,
		Caregiver:     caregiverOf(r.Application),
		StartDate:     r.StartDate,
	}
}

func (r historyRecord) toDomain() fostercare.HistoryEntry {
	return fostercare.HistoryEntry{
		ID:            r.ID,
		CatID:         r.CatID,
		CatName:       r.CatName,
		ApplicationID: r.ApplicationID,
		Caregiver:     caregiverOf(r.Application),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

func (r adminRecord) toDomain() admins.Admin {
	return admins.Admin{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (r sessionRecord) toDomain() admins.Session {
	return admins.Session{
		Token:     r.Token,
		AdminID:   r.AdminID,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}
