package fostercare

import (
	"context"
	"time"
)

// Repository: los lares actuales se identifican por gato (uno por gato);
// el historial por su propio ID.
type Repository interface {
	CreateApplication(ctx context.Context, a *Application) error
	GetApplication(ctx context.Context, id uint) (Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	ListApplicationsByCat(ctx context.Context, catID uint) ([]Application, error)

	HasPlacement(ctx context.Context, catID uint) (bool, error)
	GetPlacement(ctx context.Context, catID uint) (Placement, error)
	ListPlacements(ctx context.Context) ([]Placement, error)
	// CreatePlacement crea el lar actual y marca el gato como "precisa de lar".
	CreatePlacement(ctx context.Context, p *Placement) error
	// CreateIntakePlacement crea el lar actual y una fila de historial abierta
	// con la misma fecha de inicio (alta desde el formulario público).
	CreateIntakePlacement(ctx context.Context, p *Placement) error
	UpdatePlacement(ctx context.Context, p Placement) error
	DeletePlacement(ctx context.Context, catID uint) (Placement, error)
	// Finalize copia el lar actual al historial con fecha de fin end y lo
	// borra, en una transacción.
	Finalize(ctx context.Context, catID uint, end time.Time) (HistoryEntry, error)

	GetHistory(ctx context.Context, id uint) (HistoryEntry, error)
	ListHistory(ctx context.Context) ([]HistoryEntry, error)
	UpdateHistory(ctx context.Context, h HistoryEntry) error
	DeleteHistory(ctx context.Context, id uint) (HistoryEntry, error)
}
