package adoptions

import "context"

// Repository devuelve ErrNotFound / ErrApplicationNotFound para registros inexistentes.
type Repository interface {
	CreateApplication(ctx context.Context, a *Application) error
	GetApplication(ctx context.Context, id uint) (Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	ListApplicationsByCat(ctx context.Context, catID uint) ([]Application, error)

	// HasAdoption indica si ya existe un registro Adopted para el gato.
	HasAdoption(ctx context.Context, catID uint) (bool, error)
	GetAdopted(ctx context.Context, id uint) (Adopted, error)
	// ListAdopted devuelve los más recientes primero; limit 0 = todos.
	ListAdopted(ctx context.Context, limit int) ([]Adopted, error)
	CountAdopted(ctx context.Context) (int64, error)

	// Register crea el Adopted, marca el gato como adoptado y borra su
	// lar temporário actual, en una sola transacción.
	Register(ctx context.Context, a *Adopted) error
	// UpdateAdopted guarda a; si el gato cambió respecto de previousCatID
	// mueve la marca de adoptado y borra el lar actual del gato nuevo.
	UpdateAdopted(ctx context.Context, a Adopted, previousCatID uint) error
	// DeleteAdopted borra el registro y desmarca el gato.
	DeleteAdopted(ctx context.Context, id uint) (Adopted, error)
}
