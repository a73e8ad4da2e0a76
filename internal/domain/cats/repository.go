package cats

import "context"

// ListFilter: todos los listados excluyen gatos con registro de adopción.
type ListFilter struct {
	Name            string
	Sex             Sex
	OnlyNeedsFoster bool
	ExcludeID       uint
	Limit           int // 0 = sin límite
}

// Repository devuelve ErrNotFound cuando el gato no existe.
type Repository interface {
	// Create guarda el gato y sus cuatro registros de atributos de forma atómica.
	Create(ctx context.Context, c *Cat) error
	Update(ctx context.Context, c Cat) error
	GetByID(ctx context.Context, id uint) (Cat, error)
	ListAvailable(ctx context.Context, f ListFilter) ([]Cat, error)
	CountAvailable(ctx context.Context) (int64, error)
	// Delete elimina el gato y los registros que dependen de él.
	Delete(ctx context.Context, id uint) (Cat, error)
}
