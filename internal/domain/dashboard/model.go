package dashboard

import (
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
)

// Counts son los contadores de la cabecera del panel.
type Counts struct {
	// Gatos sin registro de adopción.
	AwaitingAdoption int64
	// Gatos marcados "precisa de lar" y sin adopción.
	InFoster int64
	// Registros de adopción.
	Adopted int64
}

type AdoptionView struct {
	Counts Counts
	Cats   []cats.Cat
}

type FosterView struct {
	Counts     Counts
	Placements []fostercare.Placement
	History    []fostercare.HistoryEntry
}

type AdoptedView struct {
	Counts  Counts
	Adopted []adoptions.Adopted
}
