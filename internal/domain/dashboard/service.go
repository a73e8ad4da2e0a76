package dashboard

import (
	"context"
	"fmt"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
)

type CatLister interface {
	ListAvailable(ctx context.Context, in cats.ListInput) (cats.ListResult, error)
}

type AdoptedLister interface {
	ListAdopted(ctx context.Context, showAll bool) (adoptions.AdoptedList, error)
}

type FosterLister interface {
	ListPlacements(ctx context.Context) ([]fostercare.Placement, error)
	ListHistory(ctx context.Context) ([]fostercare.HistoryEntry, error)
}

// Service arma las tres vistas del panel a partir de los otros módulos.
type Service struct {
	repo    Repository
	cats    CatLister
	adopted AdoptedLister
	foster  FosterLister
}

func NewService(repo Repository, catLister CatLister, adopted AdoptedLister, foster FosterLister) *Service {
	return &Service{
		repo:    repo,
		cats:    catLister,
		adopted: adopted,
		foster:  foster,
	}
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	c, err := s.repo.Counts(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return c, nil
}

// Adoptions: gatos disponibles con filtros de nombre y sexo, sin truncar.
func (s *Service) Adoptions(ctx context.Context, name, sex string) (AdoptionView, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return AdoptionView{}, err
	}
	res, err := s.cats.ListAvailable(ctx, cats.ListInput{Name: name, Sex: sex, ShowAll: true})
	if err != nil {
		return AdoptionView{Counts: counts, Cats: []cats.Cat{}}, err
	}
	return AdoptionView{Counts: counts, Cats: res.Cats}, nil
}

func (s *Service) Foster(ctx context.Context) (FosterView, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return FosterView{}, err
	}
	placements, err := s.foster.ListPlacements(ctx)
	if err != nil {
		return FosterView{}, fmt.Errorf("list placements: %w", err)
	}
	history, err := s.foster.ListHistory(ctx)
	if err != nil {
		return FosterView{}, fmt.Errorf("list foster history: %w", err)
	}
	return FosterView{Counts: counts, Placements: placements, History: history}, nil
}

func (s *Service) Adopted(ctx context.Context) (AdoptedView, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return AdoptedView{}, err
	}
	list, err := s.adopted.ListAdopted(ctx, true)
	if err != nil {
		return AdoptedView{}, err
	}
	return AdoptedView{Counts: counts, Adopted: list.Items}, nil
}
