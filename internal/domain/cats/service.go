package cats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cat not found")

	// Detail lo devuelve junto con el gato cuando fallan las alternativas.
	ErrSimilarUnavailable = errors.New("similar cats unavailable")
)

const (
	// Cuántos gatos muestra el catálogo sin "ver todos".
	CatalogPreviewSize = 8
	// Cuántas alternativas muestra la página de detalle.
	SimilarCount = 4
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Name        string
	Sex         string
	BirthDate   time.Time
	Description string
	Photo       string
	NeedsFoster bool

	Care        Care
	Temperament Temperament
	Sociability Sociability
	Housing     Housing
}

type ListInput struct {
	Name            string
	Sex             string
	OnlyNeedsFoster bool
	ShowAll         bool
}

type ListResult struct {
	Cats    []Cat
	ShowAll bool
	// Total de gatos disponibles, sin filtros ni truncado.
	Total int64
}

// ListAvailable lista gatos sin registro de adopción, más nuevos primero.
func (s *Service) ListAvailable(ctx context.Context, in ListInput) (ListResult, error) {
	f := ListFilter{
		Name:            strings.TrimSpace(in.Name),
		OnlyNeedsFoster: in.OnlyNeedsFoster,
	}
	if sex, ok := ParseSex(in.Sex); ok {
		f.Sex = sex
	}
	if !in.ShowAll {
		f.Limit = CatalogPreviewSize
	}

	items, err := s.repo.ListAvailable(ctx, f)
	if err != nil {
		return ListResult{Cats: []Cat{}, ShowAll: in.ShowAll}, fmt.Errorf("list available cats: %w", err)
	}
	total, err := s.repo.CountAvailable(ctx)
	if err != nil {
		return ListResult{Cats: items, ShowAll: in.ShowAll, Total: int64(len(items))}, fmt.Errorf("count available cats: %w", err)
	}

	return ListResult{Cats: items, ShowAll: in.ShowAll, Total: total}, nil
}

// Detail devuelve el gato y hasta SimilarCount alternativas disponibles.
// Si la consulta de alternativas falla, devuelve el gato con una lista vacía
// y un error que envuelve ErrSimilarUnavailable.
func (s *Service) Detail(ctx context.Context, id uint) (Cat, []Cat, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cat{}, nil, err
	}

	others, err := s.repo.ListAvailable(ctx, ListFilter{ExcludeID: id, Limit: SimilarCount})
	if err != nil {
		return c, []Cat{}, fmt.Errorf("%w: %w", ErrSimilarUnavailable, err)
	}
	return c, others, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (Cat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Cat, error) {
	if err := s.validate(in, true); err != nil {
		return Cat{}, err
	}

	now := s.now()
	c := Cat{
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&c, in)

	if err := s.repo.Create(ctx, &c); err != nil {
		return Cat{}, fmt.Errorf("create cat: %w", err)
	}
	return c, nil
}

// Update reemplaza los datos del gato y de sus atributos.
// Una foto vacía conserva la anterior.
func (s *Service) Update(ctx context.Context, id uint, in Input) (Cat, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cat{}, err
	}
	if err := s.validate(in, false); err != nil {
		return Cat{}, err
	}

	photo := current.Photo
	apply(&current, in)
	if strings.TrimSpace(in.Photo) == "" {
		current.Photo = photo
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Cat{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (Cat, error) {
	return s.repo.Delete(ctx, id)
}

// Age formatea la edad del gato con el reloj del servicio.
func (s *Service) Age(c Cat) string {
	return Age(c.BirthDate, s.now())
}

func (s *Service) validate(in Input, requirePhoto bool) error {
	verrs := validate.Errors{}

	verrs.Required("nome", in.Name)
	verrs.MaxLen("nome", in.Name, 100)
	if _, ok := ParseSex(in.Sex); !ok {
		verrs.Add("sexo", "Selecione o sexo do gato.")
	}
	if in.BirthDate.IsZero() {
		verrs.Add("data_nascimento", "Este campo é obrigatório.")
	} else if in.BirthDate.After(s.now()) {
		verrs.Add("data_nascimento", "A data de nascimento não pode estar no futuro.")
	}
	verrs.MaxLen("descricao", in.Description, 10000)
	if requirePhoto {
		verrs.Required("imagem", in.Photo)
	}

	if err := verrs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func apply(c *Cat, in Input) {
	sex, _ := ParseSex(in.Sex)
	c.Name = strings.TrimSpace(in.Name)
	c.Sex = sex
	c.BirthDate = in.BirthDate
	c.Description = strings.TrimSpace(in.Description)
	c.Photo = strings.TrimSpace(in.Photo)
	c.NeedsFoster = in.NeedsFoster
	c.Care = in.Care
	c.Temperament = in.Temperament
	c.Sociability = in.Sociability
	c.Housing = in.Housing
}
