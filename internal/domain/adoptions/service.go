package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/validate"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("adopted record not found")
	ErrApplicationNotFound = errors.New("adoption application not found")
	ErrAlreadyAdopted      = errors.New("cat already adopted")
	// ErrNotification: la solicitud quedó guardada pero el aviso falló.
	ErrNotification        = errors.New("notification failed")
)

// AdoptedPreviewSize es el truncado de la lista pública de adotados.
const AdoptedPreviewSize = 8

// AlreadyAdoptedError lleva el nombre del gato para el mensaje de aviso.
type AlreadyAdoptedError struct {
	CatName string
}

func (e *AlreadyAdoptedError) Error() string {
	return fmt.Sprintf("O gato %s já foi adotado!", e.CatName)
}

func (e *AlreadyAdoptedError) Is(target error) bool {
	return target == ErrAlreadyAdopted
}

// CatReader es lo que este módulo necesita del catálogo.
type CatReader interface {
	GetByID(ctx context.Context, id uint) (cats.Cat, error)
	ListAvailable(ctx context.Context, in cats.ListInput) (cats.ListResult, error)
}

type Service struct {
	repo     Repository
	cats     CatReader
	notifier notify.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewService(repo Repository, catReader CatReader, notifier notify.Notifier, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		cats:     catReader,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// RegisterInput: datos del formulario de registro/edición de adopción.
type RegisterInput struct {
	CatID         uint
	ApplicationID uint
	StartDate     time.Time // cero = hoy
	Photo         string
}

type AdoptedList struct {
	Items   []Adopted
	ShowAll bool
	Total   int64
}

// RegisterOptions alimenta los selects del formulario de registro.
type RegisterOptions struct {
	Cats       []cats.Cat
	Applicants []Application
}

// Cat devuelve el gato elegido para el formulario público.
func (s *Service) Cat(ctx context.Context, catID uint) (cats.Cat, error) {
	return s.cats.GetByID(ctx, catID)
}

// Apply guarda la solicitud y avisa a la ONG con todas las respuestas.
func (s *Service) Apply(ctx context.Context, catID uint, in Answers) (Application, error) {
	cat, err := s.cats.GetByID(ctx, catID)
	if err != nil {
		return Application{}, err
	}

	in = normalize(in)
	if err := validateAnswers(in); err != nil {
		return Application{}, err
	}

	app := Application{
		CatID:     cat.ID,
		CatName:   cat.Name,
		Answers:   in,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateApplication(ctx, &app); err != nil {
		return Application{}, fmt.Errorf("create adoption application: %w", err)
	}

	msg, err := ApplicationMessage(app, s.loc)
	if err != nil {
		return app, fmt.Errorf("%w: build email: %w", ErrNotification, err)
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		return app, fmt.Errorf("%w: %w", ErrNotification, err)
	}
	return app, nil
}

func (s *Service) ListAdopted(ctx context.Context, showAll bool) (AdoptedList, error) {
	limit := AdoptedPreviewSize
	if showAll {
		limit = 0
	}
	items, err := s.repo.ListAdopted(ctx, limit)
	if err != nil {
		return AdoptedList{Items: []Adopted{}, ShowAll: showAll}, fmt.Errorf("list adopted: %w", err)
	}
	total, err := s.repo.CountAdopted(ctx)
	if err != nil {
		return AdoptedList{Items: items, ShowAll: showAll, Total: int64(len(items))}, fmt.Errorf("count adopted: %w", err)
	}
	return AdoptedList{Items: items, ShowAll: showAll, Total: total}, nil
}

func (s *Service) RegisterOptions(ctx context.Context) (RegisterOptions, error) {
	available, err := s.cats.ListAvailable(ctx, cats.ListInput{ShowAll: true})
	if err != nil {
		return RegisterOptions{}, err
	}
	applicants, err := s.repo.ListApplications(ctx)
	if err != nil {
		return RegisterOptions{}, fmt.Errorf("list applications: %w", err)
	}
	return RegisterOptions{Cats: available.Cats, Applicants: applicants}, nil
}

// Register concluye una adopción. Si el gato ya tiene registro devuelve
// *AlreadyAdoptedError y no escribe nada.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Adopted, error) {
	cat, app, err := s.resolve(ctx, in)
	if err != nil {
		return Adopted{}, err
	}

	// Chequeo previo en aplicación; no hay constraint única en la base.
	exists, err := s.repo.HasAdoption(ctx, cat.ID)
	if err != nil {
		return Adopted{}, fmt.Errorf("check adoption: %w", err)
	}
	if exists {
		return Adopted{}, &AlreadyAdoptedError{CatName: cat.Name}
	}

	start := in.StartDate
	if start.IsZero() {
		start = dates.Of(s.now(), s.loc)
	}

	a := Adopted{
		CatID:         cat.ID,
		CatName:       cat.Name,
		CatAdopted:    true,
		ApplicationID: app.ID,
		ApplicantName: app.Name,
		StartDate:     start,
		Photo:         strings.TrimSpace(in.Photo),
		CreatedAt:     s.now(),
	}
	if err := s.repo.Register(ctx, &a); err != nil {
		return Adopted{}, fmt.Errorf("register adoption: %w", err)
	}
	return a, nil
}

// Update reasigna gato/adotante/fecha/foto de un registro existente.
func (s *Service) Update(ctx context.Context, id uint, in RegisterInput) (Adopted, error) {
	current, err := s.repo.GetAdopted(ctx, id)
	if err != nil {
		return Adopted{}, err
	}
	cat, app, err := s.resolve(ctx, in)
	if err != nil {
		return Adopted{}, err
	}

	previousCatID := current.CatID
	if cat.ID != previousCatID {
		exists, err := s.repo.HasAdoption(ctx, cat.ID)
		if err != nil {
			return Adopted{}, fmt.Errorf("check adoption: %w", err)
		}
		if exists {
			return Adopted{}, &AlreadyAdoptedError{CatName: cat.Name}
		}
	}

	current.CatID = cat.ID
	current.CatName = cat.Name
	current.CatAdopted = true
	current.ApplicationID = app.ID
	current.ApplicantName = app.Name
	if !in.StartDate.IsZero() {
		current.StartDate = in.StartDate
	}
	if photo := strings.TrimSpace(in.Photo); photo != "" {
		current.Photo = photo
	}

	if err := s.repo.UpdateAdopted(ctx, current, previousCatID); err != nil {
		return Adopted{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (Adopted, error) {
	return s.repo.DeleteAdopted(ctx, id)
}

// ApplicantsForCat lista las solicitudes hechas para un gato.
func (s *Service) ApplicantsForCat(ctx context.Context, catID uint) ([]Application, error) {
	return s.repo.ListApplicationsByCat(ctx, catID)
}

func (s *Service) resolve(ctx context.Context, in RegisterInput) (cats.Cat, Application, error) {
	verrs := validate.Errors{}
	if in.CatID == 0 {
		verrs.Add("gato", "Selecione um gato.")
	}
	if in.ApplicationID == 0 {
		verrs.Add("adotante", "Selecione um adotante.")
	}
	if err := verrs.Err(); err != nil {
		return cats.Cat{}, Application{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cat, err := s.cats.GetByID(ctx, in.CatID)
	if err != nil {
		return cats.Cat{}, Application{}, err
	}
	app, err := s.repo.GetApplication(ctx, in.ApplicationID)
	if err != nil {
		return cats.Cat{}, Application{}, err
	}
	return cat, app, nil
}

func normalize(a Answers) Answers {
	for _, p := range []*string{
		&a.Name, &a.CPF, &a.Occupation, &a.Email,
		&a.Street, &a.Number, &a.District, &a.City, &a.CEP,
		&a.Instagram, &a.Phone,
		&a.OtherAnimalsSpeciesAge, &a.OtherAnimalsFood,
		&a.TravelCaretaker, &a.GaveUpExplanation,
	} {
		*p = strings.TrimSpace(*p)
	}
	return a
}

func validateAnswers(a Answers) error {
	verrs := validate.Errors{}

	verrs.Required("nome", a.Name)
	verrs.MaxLen("nome", a.Name, 100)
	verrs.Required("cpf", a.CPF)
	if d := validate.Digits(a.CPF); a.CPF != "" && len(d) != 11 {
		verrs.Add("cpf", "CPF inválido.")
	}
	if a.Age <= 0 {
		verrs.Add("idade", "Informe uma idade válida.")
	}
	verrs.Required("ocupacao_profissional", a.Occupation)
	verrs.Email("email", a.Email)
	verrs.Required("rua", a.Street)
	verrs.Required("numero", a.Number)
	verrs.Required("bairro", a.District)
	verrs.Required("cidade", a.City)
	verrs.Required("cep", a.CEP)
	verrs.Phone("numero_contato", a.Phone)
	verrs.Required("viagens", a.TravelCaretaker)
	verrs.MaxLen("devolver_doar_explique", a.GaveUpExplanation, 2000)

	if err := verrs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
