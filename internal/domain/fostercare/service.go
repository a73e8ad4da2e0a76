package fostercare

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
	ErrNotFound            = errors.New("foster record not found")
	ErrApplicationNotFound = errors.New("foster application not found")
	ErrAlreadyInFoster     = errors.New("cat already in foster care")
	ErrCatAdopted          = errors.New("cat already adopted")
	ErrNotification        = errors.New("notification failed")
)

// RejectedError explica por qué un gato no puede ir a un lar temporário.
// Is() responde a ErrAlreadyInFoster o ErrCatAdopted.
type RejectedError struct {
	CatName string
	Reason  error
}

func (e *RejectedError) Error() string {
	if errors.Is(e.Reason, ErrCatAdopted) {
		return fmt.Sprintf("O gato %s já foi adotado!", e.CatName)
	}
	return fmt.Sprintf("O gato %s já está em um lar temporário!", e.CatName)
}

func (e *RejectedError) Unwrap() error { return e.Reason }

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

// RegisterInput: alta de un lar actual desde el panel.
type RegisterInput struct {
	CatID         uint
	ApplicationID uint
	StartDate     time.Time // cero = hoy
}

// EditInput: edición de un lar actual o de una fila de historial.
// Campos cero conservan el valor anterior; EndDate solo aplica al historial.
type EditInput struct {
	ApplicationID uint
	StartDate     time.Time
	EndDate       time.Time
}

type RegisterOptions struct {
	Cats         []cats.Cat
	Applications []Application
}

// Cat devuelve el gato elegido para el formulario público.
func (s *Service) Cat(ctx context.Context, catID uint) (cats.Cat, error) {
	return s.cats.GetByID(ctx, catID)
}

// Apply guarda la solicitud, abre el lar actual si el gato está libre y
// avisa a la ONG. catID 0 = sin gato específico.
func (s *Service) Apply(ctx context.Context, catID uint, in Answers, availableFrom time.Time) (Application, error) {
	var cat *cats.Cat
	if catID != 0 {
		c, err := s.cats.GetByID(ctx, catID)
		if err != nil {
			return Application{}, err
		}
		cat = &c
	}

	in = normalize(in)
	if err := validateAnswers(in, availableFrom); err != nil {
		return Application{}, err
	}

	app := Application{
		Answers:       in,
		AvailableFrom: availableFrom,
		CreatedAt:     s.now(),
	}
	if cat != nil {
		app.CatID = &cat.ID
		app.CatName = cat.Name
	}
	if err := s.repo.CreateApplication(ctx, &app); err != nil {
		return Application{}, fmt.Errorf("create foster application: %w", err)
	}

	if cat != nil && !cat.Adopted {
		busy, err := s.repo.HasPlacement(ctx, cat.ID)
		if err != nil {
			return app, fmt.Errorf("check placement: %w", err)
		}
		if !busy {
			p := Placement{
				CatID:         cat.ID,
				CatName:       cat.Name,
				ApplicationID: app.ID,
				Caregiver:     caregiverOf(app.Answers),
				StartDate:     availableFrom,
			}
			if err := s.repo.CreateIntakePlacement(ctx, &p); err != nil {
				return app, fmt.Errorf("create intake placement: %w", err)
			}
		}
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

// RegisterOptions: gatos sin adopción ni lar actual y todas las solicitudes.
func (s *Service) RegisterOptions(ctx context.Context) (RegisterOptions, error) {
	available, err := s.cats.ListAvailable(ctx, cats.ListInput{ShowAll: true})
	if err != nil {
		return RegisterOptions{}, err
	}
	eligible := make([]cats.Cat, 0, len(available.Cats))
	for _, c := range available.Cats {
		if !c.InFoster {
			eligible = append(eligible, c)
		}
	}
	apps, err := s.repo.ListApplications(ctx)
	if err != nil {
		return RegisterOptions{}, fmt.Errorf("list foster applications: %w", err)
	}
	return RegisterOptions{Cats: eligible, Applications: apps}, nil
}

// Register abre un lar actual. Rechaza gatos adoptados o que ya tienen uno.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Placement, error) {
	verrs := validate.Errors{}
	if in.CatID == 0 {
		verrs.Add("gato", "Selecione um gato.")
	}
	if in.ApplicationID == 0 {
		verrs.Add("lar", "Selecione um lar temporário.")
	}
	if err := verrs.Err(); err != nil {
		return Placement{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cat, err := s.cats.GetByID(ctx, in.CatID)
	if err != nil {
		return Placement{}, err
	}
	app, err := s.repo.GetApplication(ctx, in.ApplicationID)
	if err != nil {
		return Placement{}, err
	}

	if cat.Adopted {
		return Placement{}, &RejectedError{CatName: cat.Name, Reason: ErrCatAdopted}
	}
	// Chequeo previo en aplicación; no hay constraint única en la base.
	busy, err := s.repo.HasPlacement(ctx, cat.ID)
	if err != nil {
		return Placement{}, fmt.Errorf("check placement: %w", err)
	}
	if busy {
		return Placement{}, &RejectedError{CatName: cat.Name, Reason: ErrAlreadyInFoster}
	}

	start := in.StartDate
	if start.IsZero() {
		start = s.today()
	}
	p := Placement{
		CatID:         cat.ID,
		CatName:       cat.Name,
		ApplicationID: app.ID,
		Caregiver:     caregiverOf(app.Answers),
		StartDate:     start,
	}
	if err := s.repo.CreatePlacement(ctx, &p); err != nil {
		return Placement{}, fmt.Errorf("create placement: %w", err)
	}
	return p, nil
}

// Finalize cierra el lar actual del gato con fecha de fin hoy.
func (s *Service) Finalize(ctx context.Context, catID uint) (HistoryEntry, error) {
	return s.repo.Finalize(ctx, catID, s.today())
}

func (s *Service) UpdatePlacement(ctx context.Context, catID uint, in EditInput) (Placement, error) {
	p, err := s.repo.GetPlacement(ctx, catID)
	if err != nil {
		return Placement{}, err
	}
	if in.ApplicationID != 0 && in.ApplicationID != p.ApplicationID {
		app, err := s.repo.GetApplication(ctx, in.ApplicationID)
		if err != nil {
			return Placement{}, err
		}
		p.ApplicationID = app.ID
		p.Caregiver = caregiverOf(app.Answers)
	}
	if !in.StartDate.IsZero() {
		p.StartDate = in.StartDate
	}
	if err := s.repo.UpdatePlacement(ctx, p); err != nil {
		return Placement{}, err
	}
	return p, nil
}

func (s *Service) UpdateHistory(ctx context.Context, id uint, in EditInput) (HistoryEntry, error) {
	h, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		return HistoryEntry{}, err
	}
	if in.ApplicationID != 0 && in.ApplicationID != h.ApplicationID {
		app, err := s.repo.GetApplication(ctx, in.ApplicationID)
		if err != nil {
			return HistoryEntry{}, err
		}
		h.ApplicationID = app.ID
		h.Caregiver = caregiverOf(app.Answers)
	}
	if !in.StartDate.IsZero() {
		h.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		end := in.EndDate
		h.EndDate = &end
	}
	if h.EndDate != nil && h.EndDate.Before(h.StartDate) {
		verrs := validate.Errors{}
		verrs.Add("data_fim", "A data de fim não pode ser anterior à data de início.")
		return HistoryEntry{}, fmt.Errorf("%w: %w", ErrInvalidInput, verrs)
	}
	if err := s.repo.UpdateHistory(ctx, h); err != nil {
		return HistoryEntry{}, err
	}
	return h, nil
}

func (s *Service) DeletePlacement(ctx context.Context, catID uint) (Placement, error) {
	return s.repo.DeletePlacement(ctx, catID)
}

func (s *Service) DeleteHistory(ctx context.Context, id uint) (HistoryEntry, error) {
	return s.repo.DeleteHistory(ctx, id)
}

func (s *Service) ListPlacements(ctx context.Context) ([]Placement, error) {
	return s.repo.ListPlacements(ctx)
}

func (s *Service) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	return s.repo.ListHistory(ctx)
}

// ApplicationsForCat lista las solicitudes de lar hechas para un gato.
func (s *Service) ApplicationsForCat(ctx context.Context, catID uint) ([]Application, error) {
	return s.repo.ListApplicationsByCat(ctx, catID)
}

func (s *Service) today() time.Time {
	return dates.Of(s.now(), s.loc)
}

func caregiverOf(a Answers) Caregiver {
	return Caregiver{
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		Street:   a.Street,
		Number:   a.Number,
		District: a.District,
		City:     a.City,
		CEP:      a.CEP,
	}
}

func normalize(a Answers) Answers {
	for _, p := range []*string{
		&a.Name, &a.Email, &a.Occupation, &a.CPF,
		&a.Street, &a.Number, &a.District, &a.City, &a.CEP,
		&a.OtherAnimals, &a.AdditionalInfo,
	} {
		*p = strings.TrimSpace(*p)
	}
	// El teléfono se guarda solo con dígitos.
	a.Phone = validate.Digits(a.Phone)
	a.Structure = Choice(strings.ToLower(strings.TrimSpace(string(a.Structure))))
	a.Costs = Choice(strings.ToLower(strings.TrimSpace(string(a.Costs))))
	a.Duration = Duration(strings.ToLower(strings.TrimSpace(string(a.Duration))))
	return a
}

func validateAnswers(a Answers, availableFrom time.Time) error {
	verrs := validate.Errors{}

	verrs.Required("nome", a.Name)
	verrs.MaxLen("nome", a.Name, 100)
	verrs.Email("email", a.Email)
	verrs.Required("ocupacao_profissional", a.Occupation)
	verrs.Required("cpf", a.CPF)
	if d := validate.Digits(a.CPF); a.CPF != "" && len(d) != 11 {
		verrs.Add("cpf", "CPF inválido.")
	}
	verrs.Phone("numero_contato", a.Phone)
	verrs.Required("rua", a.Street)
	verrs.Required("numero", a.Number)
	verrs.Required("bairro", a.District)
	verrs.Required("cidade", a.City)
	verrs.Required("cep", a.CEP)
	if availableFrom.IsZero() {
		verrs.Add("disponibilidade_inicio", "Este campo é obrigatório.")
	}
	if !a.Structure.Valid() {
		verrs.Add("estrutura", "Escolha uma opção válida.")
	}
	if !a.Costs.Valid() {
		verrs.Add("custos", "Escolha uma opção válida.")
	}
	if !a.Duration.Valid() {
		verrs.Add("duracao_aproximada", "Escolha uma opção válida.")
	}
	verrs.MaxLen("animal_externo", a.OtherAnimals, 2000)
	verrs.MaxLen("informacao_adicional", a.AdditionalInfo, 5000)

	if err := verrs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
