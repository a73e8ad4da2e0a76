package adoptions

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/photos"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

const (
	CatalogURL           = "/adocoes/"
	ThankYouURL          = "/adocoes/obrigado"
	AdoptedDashboardURL  = "/admin/dashboard/adotados"
	adoptionDashboardURL = cats.AdoptionDashboardURL
)

// RegisterPublicRoutes: formulario de adopción y lista de adotados.
func RegisterPublicRoutes(r chi.Router, svc *Service, catSvc *cats.Service, log logger.Logger) {
	r.Get("/adocoes/solicitar", formHandler(svc, catSvc))
	r.Post("/adocoes/solicitar", applyHandler(svc, log))
	r.Get("/adocoes/obrigado", thankYouHandler())
	r.Get("/adocoes/adotados", adoptedListHandler(svc, log))
}

// RegisterAdminRoutes: registro, edición y baja de adopciones (requiere sesión).
func RegisterAdminRoutes(r chi.Router, svc *Service, photoSvc *photos.Service, log logger.Logger) {
	r.Get("/admin/adocoes/registrar", registerFormHandler(svc, log))
	r.Post("/admin/adocoes/registrar", registerHandler(svc, photoSvc, log))
	r.Post("/admin/adotados/{adoptedID}", updateHandler(svc, photoSvc, log))
	r.Post("/admin/adotados/{adoptedID}/excluir", deleteHandler(svc, log))
	r.Get("/admin/gatos/{catID}/adotantes", applicantsHandler(svc, log))
}

type registerRequest struct {
	Gato       uint       `json:"gato"`
	Adotante   uint       `json:"adotante"`
	DataInicio dates.Date `json:"data_inicio"`
	Foto       string     `json:"foto"`
}

type ApplicantResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type AdoptedResponse struct {
	ID         uint      `json:"id"`
	GatoID     uint      `json:"gato_id"`
	Gato       string    `json:"gato"`
	Adotado    bool      `json:"adotado"`
	AdocaoID   uint      `json:"adocao_id"`
	Adotante   string    `json:"adotante"`
	DataInicio string    `json:"data_inicio"`
	Imagem     string    `json:"imagem"`
	CreatedAt  time.Time `json:"created_at"`
}

type formResponse struct {
	Gato      cats.CatResponse `json:"gato"`
	Mensagens []web.Flash      `json:"mensagens"`
}

type adoptedListResponse struct {
	Adotados   []AdoptedResponse `json:"adotados"`
	ShowAll    bool              `json:"show_all"`
	TotalCount int64             `json:"total_count"`
}

type catOption struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type registerFormResponse struct {
	Gatos     []catOption         `json:"gatos"`
	Adotantes []ApplicantResponse `json:"adotantes"`
}

type thankYouResponse struct {
	Mensagem  string      `json:"mensagem"`
	Mensagens []web.Flash `json:"mensagens"`
}

// formHandler godoc
// @Summary      Dados do formulário de adoção para o gato escolhido
// @Tags         adocoes
// @Produce      json
// @Param        gato  query  int  true  "ID do gato"
// @Success      200  {object}  formResponse
// @Success      303
// @Router       /adocoes/solicitar [get]
func formHandler(svc *Service, catSvc *cats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.ParseID(r.URL.Query().Get("gato"))
		if !ok {
			web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
			return
		}
		c, err := svc.Cat(r.Context(), catID)
		if err != nil {
			web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
			return
		}
		web.WriteJSON(w, http.StatusOK, formResponse{
			Gato:      cats.ToCatResponse(catSvc, c),
			Mensagens: web.PopFlashes(w, r),
		})
	}
}

// applyHandler godoc
// @Summary      Envia uma solicitação de adoção
// @Tags         adocoes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        gato  query  int      true  "ID do gato"
// @Param        body  body   Answers  true  "Questionário"
// @Success      303
// @Success      201  {object}  web.StatusResponse
// @Failure      422  {object}  web.StatusResponse
// @Router       /adocoes/solicitar [post]
func applyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.ParseID(r.URL.Query().Get("gato"))
		if !ok {
			web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
			return
		}

		var req Answers
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}

		app, err := svc.Apply(r.Context(), catID, req)
		if err != nil {
			switch {
			case errors.Is(err, cats.ErrNotFound):
				web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
			case errors.Is(err, ErrInvalidInput):
				web.WriteValidation(w, err)
			case errors.Is(err, ErrNotification):
				log.Error("adoption email failed", map[string]any{"err": err, "adocao_id": app.ID})
				web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Não foi possível enviar a solicitação. Tente novamente.")
			default:
				log.Error("adoption application failed", map[string]any{"err": err})
				web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao salvar a solicitação.")
			}
			return
		}

		log.Info("adoption application received", map[string]any{"adocao_id": app.ID, "gato_id": app.CatID})
		web.Outcome(w, r, http.StatusCreated, web.FlashSuccess, "Sua solicitação foi enviada com sucesso!", ThankYouURL)
	}
}

func thankYouHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, thankYouResponse{
			Mensagem:  "Obrigado! Recebemos sua solicitação de adoção e entraremos em contato.",
			Mensagens: web.PopFlashes(w, r),
		})
	}
}

// adoptedListHandler godoc
// @Summary      Gatos já adotados
// @Tags         adocoes
// @Produce      json
// @Param        show_all  query  bool  false  "Mostrar todos"
// @Success      200  {object}  adoptedListResponse
// @Router       /adocoes/adotados [get]
func adoptedListHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showAll := strings.EqualFold(r.URL.Query().Get("show_all"), "true")

		res, err := svc.ListAdopted(r.Context(), showAll)
		if err != nil {
			log.Error("adopted list query failed", map[string]any{"err": err})
			res = AdoptedList{Items: []Adopted{}, ShowAll: showAll}
		}

		web.WriteJSON(w, http.StatusOK, adoptedListResponse{
			Adotados:   ToAdoptedResponses(res.Items),
			ShowAll:    res.ShowAll,
			TotalCount: res.Total,
		})
	}
}

// registerFormHandler godoc
// @Summary      Opções do formulário de registro de adoção
// @Tags         admin
// @Produce      json
// @Success      200  {object}  registerFormResponse
// @Router       /admin/adocoes/registrar [get]
func registerFormHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := svc.RegisterOptions(r.Context())
		if err != nil {
			log.Error("register form query failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := registerFormResponse{
			Gatos:     make([]catOption, 0, len(opts.Cats)),
			Adotantes: toApplicantResponses(opts.Applicants),
		}
		for _, c := range opts.Cats {
			resp.Gatos = append(resp.Gatos, catOption{ID: c.ID, Nome: c.Name})
		}
		web.WriteJSON(w, http.StatusOK, resp)
	}
}

// registerHandler godoc
// @Summary      Registra uma adoção
// @Tags         admin
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Failure      409  {object}  web.StatusResponse
// @Router       /admin/adocoes/registrar [post]
func registerHandler(svc *Service, photoSvc *photos.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRegisterRequest(w, r, photoSvc, log)
		if !ok {
			return
		}

		a, err := svc.Register(r.Context(), req.toInput())
		if err != nil {
			writeAdoptionError(w, r, err, adoptionDashboardURL, log)
			return
		}

		log.Info("adoption registered", map[string]any{"adotado_id": a.ID, "gato_id": a.CatID})
		web.Outcome(w, r, http.StatusCreated, web.FlashSuccess, "Adoção registrada com sucesso!", AdoptedDashboardURL)
	}
}

// updateHandler godoc
// @Summary      Edita um registro de adoção
// @Tags         admin
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        adoptedID  path  int  true  "ID do registro"
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Failure      409  {object}  web.StatusResponse
// @Router       /admin/adotados/{adoptedID} [post]
func updateHandler(svc *Service, photoSvc *photos.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := cats.ParseID(chi.URLParam(r, "adoptedID"))
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Registro não encontrado.")
			return
		}
		req, ok := decodeRegisterRequest(w, r, photoSvc, log)
		if !ok {
			return
		}

		if _, err := svc.Update(r.Context(), id, req.toInput()); err != nil {
			writeAdoptionError(w, r, err, AdoptedDashboardURL, log)
			return
		}

		web.Outcome(w, r, http.StatusOK, web.FlashSuccess, "Adoção atualizada com sucesso!", AdoptedDashboardURL)
	}
}

// deleteHandler godoc
// @Summary      Exclui um registro de adoção (popup de confirmação)
// @Tags         admin
// @Produce      json
// @Param        adoptedID  path  int  true  "ID do registro"
// @Success      200  {object}  web.StatusResponse
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/adotados/{adoptedID}/excluir [post]
func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := cats.ParseID(chi.URLParam(r, "adoptedID"))
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Registro não encontrado.")
			return
		}

		a, err := svc.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Registro não encontrado.")
				return
			}
			log.Error("delete adopted failed", map[string]any{"err": err, "adotado_id": id})
			web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao excluir o registro.")
			return
		}

		web.WriteStatus(w, http.StatusOK, web.StatusOK, fmt.Sprintf("Gato %s excluído com sucesso!", a.CatName))
	}
}

// applicantsHandler godoc
// @Summary      Solicitações de adoção de um gato
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {array}  ApplicantResponse
// @Router       /admin/gatos/{catID}/adotantes [get]
func applicantsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.CatIDParam(r)
		if !ok {
			web.WriteJSON(w, http.StatusOK, []ApplicantResponse{})
			return
		}
		apps, err := svc.ApplicantsForCat(r.Context(), catID)
		if err != nil {
			log.Error("applicants query failed", map[string]any{"err": err, "gato_id": catID})
			apps = nil
		}
		web.WriteJSON(w, http.StatusOK, toApplicantResponses(apps))
	}
}

func decodeRegisterRequest(w http.ResponseWriter, r *http.Request, photoSvc *photos.Service, log logger.Logger) (registerRequest, bool) {
	var req registerRequest
	if err := web.Decode(r, &req); err != nil {
		web.WriteDecodeError(w, err)
		return req, false
	}

	url, uploaded, err := photoSvc.FromRequest(r, "foto")
	switch {
	case errors.Is(err, photos.ErrInvalidPhoto), errors.Is(err, photos.ErrTooLarge):
		web.WriteStatus(w, http.StatusUnprocessableEntity, web.StatusError, err.Error())
		return req, false
	case err != nil:
		log.Error("adoption photo upload failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return req, false
	case uploaded:
		req.Foto = url
	}
	return req, true
}

// writeAdoptionError mapea los errores del servicio. Una adopción duplicada
// no es un error del servidor: aviso + redirect a warnURL.
func writeAdoptionError(w http.ResponseWriter, r *http.Request, err error, warnURL string, log logger.Logger) {
	var dup *AlreadyAdoptedError
	switch {
	case errors.As(err, &dup):
		web.Outcome(w, r, http.StatusConflict, web.FlashWarning, dup.Error(), warnURL)
	case errors.Is(err, ErrInvalidInput):
		web.WriteValidation(w, err)
	case errors.Is(err, ErrNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Registro não encontrado.")
	case errors.Is(err, cats.ErrNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
	case errors.Is(err, ErrApplicationNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Adotante não encontrado.")
	default:
		log.Error("adoption write failed", map[string]any{"err": err})
		web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao salvar a adoção.")
	}
}

func (req registerRequest) toInput() RegisterInput {
	return RegisterInput{
		CatID:         req.Gato,
		ApplicationID: req.Adotante,
		StartDate:     req.DataInicio.Time,
		Photo:         req.Foto,
	}
}

// ToAdoptedResponses arma la vista JSON (también la usa el dashboard).
func ToAdoptedResponses(items []Adopted) []AdoptedResponse {
	out := make([]AdoptedResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AdoptedResponse{
			ID:         a.ID,
			GatoID:     a.CatID,
			Gato:       a.CatName,
			Adotado:    a.CatAdopted,
			AdocaoID:   a.ApplicationID,
			Adotante:   a.ApplicantName,
			DataInicio: a.StartDate.Format(dates.Layout),
			Imagem:     a.Photo,
			CreatedAt:  a.CreatedAt,
		})
	}
	return out
}

func toApplicantResponses(items []Application) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicantResponse{ID: a.ID, Nome: a.Name, Email: a.Email})
	}
	return out
}
