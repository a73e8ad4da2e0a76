package fostercare

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

const (
	CatalogURL           = "/lares-temporarios/"
	ThankYouURL          = "/lares-temporarios/obrigado"
	FosterDashboardURL   = "/admin/dashboard/lares-temporarios"
	placementNotFoundMsg = "Registro não encontrado."
)

// RegisterPublicRoutes: formulario público de lar temporário.
func RegisterPublicRoutes(r chi.Router, svc *Service, catSvc *cats.Service, log logger.Logger) {
	r.Get("/lares-temporarios/solicitar", formHandler(svc, catSvc))
	r.Post("/lares-temporarios/solicitar", applyHandler(svc, log))
	r.Get("/lares-temporarios/obrigado", thankYouHandler())
}

// RegisterAdminRoutes: gestión de lares actuales e historial (requiere sesión).
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/admin/lares-temporarios/registrar", registerFormHandler(svc, log))
	r.Post("/admin/lares-temporarios/registrar", registerHandler(svc, log))
	r.Post("/admin/lares-temporarios/finalizar/{catID}", finalizeHandler(svc, log))
	r.Post("/admin/lares-temporarios/atual/{catID}", updatePlacementHandler(svc, log))
	r.Post("/admin/lares-temporarios/historico/{historyID}", updateHistoryHandler(svc, log))
	r.Post("/admin/lares-temporarios/atual/{catID}/excluir", deletePlacementHandler(svc, log))
	r.Post("/admin/lares-temporarios/historico/{historyID}/excluir", deleteHistoryHandler(svc, log))
	r.Get("/admin/gatos/{catID}/lares", applicationsHandler(svc, log))
}

type applyRequest struct {
	Answers
	DisponibilidadeInicio dates.Date `json:"disponibilidade_inicio"`
}

type registerRequest struct {
	Gato       uint       `json:"gato"`
	Lar        uint       `json:"lar"`
	DataInicio dates.Date `json:"data_inicio"`
}

type editRequest struct {
	Lar        uint       `json:"lar"`
	DataInicio dates.Date `json:"data_inicio"`
	DataFim    dates.Date `json:"data_fim"`
}

type ApplicationResponse struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	NumeroContato string `json:"numero_contato"`
}

type PlacementResponse struct {
	ID         uint   `json:"id"`
	GatoID     uint   `json:"gato_id"`
	Gato       string `json:"gato"`
	LarID      uint   `json:"lar_id"`
	Cuidador   string `json:"cuidador"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
	Endereco   string `json:"endereco"`
	DataInicio string `json:"data_inicio"`
}

type HistoryResponse struct {
	PlacementResponse
	DataFim string `json:"data_fim"`
}

type formResponse struct {
	Gato      *cats.CatResponse `json:"gato"`
	Mensagens []web.Flash       `json:"mensagens"`
}

type catOption struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type registerFormResponse struct {
	Gatos []catOption           `json:"gatos"`
	Lares []ApplicationResponse `json:"lares"`
}

type thankYouResponse struct {
	Mensagem  string      `json:"mensagem"`
	Mensagens []web.Flash `json:"mensagens"`
}

// formHandler godoc
// @Summary      Dados do formulário de lar temporário
// @Tags         lares-temporarios
// @Produce      json
// @Param        gato  query  int  false  "ID do gato (opcional)"
// @Success      200  {object}  formResponse
// @Failure      404  {object}  web.StatusResponse
// @Router       /lares-temporarios/solicitar [get]
func formHandler(svc *Service, catSvc *cats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := formResponse{}
		if raw := r.URL.Query().Get("gato"); raw != "" {
			catID, ok := cats.ParseID(raw)
			if !ok {
				web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
				return
			}
			c, err := svc.Cat(r.Context(), catID)
			if err != nil {
				web.Outcome(w, r, http.StatusNotFound, web.FlashError, "Gato não encontrado.", CatalogURL)
				return
			}
			cr := cats.ToCatResponse(catSvc, c)
			resp.Gato = &cr
		}
		resp.Mensagens = web.PopFlashes(w, r)
		web.WriteJSON(w, http.StatusOK, resp)
	}
}

// applyHandler godoc
// @Summary      Envia uma solicitação de lar temporário
// @Tags         lares-temporarios
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        gato  query  int  false  "ID do gato (opcional)"
// @Success      303
// @Success      201  {object}  web.StatusResponse
// @Failure      404  {object}  web.StatusResponse
// @Failure      422  {object}  web.StatusResponse
// @Router       /lares-temporarios/solicitar [post]
func applyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var catID uint
		if raw := r.URL.Query().Get("gato"); raw != "" {
			id, ok := cats.ParseID(raw)
			if !ok {
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
				return
			}
			catID = id
		}

		var req applyRequest
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}

		app, err := svc.Apply(r.Context(), catID, req.Answers, req.DisponibilidadeInicio.Time)
		if err != nil {
			switch {
			case errors.Is(err, cats.ErrNotFound):
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
			case errors.Is(err, ErrInvalidInput):
				web.WriteValidation(w, err)
			case errors.Is(err, ErrNotification):
				log.Error("foster email failed", map[string]any{"err": err, "lar_id": app.ID})
				web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Não foi possível enviar a solicitação. Tente novamente.")
			default:
				log.Error("foster application failed", map[string]any{"err": err})
				web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao salvar a solicitação.")
			}
			return
		}

		log.Info("foster application received", map[string]any{"lar_id": app.ID, "gato_id": catID})
		web.Outcome(w, r, http.StatusCreated, web.FlashSuccess, "Solicitação de lar temporário enviada com sucesso.", ThankYouURL)
	}
}

func thankYouHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, thankYouResponse{
			Mensagem:  "Obrigado por se oferecer como lar temporário! Entraremos em contato.",
			Mensagens: web.PopFlashes(w, r),
		})
	}
}

// registerFormHandler godoc
// @Summary      Opções do formulário de lar temporário atual
// @Tags         admin
// @Produce      json
// @Success      200  {object}  registerFormResponse
// @Router       /admin/lares-temporarios/registrar [get]
func registerFormHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := svc.RegisterOptions(r.Context())
		if err != nil {
			log.Error("foster register form query failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		resp := registerFormResponse{
			Gatos: make([]catOption, 0, len(opts.Cats)),
			Lares: toApplicationResponses(opts.Applications),
		}
		for _, c := range opts.Cats {
			resp.Gatos = append(resp.Gatos, catOption{ID: c.ID, Nome: c.Name})
		}
		web.WriteJSON(w, http.StatusOK, resp)
	}
}

// registerHandler godoc
// @Summary      Registra um lar temporário atual
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Failure      409  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/registrar [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			CatID:         req.Gato,
			ApplicationID: req.Lar,
			StartDate:     req.DataInicio.Time,
		})
		if err != nil {
			writeFosterError(w, r, err, log)
			return
		}

		log.Info("foster placement registered", map[string]any{"gato_id": p.CatID, "lar_id": p.ApplicationID})
		web.Outcome(w, r, http.StatusCreated, web.FlashSuccess,
			fmt.Sprintf("Lar temporário do gato %s registrado com sucesso!", p.CatName), FosterDashboardURL)
	}
}

// finalizeHandler godoc
// @Summary      Finaliza o lar temporário atual de um gato
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/finalizar/{catID} [post]
func finalizeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.CatIDParam(r)
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
			return
		}

		h, err := svc.Finalize(r.Context(), catID)
		if err != nil {
			writeFosterError(w, r, err, log)
			return
		}

		log.Info("foster placement finalized", map[string]any{"gato_id": catID, "historico_id": h.ID})
		web.Outcome(w, r, http.StatusOK, web.FlashSuccess,
			fmt.Sprintf("Lar temporário do gato %s finalizado com sucesso!", h.CatName), FosterDashboardURL)
	}
}

// updatePlacementHandler godoc
// @Summary      Edita o lar temporário atual de um gato
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/atual/{catID} [post]
func updatePlacementHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.CatIDParam(r)
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
			return
		}
		var req editRequest
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}

		if _, err := svc.UpdatePlacement(r.Context(), catID, req.toInput()); err != nil {
			writeFosterError(w, r, err, log)
			return
		}
		web.Outcome(w, r, http.StatusOK, web.FlashSuccess, "Lar temporário atualizado com sucesso!", FosterDashboardURL)
	}
}

// updateHistoryHandler godoc
// @Summary      Edita um registro do histórico de lares temporários
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        historyID  path  int  true  "ID do histórico"
// @Success      303
// @Failure      404  {object}  web.StatusResponse
// @Failure      422  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/historico/{historyID} [post]
func updateHistoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := cats.ParseID(chi.URLParam(r, "historyID"))
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
			return
		}
		var req editRequest
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}

		if _, err := svc.UpdateHistory(r.Context(), id, req.toInput()); err != nil {
			writeFosterError(w, r, err, log)
			return
		}
		web.Outcome(w, r, http.StatusOK, web.FlashSuccess, "Histórico atualizado com sucesso!", FosterDashboardURL)
	}
}

// deletePlacementHandler godoc
// @Summary      Exclui o lar temporário atual de um gato (popup de confirmação)
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {object}  web.StatusResponse
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/atual/{catID}/excluir [post]
func deletePlacementHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.CatIDParam(r)
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
			return
		}

		p, err := svc.DeletePlacement(r.Context(), catID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
				return
			}
			log.Error("delete placement failed", map[string]any{"err": err, "gato_id": catID})
			web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao excluir o registro.")
			return
		}
		web.WriteStatus(w, http.StatusOK, web.StatusOK,
			fmt.Sprintf("Lar temporário do gato %s excluído com sucesso!", p.CatName))
	}
}

// deleteHistoryHandler godoc
// @Summary      Exclui um registro do histórico (popup de confirmação)
// @Tags         admin
// @Produce      json
// @Param        historyID  path  int  true  "ID do histórico"
// @Success      200  {object}  web.StatusResponse
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/lares-temporarios/historico/{historyID}/excluir [post]
func deleteHistoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := cats.ParseID(chi.URLParam(r, "historyID"))
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
			return
		}

		h, err := svc.DeleteHistory(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
				return
			}
			log.Error("delete history failed", map[string]any{"err": err, "historico_id": id})
			web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao excluir o registro.")
			return
		}
		web.WriteStatus(w, http.StatusOK, web.StatusOK,
			fmt.Sprintf("Histórico do gato %s excluído com sucesso!", h.CatName))
	}
}

// applicationsHandler godoc
// @Summary      Solicitações de lar temporário de um gato
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {array}  ApplicationResponse
// @Router       /admin/gatos/{catID}/lares [get]
func applicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID, ok := cats.CatIDParam(r)
		if !ok {
			web.WriteJSON(w, http.StatusOK, []ApplicationResponse{})
			return
		}
		apps, err := svc.ApplicationsForCat(r.Context(), catID)
		if err != nil {
			log.Error("foster applications query failed", map[string]any{"err": err, "gato_id": catID})
			apps = nil
		}
		web.WriteJSON(w, http.StatusOK, toApplicationResponses(apps))
	}
}

func writeFosterError(w http.ResponseWriter, r *http.Request, err error, log logger.Logger) {
	var rejected *RejectedError
	switch {
	case errors.As(err, &rejected):
		web.Outcome(w, r, http.StatusConflict, web.FlashWarning, rejected.Error(), FosterDashboardURL)
	case errors.Is(err, ErrInvalidInput):
		web.WriteValidation(w, err)
	case errors.Is(err, ErrNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, placementNotFoundMsg)
	case errors.Is(err, cats.ErrNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
	case errors.Is(err, ErrApplicationNotFound):
		web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Lar temporário não encontrado.")
	default:
		log.Error("foster write failed", map[string]any{"err": err})
		web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao salvar o lar temporário.")
	}
}

func (req editRequest) toInput() EditInput {
	return EditInput{
		ApplicationID: req.Lar,
		StartDate:     req.DataInicio.Time,
		EndDate:       req.DataFim.Time,
	}
}

// ToPlacementResponses arma la vista JSON de los lares actuales (dashboard).
func ToPlacementResponses(items []Placement) []PlacementResponse {
	out := make([]PlacementResponse, 0, len(items))
	for _, p := range items {
		out = append(out, placementResponse(p.ID, p.CatID, p.CatName, p.ApplicationID, p.Caregiver, p.StartDate.Format(dates.Layout)))
	}
	return out
}

// ToHistoryResponses arma la vista JSON del historial (dashboard).
func ToHistoryResponses(items []HistoryEntry) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(items))
	for _, h := range items {
		out = append(out, HistoryResponse{
			PlacementResponse: placementResponse(h.ID, h.CatID, h.CatName, h.ApplicationID, h.Caregiver, h.StartDate.Format(dates.Layout)),
			DataFim:           dates.Format(h.EndDate),
		})
	}
	return out
}

func placementResponse(id, catID uint, catName string, appID uint, c Caregiver, start string) PlacementResponse {
	return PlacementResponse{
		ID:         id,
		GatoID:     catID,
		Gato:       catName,
		LarID:      appID,
		Cuidador:   c.Name,
		Email:      c.Email,
		Telefone:   c.Phone,
		Endereco:   c.Address(),
		DataInicio: start,
	}
}

func toApplicationResponses(items []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicationResponse{ID: a.ID, Nome: a.Name, Email: a.Email, NumeroContato: a.Phone})
	}
	return out
}
