package cats

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/photos"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

const (
	AdoptionDashboardURL = "/admin/dashboard/adocoes"
)

// RegisterListRoutes: catálogos públicos (adopción y lar temporário).
func RegisterListRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/adocoes/", listHandler(svc, log, false))
	r.Get("/lares-temporarios/", listHandler(svc, log, true))
}

// RegisterDetailRoutes: detalle público de un gato.
func RegisterDetailRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/adocoes/gato/{catID}", detailHandler(svc, log))
	r.Get("/lares-temporarios/gato/{catID}", detailHandler(svc, log))
}

// RegisterAdminRoutes: alta, edición y baja de gatos (requiere sesión).
func RegisterAdminRoutes(r chi.Router, svc *Service, photoSvc *photos.Service, log logger.Logger) {
	r.Post("/admin/gatos", createHandler(svc, photoSvc, log))
	r.Get("/admin/gatos/{catID}", getHandler(svc))
	r.Post("/admin/gatos/{catID}", updateHandler(svc, photoSvc, log))
	r.Post("/admin/gatos/{catID}/excluir", deleteHandler(svc, log))
}

type catRequest struct {
	Nome           string     `json:"nome"`
	Sexo           string     `json:"sexo"`
	DataNascimento dates.Date `json:"data_nascimento"`
	Descricao      string     `json:"descricao"`
	Imagem         string     `json:"imagem"`
	LarTemporario  bool       `json:"lar_temporario"`

	Care
	Temperament
	Sociability
	Housing
}

type summaryResponse struct {
	Cuidado      []string `json:"cuidado"`
	Temperamento []string `json:"temperamento"`
	Sociavel     []string `json:"sociavel"`
	Moradia      []string `json:"moradia"`
}

type CatResponse struct {
	ID              uint            `json:"id"`
	Nome            string          `json:"nome"`
	Sexo            Sex             `json:"sexo"`
	SexoLabel       string          `json:"sexo_label"`
	DataNascimento  string          `json:"data_nascimento"`
	Idade           string          `json:"idade"`
	Descricao       string          `json:"descricao"`
	Imagem          string          `json:"imagem"`
	LarTemporario   bool            `json:"lar_temporario"`
	Adotado         bool            `json:"adotado"`
	EmLarTemporario bool            `json:"em_lar_temporario"`
	Cuidado         Care            `json:"cuidado"`
	Temperamento    Temperament     `json:"temperamento"`
	Sociavel        Sociability     `json:"sociavel"`
	Moradia         Housing         `json:"moradia"`
	Resumo          summaryResponse `json:"resumo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type listResponse struct {
	Gatos      []CatResponse `json:"gatos"`
	ShowAll    bool          `json:"show_all"`
	TotalCount int64         `json:"total_count"`
	Nome       string        `json:"nome"`
	Sexo       string        `json:"sexo"`
}

type createdResponse struct {
	Status   string      `json:"status"`
	Mensagem string      `json:"mensagem"`
	Gato     CatResponse `json:"gato"`
}

type detailResponse struct {
	Gato        CatResponse   `json:"gato"`
	OutrosGatos []CatResponse `json:"outros_gatos"`
}

// listHandler godoc
// @Summary      Catálogo de gatos disponíveis
// @Tags         catalogo
// @Produce      json
// @Param        nome            query  string  false  "Filtro por nome (q no catálogo de lares)"
// @Param        sexo            query  string  false  "M, F, macho ou fêmea"
// @Param        show_all        query  bool    false  "Mostrar todos"
// @Param        lar_temporario  query  bool    false  "Somente gatos que precisam de lar temporário"
// @Success      200  {object}  listResponse
// @Router       /adocoes/ [get]
// @Router       /lares-temporarios/ [get]
func listHandler(svc *Service, log logger.Logger, foster bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := q.Get("nome")
		if name == "" && foster {
			name = q.Get("q")
		}

		in := ListInput{
			Name:            name,
			Sex:             q.Get("sexo"),
			ShowAll:         strings.EqualFold(q.Get("show_all"), "true"),
			OnlyNeedsFoster: parseBool(q.Get("lar_temporario")),
		}

		res, err := svc.ListAvailable(r.Context(), in)
		if err != nil {
			// Degradar a lista vacía: el catálogo nunca responde 500.
			log.Error("catalog query failed", map[string]any{"err": err, "foster": foster})
			res = ListResult{Cats: []Cat{}, ShowAll: in.ShowAll}
		}

		web.WriteJSON(w, http.StatusOK, listResponse{
			Gatos:      toCatResponses(svc, res.Cats),
			ShowAll:    res.ShowAll,
			TotalCount: res.Total,
			Nome:       in.Name,
			Sexo:       in.Sex,
		})
	}
}

// detailHandler godoc
// @Summary      Detalhe de um gato
// @Tags         catalogo
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {object}  detailResponse
// @Failure      404  {string}  string  "gato não encontrado"
// @Router       /adocoes/gato/{catID} [get]
func detailHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := CatIDParam(r)
		if !ok {
			http.Error(w, "gato não encontrado", http.StatusNotFound)
			return
		}

		c, others, err := svc.Detail(r.Context(), id)
		if errors.Is(err, ErrSimilarUnavailable) {
			log.Warn("similar cats query failed", map[string]any{"err": err, "gato_id": id})
			err = nil
		}
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "gato não encontrado", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, detailResponse{
			Gato:        ToCatResponse(svc, c),
			OutrosGatos: toCatResponses(svc, others),
		})
	}
}

// createHandler godoc
// @Summary      Cadastra um gato com seus atributos
// @Tags         admin
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Success      303
// @Success      201  {object}  createdResponse
// @Failure      422  {object}  web.StatusResponse
// @Router       /admin/gatos [post]
func createHandler(svc *Service, photoSvc *photos.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCatRequest(w, r, photoSvc, log)
		if !ok {
			return
		}

		c, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeCatError(w, err, log)
			return
		}

		msg := fmt.Sprintf("Gato %s cadastrado com sucesso!", c.Name)
		if web.IsAJAX(r) {
			web.WriteJSON(w, http.StatusCreated, createdResponse{
				Status:   web.StatusOK,
				Mensagem: msg,
				Gato:     ToCatResponse(svc, c),
			})
			return
		}
		web.Outcome(w, r, http.StatusCreated, web.FlashSuccess, msg, AdoptionDashboardURL)
	}
}

// getHandler godoc
// @Summary      Dados de um gato para o formulário de edição
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {object}  CatResponse
// @Router       /admin/gatos/{catID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := CatIDParam(r)
		if !ok {
			http.Error(w, "gato não encontrado", http.StatusNotFound)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "gato não encontrado", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToCatResponse(svc, c))
	}
}

// updateHandler godoc
// @Summary      Edita um gato e seus atributos
// @Tags         admin
// @Accept       json,x-www-form-urlencoded,mpfd
// @Param        catID  path  int  true  "ID do gato"
// @Success      303
// @Success      200  {object}  web.StatusResponse
// @Failure      404  {string}  string  "gato não encontrado"
// @Failure      422  {object}  web.StatusResponse
// @Router       /admin/gatos/{catID} [post]
func updateHandler(svc *Service, photoSvc *photos.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := CatIDParam(r)
		if !ok {
			http.Error(w, "gato não encontrado", http.StatusNotFound)
			return
		}
		req, ok := decodeCatRequest(w, r, photoSvc, log)
		if !ok {
			return
		}

		c, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeCatError(w, err, log)
			return
		}

		web.Outcome(w, r, http.StatusOK, web.FlashSuccess,
			fmt.Sprintf("Gato %s atualizado com sucesso!", c.Name), AdoptionDashboardURL)
	}
}

// deleteHandler godoc
// @Summary      Exclui um gato (popup de confirmação)
// @Tags         admin
// @Produce      json
// @Param        catID  path  int  true  "ID do gato"
// @Success      200  {object}  web.StatusResponse
// @Failure      404  {object}  web.StatusResponse
// @Router       /admin/gatos/{catID}/excluir [post]
func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := CatIDParam(r)
		if !ok {
			web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
			return
		}

		c, err := svc.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteStatus(w, http.StatusNotFound, web.StatusError, "Gato não encontrado.")
				return
			}
			log.Error("delete cat failed", map[string]any{"err": err, "gato_id": id})
			web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao excluir o gato.")
			return
		}

		web.WriteStatus(w, http.StatusOK, web.StatusOK, fmt.Sprintf("Gato %s excluído com sucesso!", c.Name))
	}
}

func decodeCatRequest(w http.ResponseWriter, r *http.Request, photoSvc *photos.Service, log logger.Logger) (catRequest, bool) {
	var req catRequest
	if err := web.Decode(r, &req); err != nil {
		web.WriteDecodeError(w, err)
		return req, false
	}

	url, uploaded, err := photoSvc.FromRequest(r, "imagem")
	switch {
	case errors.Is(err, photos.ErrInvalidPhoto), errors.Is(err, photos.ErrTooLarge):
		web.WriteStatus(w, http.StatusUnprocessableEntity, web.StatusError, err.Error())
		return req, false
	case err != nil:
		log.Error("cat photo upload failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return req, false
	case uploaded:
		req.Imagem = url
	}
	return req, true
}

func writeCatError(w http.ResponseWriter, err error, log logger.Logger) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		web.WriteValidation(w, err)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "gato não encontrado", http.StatusNotFound)
	default:
		log.Error("cat write failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (req catRequest) toInput() Input {
	return Input{
		Name:        req.Nome,
		Sex:         req.Sexo,
		BirthDate:   req.DataNascimento.Time,
		Description: req.Descricao,
		Photo:       req.Imagem,
		NeedsFoster: req.LarTemporario,
		Care:        req.Care,
		Temperament: req.Temperament,
		Sociability: req.Sociability,
		Housing:     req.Housing,
	}
}

// CatIDParam lee {catID} de la ruta.
func CatIDParam(r *http.Request) (uint, bool) {
	return ParseID(chi.URLParam(r, "catID"))
}

// ParseID interpreta un ID numérico positivo.
func ParseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// ToCatResponse arma la vista JSON del gato (también la usan los dashboards).
func ToCatResponse(svc *Service, c Cat) CatResponse {
	return CatResponse{
		ID:              c.ID,
		Nome:            c.Name,
		Sexo:            c.Sex,
		SexoLabel:       c.Sex.Label(),
		DataNascimento:  c.BirthDate.Format(dates.Layout),
		Idade:           svc.Age(c),
		Descricao:       c.Description,
		Imagem:          c.Photo,
		LarTemporario:   c.NeedsFoster,
		Adotado:         c.Adopted,
		EmLarTemporario: c.InFoster,
		Cuidado:         c.Care,
		Temperamento:    c.Temperament,
		Sociavel:        c.Sociability,
		Moradia:         c.Housing,
		Resumo: summaryResponse{
			Cuidado:      c.Care.Labels(),
			Temperamento: c.Temperament.Labels(),
			Sociavel:     c.Sociability.Labels(),
			Moradia:      c.Housing.Labels(),
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCatResponses(svc *Service, items []Cat) []CatResponse {
	out := make([]CatResponse, 0, len(items))
	for _, c := range items {
		out = append(out, ToCatResponse(svc, c))
	}
	return out
}
