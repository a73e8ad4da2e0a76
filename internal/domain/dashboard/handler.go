package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

// RegisterRoutes: las tres vistas del panel (requiere sesión).
func RegisterRoutes(r chi.Router, svc *Service, catSvc *cats.Service, log logger.Logger) {
	r.Get(cats.AdoptionDashboardURL, adoptionsHandler(svc, catSvc, log))
	r.Get(fostercare.FosterDashboardURL, fosterHandler(svc, log))
	r.Get(adoptions.AdoptedDashboardURL, adoptedHandler(svc, log))
}

type countsResponse struct {
	AguardandoAdocao int64 `json:"aguardando_adocao"`
	LarTemporario    int64 `json:"lar_temporario"`
	Adotados         int64 `json:"adotados"`
}

type adoptionsResponse struct {
	Contadores countsResponse     `json:"contadores"`
	Gatos      []cats.CatResponse `json:"gatos"`
	Nome       string             `json:"nome"`
	Sexo       string             `json:"sexo"`
	Mensagens  []web.Flash        `json:"mensagens"`
}

type fosterResponse struct {
	Contadores countsResponse                 `json:"contadores"`
	Atuais     []fostercare.PlacementResponse `json:"lares_atuais"`
	Historico  []fostercare.HistoryResponse   `json:"historico"`
	Mensagens  []web.Flash                    `json:"mensagens"`
}

type adoptedResponse struct {
	Contadores countsResponse              `json:"contadores"`
	Adotados   []adoptions.AdoptedResponse `json:"adotados"`
	Mensagens  []web.Flash                 `json:"mensagens"`
}

// adoptionsHandler godoc
// @Summary      Painel: gatos para adoção
// @Tags         dashboard
// @Produce      json
// @Param        nome  query  string  false  "Filtro por nome"
// @Param        sexo  query  string  false  "M ou F"
// @Success      200  {object}  adoptionsResponse
// @Router       /admin/dashboard/adocoes [get]
func adoptionsHandler(svc *Service, catSvc *cats.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name, sex := q.Get("nome"), q.Get("sexo")

		view, err := svc.Adoptions(r.Context(), name, sex)
		if err != nil {
			log.Error("dashboard adoptions failed", map[string]any{"err": err})
			if view.Cats == nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		gatos := make([]cats.CatResponse, 0, len(view.Cats))
		for _, c := range view.Cats {
			gatos = append(gatos, cats.ToCatResponse(catSvc, c))
		}

		web.WriteJSON(w, http.StatusOK, adoptionsResponse{
			Contadores: toCountsResponse(view.Counts),
			Gatos:      gatos,
			Nome:       name,
			Sexo:       sex,
			Mensagens:  web.PopFlashes(w, r),
		})
	}
}

// fosterHandler godoc
// @Summary      Painel: lares temporários atuais e histórico
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  fosterResponse
// @Router       /admin/dashboard/lares-temporarios [get]
func fosterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Foster(r.Context())
		if err != nil {
			log.Error("dashboard foster failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusOK, fosterResponse{
			Contadores: toCountsResponse(view.Counts),
			Atuais:     fostercare.ToPlacementResponses(view.Placements),
			Historico:  fostercare.ToHistoryResponses(view.History),
			Mensagens:  web.PopFlashes(w, r),
		})
	}
}

// adoptedHandler godoc
// @Summary      Painel: gatos adotados
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  adoptedResponse
// @Router       /admin/dashboard/adotados [get]
func adoptedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Adopted(r.Context())
		if err != nil {
			log.Error("dashboard adopted failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusOK, adoptedResponse{
			Contadores: toCountsResponse(view.Counts),
			Adotados:   adoptions.ToAdoptedResponses(view.Adopted),
			Mensagens:  web.PopFlashes(w, r),
		})
	}
}

func toCountsResponse(c Counts) countsResponse {
	return countsResponse{
		AguardandoAdocao: c.AwaitingAdoption,
		LarTemporario:    c.InFoster,
		Adotados:         c.Adopted,
	}
}
