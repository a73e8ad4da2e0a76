package photos

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

// RegisterAdminRoutes registra la subida de fotos del panel.
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/admin/fotos", uploadHandler(svc, log))
}

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadHandler godoc
// @Summary      Sube una foto
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        foto  formData  file  true  "Imagen"
// @Success      201  {object}  uploadResponse
// @Failure      413  {object}  web.StatusResponse
// @Failure      422  {object}  web.StatusResponse
// @Router       /admin/fotos [post]
func uploadHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			if web.IsBodyTooLarge(err) {
				web.WriteDecodeError(w, err)
				return
			}
			web.WriteStatus(w, http.StatusBadRequest, web.StatusError, "Envie a imagem no campo foto.")
			return
		}

		url, ok, err := svc.FromRequest(r, "foto")
		switch {
		case errors.Is(err, ErrInvalidPhoto), errors.Is(err, ErrTooLarge):
			web.WriteStatus(w, http.StatusUnprocessableEntity, web.StatusError, err.Error())
			return
		case err != nil:
			log.Error("photo upload failed", map[string]any{"err": err})
			web.WriteStatus(w, http.StatusInternalServerError, web.StatusError, "Erro ao salvar a imagem.")
			return
		case !ok:
			web.WriteStatus(w, http.StatusBadRequest, web.StatusError, "Envie a imagem no campo foto.")
			return
		}

		web.WriteJSON(w, http.StatusCreated, uploadResponse{URL: url})
	}
}
