package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/validate"
)

const (
	StatusOK    = "ok"
	StatusError = "erro"
)

// StatusResponse es la respuesta de las acciones AJAX (popups de confirmación).
type StatusResponse struct {
	Status   string            `json:"status"`
	Mensagem string            `json:"mensagem"`
	Erros    map[string]string `json:"erros,omitempty"`
}

// WriteJSON escribe v como JSON con el status dado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteStatus(w http.ResponseWriter, code int, status, msg string) {
	WriteJSON(w, code, StatusResponse{Status: status, Mensagem: msg})
}

// WriteValidation responde 422 con los errores por campo.
func WriteValidation(w http.ResponseWriter, err error) {
	resp := StatusResponse{
		Status:   StatusError,
		Mensagem: "Há campos incorretos ou faltando. Confira as informações.",
	}
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		resp.Erros = verrs
	}
	WriteJSON(w, http.StatusUnprocessableEntity, resp)
}

// Redirect usa 303 para que el navegador siga con GET.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// IsAJAX detecta llamadas hechas por fetch/XHR desde el panel o clientes JSON.
func IsAJAX(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest") {
		return true
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Outcome cierra una acción de formulario: JSON para clientes AJAX,
// mensaje flash + redirect 303 para navegación normal.
func Outcome(w http.ResponseWriter, r *http.Request, code int, level FlashLevel, msg, redirectURL string) {
	if IsAJAX(r) {
		status := StatusOK
		if level != FlashSuccess {
			status = StatusError
		}
		WriteStatus(w, code, status, msg)
		return
	}
	AddFlash(w, r, level, msg)
	Redirect(w, r, redirectURL)
}
