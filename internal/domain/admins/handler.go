package admins

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

const (
	SessionCookie = "sessionid"
	LoginURL      = "/login"
	// Destino por defecto después del login.
	HomeURL = "/admin/dashboard/adocoes"
)

// CookieOptions ajusta la cookie de sesión (Secure en producción).
type CookieOptions struct {
	Secure bool
}

// RegisterRoutes: login y logout del equipo.
// El rate limit de POST /login lo aplica el router.
func RegisterRoutes(r chi.Router, svc *Service, opts CookieOptions, log logger.Logger) {
	r.Get("/login", loginPageHandler())
	r.Post("/login", loginHandler(svc, opts, log))
	r.Post("/logout", logoutHandler(svc, opts, log))
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Next  string `json:"next"`
}

type loginPageResponse struct {
	Next      string      `json:"next"`
	Mensagens []web.Flash `json:"mensagens"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
	Usuario  string `json:"usuario"`
	Next     string `json:"next"`
}

// loginPageHandler godoc
// @Summary      Dados da página de login
// @Tags         auth
// @Produce      json
// @Param        next  query  string  false  "Destino após o login"
// @Success      200  {object}  loginPageResponse
// @Router       /login [get]
func loginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, loginPageResponse{
			Next:      safeNext(r.URL.Query().Get("next")),
			Mensagens: web.PopFlashes(w, r),
		})
	}
}

// loginHandler godoc
// @Summary      Login do administrador (e-mail ou usuário)
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Success      303
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  web.StatusResponse
// @Router       /login [post]
func loginHandler(svc *Service, opts CookieOptions, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := web.Decode(r, &req); err != nil {
			web.WriteDecodeError(w, err)
			return
		}
		next := safeNext(req.Next)
		if next == "" {
			next = safeNext(r.URL.Query().Get("next"))
		}
		if next == "" {
			next = HomeURL
		}

		sess, a, err := svc.Login(r.Context(), req.Email, req.Senha)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				log.Warn("login failed", map[string]any{"login": req.Email})
				web.Outcome(w, r, http.StatusUnauthorized, web.FlashError,
					"E-mail ou senha inválidos.", LoginURL+"?next="+url.QueryEscape(next))
				return
			}
			log.Error("login error", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		log.Info("admin logged in", map[string]any{"admin_id": a.ID})

		if web.IsAJAX(r) {
			web.WriteJSON(w, http.StatusOK, loginResponse{
				Status:   web.StatusOK,
				Mensagem: "Login realizado com sucesso!",
				Usuario:  a.Username,
				Next:     next,
			})
			return
		}
		web.Redirect(w, r, next)
	}
}

// logoutHandler godoc
// @Summary      Encerra a sessão
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func logoutHandler(svc *Service, opts CookieOptions, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(SessionCookie); err == nil {
			if err := svc.Logout(r.Context(), c.Value); err != nil {
				log.Error("logout failed", map[string]any{"err": err})
			}
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		web.Outcome(w, r, http.StatusOK, web.FlashSuccess, "Sessão encerrada.", LoginURL)
	}
}

// safeNext solo acepta rutas locales ("/admin/..."), nunca URLs absolutas.
// Los navegadores descartan tabs y saltos de línea: "/\t/host" terminaría
// como "//host", por eso se rechaza cualquier espacio o carácter de control.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || strings.ContainsFunc(next, unsafeRune) || strings.Contains(next, `\`) {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return ""
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func unsafeRune(r rune) bool {
	return r <= ' ' || r == 0x7f || unicode.IsSpace(r) || unicode.IsControl(r)
}
