package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookie guarda los mensajes pendientes (JSON en base64).
const FlashCookie = "mensagens"

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashWarning FlashLevel = "warning"
	FlashError   FlashLevel = "error"
)

// Flash es un mensaje de un solo uso que se muestra en la próxima página.
type Flash struct {
	Level FlashLevel `json:"nivel"`
	Text  string     `json:"texto"`
}

// AddFlash agrega un mensaje a los pendientes del cliente.
func AddFlash(w http.ResponseWriter, r *http.Request, level FlashLevel, text string) {
	msgs := append(readFlashes(r), Flash{Level: level, Text: text})
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes devuelve los mensajes pendientes y los borra.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	msgs := readFlashes(r)
	if len(msgs) > 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     FlashCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
	return msgs
}

func readFlashes(r *http.Request) []Flash {
	c, err := r.Cookie(FlashCookie)
	if err != nil || c.Value == "" {
		return []Flash{}
	}
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return []Flash{}
	}
	var msgs []Flash
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return []Flash{}
	}
	return msgs
}
