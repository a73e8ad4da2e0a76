package validate

import (
	"net/mail"
	"sort"
	"strings"
)

// Errors acumula mensajes por campo (nombre del campo tal como llega en el formulario).
type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = msg
}

// Required registra un error si value está vacío.
func (e Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "Este campo é obrigatório.")
	}
}

func (e Errors) MaxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		e.Add(field, "Texto muito longo.")
	}
}

func (e Errors) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.Required(field, value)
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		e.Add(field, "Informe um endereço de e-mail válido.")
	}
}

// Phone exige DDD + número (al menos 10 dígitos).
func (e Errors) Phone(field, value string) {
	if len(Digits(value)) < 10 {
		e.Add(field, "Número de contato inválido. Informe DDD + número.")
	}
}

func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Digits conserva solo los dígitos ASCII de s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
