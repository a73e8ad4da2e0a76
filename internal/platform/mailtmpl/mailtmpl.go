// Package mailtmpl arma los cuerpos HTML de los avisos por e-mail.
// html/template escapa todo lo que el público escribe en los formularios.
package mailtmpl

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

const dash = "—"

// Funcs son los helpers disponibles en todas las plantillas.
var Funcs = template.FuncMap{
	"simNao": SimNao,
	"yesNo":  YesNo,
	"orDash": OrDash,
}

// SimNao muestra una respuesta opcional: "Sim", "Não" o "—" si no hubo respuesta.
func SimNao(v *bool) string {
	if v == nil {
		return dash
	}
	return YesNo(*v)
}

func YesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dash
	}
	return s
}

// Parse carga una plantilla de fsys con los helpers registrados.
func Parse(fsys fs.FS, name string) (*template.Template, error) {
	t, err := template.New(name).Funcs(Funcs).ParseFS(fsys, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse mail template %s: %w", name, err)
	}
	return t, nil
}

// Render ejecuta t con data.
func Render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
