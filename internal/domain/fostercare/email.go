package fostercare

import (
	"embed"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/mailtmpl"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	emailOnce sync.Once
	emailTpl  *template.Template
	emailErr  error
)

type applicationView struct {
	Application
	AvailableFrom string
	CreatedAt     string
}

// ApplicationMessage arma el aviso de una nueva solicitud de lar temporário.
func ApplicationMessage(app Application, loc *time.Location) (notify.Message, error) {
	emailOnce.Do(func() {
		emailTpl, emailErr = mailtmpl.Parse(templatesFS, "application_email.html")
	})
	if emailErr != nil {
		return notify.Message{}, emailErr
	}
	if loc == nil {
		loc = time.UTC
	}

	html, err := mailtmpl.Render(emailTpl, applicationView{
		Application:   app,
		AvailableFrom: app.AvailableFrom.Format("02/01/2006"),
		CreatedAt:     app.CreatedAt.In(loc).Format("02/01/2006 15:04"),
	})
	if err != nil {
		return notify.Message{}, err
	}

	cat := "sem gato específico"
	if app.CatName != "" {
		cat = "para o gato " + app.CatName
	}
	return notify.Message{
		Subject: fmt.Sprintf("Nova solicitação de lar temporário: %s", app.Name),
		HTML:    html,
		Summary: fmt.Sprintf("🏠 Nova solicitação de lar temporário de %s, %s (%s, %s).",
			app.Name, cat, app.Email, app.Phone),
	}, nil
}
