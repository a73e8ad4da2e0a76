package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/validate"
)

type sampleForm struct {
	Nome      string     `json:"nome"`
	Idade     int        `json:"idade"`
	MoraCasa  bool       `json:"mora_casa"`
	Quintal   *bool      `json:"casa_quintal"`
	Inicio    dates.Date `json:"data_inicio"`
	NaoExiste string     `json:"-"`
}

func TestDecode_Form(t *testing.T) {
	form := url.Values{
		"nome":         {"Ana"},
		"idade":        {"31"},
		"mora_casa":    {"on"},
		"casa_quintal": {"sim"},
		"data_inicio":  {"2024-01-01"},
		"csrf":         {"ignored"},
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got sampleForm
	require.NoError(t, Decode(r, &got))
	assert.Equal(t, "Ana", got.Nome)
	assert.Equal(t, 31, got.Idade)
	assert.True(t, got.MoraCasa)
	require.NotNil(t, got.Quintal)
	assert.True(t, *got.Quintal)
	assert.Equal(t, "2024-01-01", got.Inicio.Format(dates.Layout))
}

func TestDecode_JSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana","mora_casa":true}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	var got sampleForm
	require.NoError(t, Decode(r, &got))
	assert.Equal(t, "Ana", got.Nome)
	assert.True(t, got.MoraCasa)
	assert.Nil(t, got.Quintal)
}

func TestDecode_BadJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	r.Header.Set("Content-Type", "application/json")

	var got sampleForm
	assert.ErrorIs(t, Decode(r, &got), ErrBadRequest)
}

func TestDecode_BodyTooLarge(t *testing.T) {
	cases := map[string]string{
		"application/json":                  `{"nome":"` + strings.Repeat("a", 64) + `"}`,
		"application/x-www-form-urlencoded": "nome=" + strings.Repeat("a", 64),
	}
	for ct, body := range cases {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Content-Type", ct)
		r.Body = http.MaxBytesReader(rec, r.Body, 16)

		var got sampleForm
		err := Decode(r, &got)
		require.ErrorIs(t, err, ErrBodyTooLarge, ct)
		assert.NotErrorIs(t, err, ErrBadRequest, ct)

		WriteDecodeError(rec, err)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, ct)
	}

	rec := httptest.NewRecorder()
	WriteDecodeError(rec, ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlash_AddThenPop(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	AddFlash(w, r, FlashWarning, "O gato Mimi já foi adotado!")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	msgs := PopFlashes(w2, r2)
	require.Len(t, msgs, 1)
	assert.Equal(t, FlashWarning, msgs[0].Level)
	assert.Equal(t, "O gato Mimi já foi adotado!", msgs[0].Text)

	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestWriteValidation(t *testing.T) {
	w := httptest.NewRecorder()
	WriteValidation(w, validate.Errors{"nome": "Este campo é obrigatório."})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{
		"status":"erro",
		"mensagem":"Há campos incorretos ou faltando. Confira as informações.",
		"erros":{"nome":"Este campo é obrigatório."}
	}`, w.Body.String())
}

func TestIsAJAX(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.False(t, IsAJAX(r))
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	assert.True(t, IsAJAX(r))
}
