package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_CollectsFirstMessagePerField(t *testing.T) {
	e := Errors{}
	e.Required("nome", " ")
	e.Add("nome", "segunda mensagem")
	e.Email("email", "not-an-email")
	e.Phone("numero_contato", "(11) 9999-999")

	err := e.Err()
	assert.Error(t, err)
	assert.Equal(t, "Este campo é obrigatório.", e["nome"])
	assert.Contains(t, e, "email")
	assert.Equal(t, "Número de contato inválido. Informe DDD + número.", e["numero_contato"])

	var verrs Errors
	assert.True(t, errors.As(err, &verrs))
}

func TestErrors_EmptyIsNil(t *testing.T) {
	e := Errors{}
	e.Required("nome", "Mimi")
	e.Email("email", "ana@example.com")
	e.Phone("numero_contato", "(11) 98888-7777")
	e.MaxLen("descricao", "curta", 10)
	assert.NoError(t, e.Err())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11988887777", Digits("(11) 98888-7777"))
	// Dígitos arábico-índicos y de ancho completo no cuentan.
	assert.Equal(t, "12", Digits("\u0661\u0662 1\uff112"))

	e := Errors{}
	e.Phone("numero_contato", "\u0661\u0661\u0669\u0668\u0668\u0668\u0668\u0667\u0667\u0667\u0667")
	assert.Contains(t, e, "numero_contato")
}
