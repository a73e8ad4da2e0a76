package fostercare

import (
	"strings"
	"time"
)

// Choice responde preguntas sim/não/parcialmente.
// @Enum sim, nao, parcialmente
type Choice string

const (
	ChoiceYes     Choice = "sim"
	ChoiceNo      Choice = "nao"
	ChoicePartial Choice = "parcialmente"
)

func (c Choice) Valid() bool {
	switch c {
	case ChoiceYes, ChoiceNo, ChoicePartial:
		return true
	}
	return false
}

// StructureLabel: "¿tiene estructura para recibir al animal?".
func (c Choice) StructureLabel() string {
	switch c {
	case ChoiceYes:
		return "Sim"
	case ChoiceNo:
		return "Não"
	case ChoicePartial:
		return "Parcialmente"
	}
	return "—"
}

// CostsLabel: "¿puede ayudar con los costos?".
func (c Choice) CostsLabel() string {
	switch c {
	case ChoiceYes:
		return "Posso ajudar com os custos"
	case ChoiceNo:
		return "Prefiro receber os suprimentos"
	case ChoicePartial:
		return "Posso ajudar parcialmente"
	}
	return "—"
}

// Duration es el tiempo aproximado que el lar puede quedarse con el gato.
// @Enum um, tres, seis, indefinido
type Duration string

const (
	DurationOneMonth   Duration = "um"
	DurationThreeMonth Duration = "tres"
	DurationSixMonth   Duration = "seis"
	DurationOpenEnded  Duration = "indefinido"
)

func (d Duration) Valid() bool {
	switch d {
	case DurationOneMonth, DurationThreeMonth, DurationSixMonth, DurationOpenEnded:
		return true
	}
	return false
}

func (d Duration) Label() string {
	switch d {
	case DurationOneMonth:
		return "Até 1 mês"
	case DurationThreeMonth:
		return "1-3 meses"
	case DurationSixMonth:
		return "3-6 meses"
	case DurationOpenEnded:
		return "Tempo indefinido"
	}
	return "—"
}

// Answers son las respuestas del formulario público de lar temporário.
type Answers struct {
	Name       string `json:"nome"`
	Email      string `json:"email"`
	Occupation string `json:"ocupacao_profissional"`
	CPF        string `json:"cpf"`
	Phone      string `json:"numero_contato"`

	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	CEP      string `json:"cep"`

	WasFosterBefore bool     `json:"foi_lar_temporario"`
	LivesInHouse    bool     `json:"mora_casa"`
	Restricted      bool     `json:"restrito"`
	Structure       Choice   `json:"estrutura"`
	Costs           Choice   `json:"custos"`
	Duration        Duration `json:"duracao_aproximada"`
	AllowsVisits    bool     `json:"visita"`

	OtherAnimals   string `json:"animal_externo"`
	AdditionalInfo string `json:"informacao_adicional"`
}

// Application es una solicitud de lar temporário; el gato es opcional.
type Application struct {
	ID      uint
	CatID   *uint
	CatName string
	Answers
	AvailableFrom time.Time

	CreatedAt time.Time
}

// Caregiver es la parte de la solicitud que muestran los dashboards.
type Caregiver struct {
	Name     string
	Email    string
	Phone    string
	Street   string
	Number   string
	District string
	City     string
	CEP      string
}

// Placement es el lar temporário actual de un gato (a lo sumo uno por gato).
type Placement struct {
	ID            uint
	CatID         uint
	CatName       string
	ApplicationID uint
	Caregiver     Caregiver
	StartDate     time.Time
}

// HistoryEntry es un lar temporário pasado; EndDate nil = abierto.
type HistoryEntry struct {
	ID            uint
	CatID         uint
	CatName       string
	ApplicationID uint
	Caregiver     Caregiver
	StartDate     time.Time
	EndDate       *time.Time
}

// Address compone "Rua, Número - Bairro, Cidade - CEP" omitiendo partes vacías.
func (c Caregiver) Address() string {
	join := func(sep string, parts ...string) string {
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return strings.Join(out, sep)
	}
	return join(" - ",
		join(", ", c.Street, c.Number),
		join(", ", c.District, c.City),
		c.CEP,
	)
}
