package cats

import (
	"strings"
	"time"
)

// Sex define el sexo del gato.
// @Enum M, F
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ParseSex acepta "M"/"F" y también "macho"/"fêmea" (filtro del catálogo de lares).
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "macho":
		return SexMale, true
	case "f", "fêmea", "femea":
		return SexFemale, true
	default:
		return "", false
	}
}

func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Macho"
	case SexFemale:
		return "Fêmea"
	default:
		return ""
	}
}

// Care: situación sanitaria.
type Care struct {
	Neutered     bool `json:"castrado"`
	Vaccinated   bool `json:"vacinado"`
	Dewormed     bool `json:"vermifugado"`
	SpecialCare  bool `json:"cuidado_especial"`
	FIVNegative  bool `json:"fiv_negativo"`
	FIVPositive  bool `json:"fiv_positivo"`
	FeLVNegative bool `json:"felv_negativo"`
	FeLVPositive bool `json:"felv_positivo"`
}

func (c Care) Labels() []string {
	return labels(
		flag{c.Neutered, "Castrado"},
		flag{c.Vaccinated, "Vacinado"},
		flag{c.Dewormed, "Vermifugado"},
		flag{c.SpecialCare, "Cuidado especial"},
		flag{c.FIVNegative, "FIV-"},
		flag{c.FIVPositive, "FIV+"},
		flag{c.FeLVNegative, "FeLV-"},
		flag{c.FeLVPositive, "FeLV+"},
	)
}

type Temperament struct {
	Docile      bool `json:"docil"`
	Aggressive  bool `json:"agressivo"`
	Calm        bool `json:"calmo"`
	Playful     bool `json:"brincalhao"`
	Skittish    bool `json:"arisco"`
	Independent bool `json:"independente"`
	Needy       bool `json:"carente"`
}

func (t Temperament) Labels() []string {
	return labels(
		flag{t.Docile, "Dócil"},
		flag{t.Aggressive, "Agressivo"},
		flag{t.Calm, "Calmo"},
		flag{t.Playful, "Brincalhão"},
		flag{t.Skittish, "Arisco"},
		flag{t.Independent, "Independente"},
		flag{t.Needy, "Carente"},
	)
}

type Sociability struct {
	Cats        bool `json:"gatos"`
	Strangers   bool `json:"desconhecidos"`
	Dogs        bool `json:"cachorros"`
	Children    bool `json:"criancas"`
	NotSociable bool `json:"nao_sociavel"`
}

func (s Sociability) Labels() []string {
	return labels(
		flag{s.Cats, "Gatos"},
		flag{s.Strangers, "Desconhecidos"},
		flag{s.Dogs, "Cachorros"},
		flag{s.Children, "Crianças"},
		flag{s.NotSociable, "Não sociável"},
	)
}

type Housing struct {
	HouseWithYard bool `json:"casa_com_quintal"`
	Apartment     bool `json:"apartamento"`
}

func (h Housing) Labels() []string {
	return labels(
		flag{h.HouseWithYard, "Casa com quintal"},
		flag{h.Apartment, "Apartamento"},
	)
}

// Cat es el registro de un gato del abrigo.
type Cat struct {
	ID          uint
	Name        string
	Sex         Sex
	BirthDate   time.Time
	Description string
	Photo       string

	// NeedsFoster: marcado por el equipo cuando el gato precisa lar temporário.
	NeedsFoster bool
	// Adopted refleja la existencia de un registro de adopción.
	Adopted bool
	// InFoster es derivado: existe una colocación actual.
	InFoster bool

	Care        Care
	Temperament Temperament
	Sociability Sociability
	Housing     Housing

	CreatedAt time.Time
	UpdatedAt time.Time
}

type flag struct {
	on    bool
	label string
}

func labels(flags ...flag) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.on {
			out = append(out, f.label)
		}
	}
	return out
}
