package cats

import (
	"fmt"
	"time"
)

// Age formatea la edad en pt-BR a partir de la fecha de nacimiento.
// Ej: "Menos de 1 mês", "3 meses", "1 ano", "2 anos e 1 mês".
func Age(birth, now time.Time) string {
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	if now.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	if years < 0 || (years == 0 && months == 0) {
		return "Menos de 1 mês"
	}
	if years == 0 {
		return monthsLabel(months)
	}

	y := "1 ano"
	if years > 1 {
		y = fmt.Sprintf("%d anos", years)
	}
	if months == 0 {
		return y
	}
	return y + " e " + monthsLabel(months)
}

func monthsLabel(n int) string {
	if n == 1 {
		return "1 mês"
	}
	return fmt.Sprintf("%d meses", n)
}
