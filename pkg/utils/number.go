package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// RoundMoney arredonda valores monetários para duas casas (half away from zero)
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(moneyPlaces)
}

// ParseDecimal aceita 1234.56, 1,234.56, 1.234,56, 1234,56 e valores com símbolo de moeda.
// Célula vazia vale zero.
//
// Ponto único é sempre decimal, como no valor bruto da célula
// (36.500 vale 36.5). Vírgula única seguida de exatamente três dígitos é
// separador de milhar (36,500 vale 36500); com outra quantidade de dígitos,
// ou depois de "0", é decimal.
func ParseDecimal(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	s = strings.NewReplacer("$", "", "€", "", "Bs.", "", "Bs", "", " ", "", "\u00a0", "").Replace(s)
	if s == "" || s == "-" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 || len(s)-lastComma-1 == 3 && !strings.HasPrefix(s, "0,") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número inválido: %q", value)
	}
	if negative {
		d = d.Neg()
	}

	return d, nil
}
