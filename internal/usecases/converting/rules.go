package converting

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CategoryMixed = "MIXTA"
	CategoryCapex = "CAPEX"
	CategoryOpex  = "OPEX"

	CapexTypeMixed = "MIXTA"
	CapexTypeExt   = "EXT"
	CapexTypeOrd   = "ORD"
	CapexTypeNone  = "N/A"
)

// amountUSD converte o valor para dólar quando a moeda da linha é a moeda local
func amountUSD(amount decimal.Decimal, currency, localCurrency string, dollarRate decimal.Decimal) decimal.Decimal {
	if !isCurrency(currency, localCurrency) {
		return amount
	}
	if dollarRate.IsZero() {
		return decimal.Zero
	}
	return amount.Div(dollarRate)
}

// splitCapexOpex distribui o valor em dólar entre CAPEX e OPEX na proporção EXT+ORD / CADM
func splitCapexOpex(usd, ext, ord, cadm decimal.Decimal) (capex, opex decimal.Decimal) {
	capexBase := ext.Add(ord)
	if capexBase.IsZero() {
		return decimal.Zero, usd
	}

	total := capexBase.Add(cadm)
	if total.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	return capexBase.Div(total).Mul(usd), cadm.Div(total).Mul(usd)
}

func category(capex, opex decimal.Decimal) string {
	switch {
	case !capex.IsZero() && !opex.IsZero():
		return CategoryMixed
	case !capex.IsZero():
		return CategoryCapex
	default:
		return CategoryOpex
	}
}

func capexType(ext, ord decimal.Decimal) string {
	switch {
	case !ext.IsZero() && !ord.IsZero():
		return CapexTypeMixed
	case !ext.IsZero():
		return CapexTypeExt
	case !ord.IsZero():
		return CapexTypeOrd
	default:
		return CapexTypeNone
	}
}

// splitOrdExt reparte o CAPEX a pagar entre ORD e EXT conforme o tipo
func splitOrdExt(kind string, capex, ext, ord decimal.Decimal) (amountOrd, amountExt decimal.Decimal) {
	switch kind {
	case CapexTypeOrd:
		return capex, decimal.Zero
	case CapexTypeExt:
		return decimal.Zero, capex
	case CapexTypeMixed:
		total := ext.Add(ord)
		if total.IsZero() {
			return decimal.Zero, decimal.Zero
		}
		return capex.Mul(ord).Div(total), capex.Mul(ext).Div(total)
	default:
		return decimal.Zero, decimal.Zero
	}
}

func isCurrency(value, currency string) bool {
	return currency != "" && strings.EqualFold(strings.TrimSpace(value), currency)
}
