package domain

import "github.com/shopspring/decimal"

// RatesResponse é o corpo devolvido pelo serviço de taxas
type RatesResponse struct {
	Datos []RateItem `json:"datos"`
}

type RateItem struct {
	FechaVigencia   string          `json:"fecha_vigencia"`
	TasaBCV         decimal.Decimal `json:"tasa_bcv"`
	TasaFarmatodo   decimal.Decimal `json:"tasa_farmatodo"`
	TasaReferencial decimal.Decimal `json:"tasa_referencial"`
}
