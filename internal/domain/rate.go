// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateEntry representa as duas taxas de câmbio vigentes em uma data para um país
type RateEntry struct {
	Date            time.Time       `json:"date"`
	Country         string          `json:"country"`
	FeedRate        decimal.Decimal `json:"feed_rate"`
	CentralBankRate decimal.Decimal `json:"central_bank_rate"`
}

// FeedRate é um registro do feed externo de taxas
type FeedRate struct {
	Date            time.Time       `json:"fecha_vigencia"`
	FeedRate        decimal.Decimal `json:"tasa_farmatodo"`
	CentralBankRate decimal.Decimal `json:"tasa_bcv"`
	ReferenceRate   decimal.Decimal `json:"tasa_referencial"`
}

// CentralBankRate é uma linha da tabela de taxas do banco central no warehouse
type CentralBankRate struct {
	Date time.Time       `json:"date"`
	USD  decimal.Decimal `json:"usd"`
}

// DateKey normaliza uma data para a chave usada nos caches (YYYY-MM-DD)
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
