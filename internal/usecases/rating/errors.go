package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MissingFeedRate        = "feed"
	MissingCentralBankRate = "central_bank"
)

var (
	ErrRateNotFound = errors.New("taxa de câmbio não encontrada")
	ErrRateSource   = errors.New("erro ao consultar fonte de taxas")
)

// RateNotFoundError identifica a data e o país sem taxa e quais taxas faltam
type RateNotFoundError struct {
	Date    time.Time
	Country string
	Missing []string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("%s: país %s, data %s (ausente: %s)",
		ErrRateNotFound.Error(), e.Country, e.Date.Format(time.DateOnly), strings.Join(e.Missing, ", "))
}

func (e *RateNotFoundError) Unwrap() error {
	return ErrRateNotFound
}
