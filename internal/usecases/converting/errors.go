package converting

import (
	"errors"
	"fmt"
	"time"
)

var ErrMissingRate = errors.New("linha sem taxa de câmbio")

// MissingRateError identifica a linha cuja data de pagamento não tem taxa resolvida
type MissingRateError struct {
	Row     int
	Invoice string
	Date    time.Time
	Country string
	Err     error
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("%s: linha %d, fatura %s, país %s, data %s: %v",
		ErrMissingRate.Error(), e.Row, e.Invoice, e.Country, e.Date.Format(time.DateOnly), e.Err)
}

// Unwrap expõe tanto o sentinel quanto o erro do resolvedor
func (e *MissingRateError) Unwrap() []error {
	return []error{ErrMissingRate, e.Err}
}
