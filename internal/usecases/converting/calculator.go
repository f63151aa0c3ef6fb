// Package converting calcula as colunas derivadas do detalhe de pagamentos
package converting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

// RateLookup devolve as taxas vigentes numa data exata
type RateLookup interface {
	Lookup(date time.Time) (domain.RateEntry, error)
}

// PriorAggregate é o REAL CONVERTIDO já acumulado no mês de pagamento, indexado por MES DE PAGO
type PriorAggregate map[string]decimal.Decimal

type CalcContext struct {
	ReferenceDate time.Time
	Profile       *config.CountryProfile
}

// Enrich calcula as colunas derivadas de cada linha, na ordem de entrada.
// Não altera as linhas recebidas; valores monetários são arredondados só no final.
func Enrich(rows []domain.DetailRow, rates RateLookup, prior PriorAggregate, calc CalcContext) ([]domain.DetailRow, error) {
	profile := calc.Profile
	friday := utils.LastWeekFriday(calc.ReferenceDate)
	reportWeek := ReportWeek(calc.ReferenceDate)

	var dollarRate *decimal.Decimal
	running := make(map[string]decimal.Decimal)

	enriched := make([]domain.DetailRow, len(rows))
	for i, row := range rows {
		rateDate := friday
		week := reportWeek
		if row.PaymentDate != nil {
			rateDate = utils.DateOnly(*row.PaymentDate)
			week = WeekOfMonth(rateDate)
		}

		entry, err := rates.Lookup(rateDate)
		if err != nil {
			return nil, missingRate(row, rateDate, profile.Key, err)
		}

		if dollarRate == nil && isCurrency(row.Currency, profile.LocalCurrency) {
			fridayEntry, err := rates.Lookup(friday)
			if err != nil {
				return nil, missingRate(row, friday, profile.Key, err)
			}
			dollarRate = &fridayEntry.CentralBankRate
		}
		var usdRate decimal.Decimal
		if dollarRate != nil {
			usdRate = *dollarRate
		}

		usd := amountUSD(row.Amount, row.Currency, profile.LocalCurrency, usdRate)
		capex, opex := splitCapexOpex(usd, row.CapexExt, row.CapexOrd, row.Cadm)
		kind := capexType(row.CapexExt, row.CapexOrd)
		amountOrd, amountExt := splitOrdExt(kind, capex, row.CapexExt, row.CapexOrd)

		paymentCurrency := config.Resolve(profile.Payment.Currency, row.Priority, profile.Payment.DefaultCurrency)
		foreign := isCurrency(paymentCurrency, profile.ConversionCurrency)

		conversionVES := capex
		if foreign {
			conversionVES = capex.Mul(entry.CentralBankRate)
		}
		realReconverted := capex
		if foreign {
			realReconverted = decimal.Zero
			if !entry.FeedRate.IsZero() {
				realReconverted = conversionVES.Div(entry.FeedRate)
			}
		}

		month := PaymentMonthName(rateDate)
		running[month] = running[month].Add(realReconverted)

		paymentDate := rateDate
		row.PaymentDate = &paymentDate
		row.AmountUSD = utils.RoundMoney(usd)
		row.AmountCapex = utils.RoundMoney(capex)
		row.AmountOpex = utils.RoundMoney(opex)
		row.Validation = utils.RoundMoney(usd.Sub(capex).Sub(opex))
		row.Category = category(capex, opex)
		row.PaymentCurrency = paymentCurrency
		row.PaymentMethodCalc = config.Resolve(profile.Payment.Method, row.Priority, profile.Payment.DefaultMethod)
		row.PaymentDay = config.Resolve(profile.Payment.DayRules, row.Priority, profile.Payment.DefaultDay)
		row.CapexType = kind
		row.AmountOrd = utils.RoundMoney(amountOrd)
		row.AmountExt = utils.RoundMoney(amountExt)
		row.FeedRate = entry.FeedRate
		row.CentralBankRate = entry.CentralBankRate
		row.ConversionVES = utils.RoundMoney(conversionVES)
		row.ConversionFeedRate = utils.RoundMoney(capex.Mul(entry.FeedRate))
		row.RealReconverted = utils.RoundMoney(realReconverted)
		row.RealMonthReconverted = utils.RoundMoney(prior[month].Add(running[month]))
		row.Week = week
		row.PaymentMonth = month
		row.FiscalYear = FiscalYear(rateDate)

		enriched[i] = row
	}

	return enriched, nil
}

// MonthToDate soma o REAL CONVERTIDO do histórico por mês de pagamento
func MonthToDate(history []domain.DetailRow, fiscalYear string) PriorAggregate {
	prior := make(PriorAggregate)
	for _, row := range history {
		if fiscalYear != "" && row.FiscalYear != fiscalYear {
			continue
		}
		prior[row.PaymentMonth] = prior[row.PaymentMonth].Add(row.RealReconverted)
	}
	return prior
}

func missingRate(row domain.DetailRow, date time.Time, country string, err error) error {
	return &MissingRateError{
		Row:     row.SourceRow,
		Invoice: row.InvoiceNumber,
		Date:    date,
		Country: country,
		Err:     err,
	}
}
