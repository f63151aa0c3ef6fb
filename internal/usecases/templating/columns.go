package templating

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// rowValues devolve a linha na ordem de domain.DetailColumns
func rowValues(row domain.DetailRow) []interface{} {
	return []interface{}{
		row.InvoiceNumber, row.PurchaseOrder, row.InvoiceType, row.BatchName,
		row.Provider, row.TaxID, dateValue(row.DocumentDate), row.Store, row.Branch,
		money(row.Amount), row.Currency, dateValue(row.DueDate), row.Account, row.AccountID,
		row.PaymentMethod, row.IndependentPayment, row.Priority,
		money(row.CapexExt), money(row.CapexOrd), money(row.Cadm),
		dateValue(row.CreatedDate), row.Requester,
		money(row.AmountUSD), row.Category, money(row.AmountCapex), row.PaymentCurrency, dateValue(row.PaymentDate), rate(row.FeedRate),
		rate(row.CentralBankRate), money(row.ConversionVES), money(row.ConversionFeedRate), money(row.RealReconverted), money(row.RealMonthReconverted),
		money(row.AmountOpex), money(row.Validation), row.PaymentMethodCalc, row.Week, row.PaymentMonth,
		row.CapexType, money(row.AmountOrd), money(row.AmountExt), row.PaymentDay,
		row.StoreLookup, row.CostCenter, row.Project, row.Area, row.ReceiptDate, row.Description,
		row.FiscalYear,
	}
}

func headerValues() []interface{} {
	headers := make([]interface{}, len(domain.DetailColumns))
	for i, col := range domain.DetailColumns {
		headers[i] = col
	}
	return headers
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func rate(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func dateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
