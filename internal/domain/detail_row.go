package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cabeçalhos das colunas de entrada do relatório de pagamentos
const (
	ColInvoiceNumber      = "Numero de Factura"
	ColPurchaseOrder      = "Numero de OC"
	ColInvoiceType        = "Tipo Factura"
	ColBatchName          = "Nombre Lote"
	ColProvider           = "Proveedor"
	ColTaxID              = "RIF"
	ColDocumentDate       = "Fecha Documento"
	ColStore              = "Tienda"
	ColBranch             = "Sucursal"
	ColAmount             = "Monto"
	ColCurrency           = "Moneda"
	ColDueDate            = "Fecha Vencimiento"
	ColAccount            = "Cuenta"
	ColAccountID          = "Id Cta"
	ColPaymentMethod      = "Método de Pago"
	ColIndependentPayment = "Pago Independiente"
	ColPriority           = "Prioridad"
	ColCapexExt           = "Monto CAPEX EXT"
	ColCapexOrd           = "Monto CAPEX ORD"
	ColCadm               = "Monto CADM"
	ColCreatedDate        = "Fecha Creación"
	ColRequester          = "Solicitante"
)

// Cabeçalhos das colunas calculadas e de lookup
const (
	ColAmountUSD            = "Monto USD"
	ColCategory             = "CATEGORIA"
	ColAmountCapex          = "MONTO A PAGAR CAPEX"
	ColPaymentCurrency      = "MONEDA DE PAGO"
	ColPaymentDate          = "FECHA PAGO"
	ColFeedRate             = "TC FTD"
	ColCentralBankRate      = "TC BCV"
	ColConversionVES        = "CONVERSION VES"
	ColConversionFeedRate   = "CONVERSION TC FTD"
	ColRealReconverted      = "REAL CONVERTIDO"
	ColRealMonthReconverted = "REAL MES CONVERTIDO"
	ColAmountOpex           = "MONTO A PAGAR OPEX"
	ColValidation           = "VALIDACION"
	ColPaymentMethodCalc    = "METODO DE PAGO"
	ColWeek                 = "SEMANA"
	ColPaymentMonth         = "MES DE PAGO"
	ColCapexType            = "TIPO DE CAPEX"
	ColAmountOrd            = "MONTO ORD"
	ColAmountExt            = "MONTO EXT"
	ColPaymentDay           = "DIA DE PAGO"
	ColStoreLookup          = "TIENDA_LOOKUP"
	ColCostCenter           = "CECO"
	ColProject              = "PROYECTO"
	ColArea                 = "AREA"
	ColReceiptDate          = "FECHA RECIBO"
	ColDescription          = "DESCRIPCIÓN"
	ColFiscalYear           = "AÑO FISCAL"
)

// NotFoundMarker é usado nos campos de lookup quando a fatura não existe no reporte absoluto
const NotFoundMarker = "FACTURA_NO_ENCONTRADA"

// DetailColumns é a ordem canônica das colunas do BOSQUETO e do DETALLE CORREGIDO
var DetailColumns = []string{
	ColInvoiceNumber, ColPurchaseOrder, ColInvoiceType, ColBatchName,
	ColProvider, ColTaxID, ColDocumentDate, ColStore, ColBranch,
	ColAmount, ColCurrency, ColDueDate, ColAccount, ColAccountID,
	ColPaymentMethod, ColIndependentPayment, ColPriority,
	ColCapexExt, ColCapexOrd, ColCadm,
	ColCreatedDate, ColRequester,
	ColAmountUSD, ColCategory, ColAmountCapex, ColPaymentCurrency, ColPaymentDate, ColFeedRate,
	ColCentralBankRate, ColConversionVES, ColConversionFeedRate, ColRealReconverted, ColRealMonthReconverted,
	ColAmountOpex, ColValidation, ColPaymentMethodCalc, ColWeek, ColPaymentMonth,
	ColCapexType, ColAmountOrd, ColAmountExt, ColPaymentDay,
	ColStoreLookup, ColCostCenter, ColProject, ColArea, ColReceiptDate, ColDescription,
	ColFiscalYear,
}

// DetailRow é o registro canônico de uma linha de pagamento de fatura
type DetailRow struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	// SourceRow é o número da linha (base 1) na planilha de origem
	SourceRow int `json:"source_row"`

	InvoiceNumber      string          `json:"invoice_number"`
	PurchaseOrder      string          `json:"purchase_order"`
	InvoiceType        string          `json:"invoice_type"`
	BatchName          string          `json:"batch_name"`
	Provider           string          `json:"provider"`
	TaxID              string          `json:"tax_id"`
	DocumentDate       *time.Time      `json:"document_date"`
	Store              string          `json:"store"`
	Branch             string          `json:"branch"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	DueDate            *time.Time      `json:"due_date"`
	Account            string          `json:"account"`
	AccountID          string          `json:"account_id"`
	PaymentMethod      string          `json:"payment_method"`
	IndependentPayment string          `json:"independent_payment"`
	Priority           int             `json:"priority"`
	CapexExt           decimal.Decimal `json:"capex_ext"`
	CapexOrd           decimal.Decimal `json:"capex_ord"`
	Cadm               decimal.Decimal `json:"cadm"`
	CreatedDate        *time.Time      `json:"created_date"`
	Requester          string          `json:"requester"`
	PaymentDate        *time.Time      `json:"payment_date"`

	StoreLookup string `json:"store_lookup"`
	CostCenter  string `json:"cost_center"`
	Project     string `json:"project"`
	Area        string `json:"area"`
	ReceiptDate string `json:"receipt_date"`
	Description string `json:"description"`

	AmountUSD            decimal.Decimal `json:"amount_usd"`
	AmountCapex          decimal.Decimal `json:"amount_capex"`
	AmountOpex           decimal.Decimal `json:"amount_opex"`
	Validation           decimal.Decimal `json:"validation"`
	Category             string          `json:"category"`
	PaymentCurrency      string          `json:"payment_currency"`
	PaymentMethodCalc    string          `json:"payment_method_calc"`
	PaymentDay           string          `json:"payment_day"`
	CapexType            string          `json:"capex_type"`
	AmountOrd            decimal.Decimal `json:"amount_ord"`
	AmountExt            decimal.Decimal `json:"amount_ext"`
	FeedRate             decimal.Decimal `json:"feed_rate"`
	CentralBankRate      decimal.Decimal `json:"central_bank_rate"`
	ConversionVES        decimal.Decimal `json:"conversion_ves"`
	ConversionFeedRate   decimal.Decimal `json:"conversion_feed_rate"`
	RealReconverted      decimal.Decimal `json:"real_reconverted"`
	RealMonthReconverted decimal.Decimal `json:"real_month_reconverted"`
	Week                 int             `json:"week"`
	PaymentMonth         string          `json:"payment_month"`
	FiscalYear           string          `json:"fiscal_year"`
}

// UniqueID gera o identificador da linha: SHA256(numero da fatura + fornecedor)
func UniqueID(invoiceNumber, provider string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(invoiceNumber) + strings.TrimSpace(provider)))
	return hex.EncodeToString(sum[:])
}
