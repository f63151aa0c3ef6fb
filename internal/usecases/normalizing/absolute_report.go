package normalizing

import (
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

const (
	noStore          = "SIN_TIENDA"
	noCostCenter     = "SIN_CECO"
	noProject        = "SIN_PROYECTO"
	noDescription    = "SIN_DESCRIPCION"
	noAbsoluteReport = "SIN_REPORTE_ABSOLUTO"
	noArea           = "AREA_NO_ENCONTRADA"
)

// Segmentos de conta contábil aceitos no reporte absoluto
var chargeAccountSegments = map[string]bool{"110425": true, "150199": true}

var projectPattern = regexp.MustCompile(`-([A-Z]\d{3})-`)

// LookupEntry reúne os campos que o reporte absoluto fornece para uma fatura
type LookupEntry struct {
	Invoice     string
	Store       string
	CostCenter  string
	Project     string
	ReceiptDate string
	Description string
}

// InvoiceLookup preserva a ordem de inserção para que a busca parcial seja determinística
type InvoiceLookup struct {
	order   []string
	entries map[string]LookupEntry
}

func (l *InvoiceLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

// Find faz busca exata e, se não encontrar, parcial (um número contém o outro)
func (l *InvoiceLookup) Find(invoice string) (LookupEntry, bool) {
	if l == nil {
		return LookupEntry{}, false
	}
	key := strings.TrimSpace(invoice)
	if key == "" {
		return LookupEntry{}, false
	}
	if entry, ok := l.entries[key]; ok {
		return entry, true
	}

	lower := strings.ToLower(key)
	for _, ref := range l.order {
		refLower := strings.ToLower(ref)
		if strings.Contains(refLower, lower) || strings.Contains(lower, refLower) {
			return l.entries[ref], true
		}
	}
	return LookupEntry{}, false
}

type absoluteColumns struct {
	lineType      int
	category      int
	chargeAccount int
	invoice       int
	store         int
	costCenter    int
	receiptDate   int
	description   int
}

func detectAbsoluteColumns(headers []string) absoluteColumns {
	cols := absoluteColumns{-1, -1, -1, -1, -1, -1, -1, -1}

	for i, header := range headers {
		h := utils.FoldText(header)
		switch {
		case strings.Contains(h, "tipo") && strings.Contains(h, "linea"):
			if cols.lineType < 0 {
				cols.lineType = i
			}
		case strings.Contains(h, "categoria") && strings.Contains(h, "compra"):
			if cols.category < 0 {
				cols.category = i
			}
		case strings.Contains(h, "cta") && strings.Contains(h, "cargo") && strings.Contains(h, "centro") && strings.Contains(h, "desc"):
			if cols.store < 0 {
				cols.store = i
			}
		case strings.Contains(h, "cta") && strings.Contains(h, "cargo") && strings.Contains(h, "centro"):
			if cols.costCenter < 0 {
				cols.costCenter = i
			}
		case strings.Contains(h, "cta") && strings.Contains(h, "cargo") && !strings.Contains(h, "desc"):
			if cols.chargeAccount < 0 {
				cols.chargeAccount = i
			}
		case strings.Contains(h, "factura") || strings.Contains(h, "n°"):
			if cols.invoice < 0 {
				cols.invoice = i
			}
		case strings.Contains(h, "fecha") && strings.Contains(h, "recepcion"):
			if cols.receiptDate < 0 {
				cols.receiptDate = i
			}
		case strings.Contains(h, "descripcion") || strings.Contains(h, "descipcion"):
			if cols.description < 0 {
				cols.description = i
			}
		}
	}

	return cols
}

func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[pos])
	if strings.EqualFold(v, "nan") || strings.EqualFold(v, "none") {
		return ""
	}
	return v
}

// NormalizeAbsoluteReport monta o lookup de faturas do reporte absoluto.
// Mantém só linhas de artigo com categoria CAPEX (ou vazia) e conta de cargo
// nos segmentos aceitos; sem data de recepção usa a sexta-feira anterior à referência.
func NormalizeAbsoluteReport(sheet domain.RawSheet, reference time.Time) (*InvoiceLookup, error) {
	headers := sheet.Headers
	rows := sheet.Rows
	if len(headers) == 0 && len(rows) > 0 {
		headers, rows = rows[0], rows[1:]
	}

	cols := detectAbsoluteColumns(headers)
	if cols.invoice < 0 {
		return nil, missingColumns(sheet.Name, []string{"Factura"})
	}

	fallbackReceipt := utils.LastWeekFriday(reference).Format(time.DateOnly)
	lookup := &InvoiceLookup{entries: make(map[string]LookupEntry)}
	filtered := 0

	for _, row := range rows {
		if cols.lineType >= 0 && utils.FoldText(cell(row, cols.lineType)) != "articulo" {
			filtered++
			continue
		}
		if cols.category >= 0 && !isCapexCategory(cell(row, cols.category)) {
			filtered++
			continue
		}
		if cols.chargeAccount >= 0 && !hasAcceptedSegment(cell(row, cols.chargeAccount)) {
			filtered++
			continue
		}

		invoice := cell(row, cols.invoice)
		if invoice == "" {
			continue
		}

		entry := LookupEntry{
			Invoice:     invoice,
			Store:       orDefault(cell(row, cols.store), noStore),
			CostCenter:  orDefault(cell(row, cols.costCenter), noCostCenter),
			Project:     extractProject(cell(row, cols.chargeAccount)),
			ReceiptDate: fallbackReceipt,
			Description: orDefault(cell(row, cols.description), noDescription),
		}
		if raw := cell(row, cols.receiptDate); raw != "" {
			if parsed, err := utils.ParseSheetDate(raw); err == nil && parsed != nil {
				entry.ReceiptDate = parsed.Format(time.DateOnly)
			} else {
				entry.ReceiptDate = raw
			}
		}

		if _, exists := lookup.entries[invoice]; !exists {
			lookup.order = append(lookup.order, invoice)
		}
		lookup.entries[invoice] = entry
	}

	logrus.WithFields(logrus.Fields{
		"sheet":    sheet.Name,
		"invoices": lookup.Len(),
		"filtered": filtered,
	}).Debug("normalize: reporte absoluto carregado")

	return lookup, nil
}

// ApplyLookup preenche os campos de lookup; sem reporte absoluto marca SIN_REPORTE_ABSOLUTO
// e faturas ausentes recebem FACTURA_NO_ENCONTRADA. Retorna quantas não foram encontradas.
func ApplyLookup(rows []domain.DetailRow, lookup *InvoiceLookup) int {
	notFound := 0
	for i := range rows {
		row := &rows[i]
		if row.Area == "" {
			row.Area = noArea
		}

		if lookup == nil {
			row.StoreLookup = noAbsoluteReport
			row.CostCenter = noAbsoluteReport
			row.Project = noAbsoluteReport
			row.ReceiptDate = noAbsoluteReport
			row.Description = noAbsoluteReport
			continue
		}

		entry, ok := lookup.Find(row.InvoiceNumber)
		if !ok {
			notFound++
			row.StoreLookup = domain.NotFoundMarker
			row.CostCenter = domain.NotFoundMarker
			row.Project = domain.NotFoundMarker
			row.ReceiptDate = domain.NotFoundMarker
			row.Description = domain.NotFoundMarker
			continue
		}

		row.StoreLookup = entry.Store
		row.CostCenter = entry.CostCenter
		row.Project = entry.Project
		row.ReceiptDate = entry.ReceiptDate
		row.Description = entry.Description
	}
	return notFound
}

func isCapexCategory(value string) bool {
	if value == "" {
		return true
	}
	base := strings.ToUpper(value)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSpace(base) == "CAPEX"
}

func hasAcceptedSegment(account string) bool {
	segments := strings.Split(account, "-")
	if len(segments) < 2 {
		return false
	}
	return chargeAccountSegments[strings.TrimSpace(segments[1])]
}

// extractProject lê o projeto nas posições 35-38 da conta de cargo ou pelo padrão -X999-
func extractProject(account string) string {
	if len(account) >= 39 {
		return account[34:38]
	}
	if m := projectPattern.FindStringSubmatch(account); m != nil {
		return m[1]
	}
	return noProject
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
