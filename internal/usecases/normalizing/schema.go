package normalizing

import (
	"strings"

	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

// RequiredColumns são as colunas sem as quais nenhuma linha é aceita
var RequiredColumns = []string{
	domain.ColInvoiceNumber,
	domain.ColProvider,
	domain.ColAmount,
	domain.ColCurrency,
	domain.ColPriority,
	domain.ColCapexExt,
	domain.ColCapexOrd,
	domain.ColCadm,
}

// columnIndex mapeia o cabeçalho canônico para a posição na planilha de entrada
type columnIndex map[string]int

func resolveColumns(headers []string, profile *config.CountryProfile) columnIndex {
	ignored := make(map[string]bool)
	for _, col := range profile.Payment.IgnoredColumns {
		ignored[utils.FoldText(col)] = true
	}

	positions := make(map[string]int, len(headers))
	for i, header := range headers {
		folded := utils.FoldText(header)
		if folded == "" || ignored[folded] {
			continue
		}
		if _, exists := positions[folded]; !exists {
			positions[folded] = i
		}
	}

	index := make(columnIndex, len(domain.DetailColumns))
	for _, canonical := range domain.DetailColumns {
		for _, candidate := range candidates(canonical, profile) {
			if pos, ok := positions[utils.FoldText(candidate)]; ok {
				index[canonical] = pos
				break
			}
		}
	}

	return index
}

func candidates(canonical string, profile *config.CountryProfile) []string {
	names := []string{canonical}
	if profile != nil {
		names = append(names, profile.HeaderAliases[canonical]...)
	}
	return names
}

func (c columnIndex) missing(required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := c[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func (c columnIndex) value(row []string, column string) (string, bool) {
	pos, ok := c[column]
	if !ok || pos >= len(row) {
		return "", ok
	}
	return strings.TrimSpace(row[pos]), true
}

// LocateHeader procura, nas primeiras linhas, a que contém ao menos duas colunas
// críticas e devolve a planilha com cabeçalho e linhas de dados separados.
// Planilhas que já têm cabeçalho são devolvidas sem alteração.
func LocateHeader(sheet domain.RawSheet, profile *config.CountryProfile) domain.RawSheet {
	if len(sheet.Headers) > 0 {
		return sheet
	}

	critical := make(map[string]bool)
	for _, col := range profile.Payment.CriticalColumns {
		for _, candidate := range candidates(col, profile) {
			critical[utils.FoldText(candidate)] = true
		}
	}

	depth := profile.Payment.HeaderSearchDepth
	if depth <= 0 {
		depth = 10
	}

	headerAt := -1
	firstNonEmpty := -1
	for i := 0; i < len(sheet.Rows) && i < depth; i++ {
		if firstNonEmpty < 0 && !isBlank(sheet.Rows[i]) {
			firstNonEmpty = i
		}
		matches := 0
		for _, cell := range sheet.Rows[i] {
			if critical[utils.FoldText(cell)] {
				matches++
			}
		}
		if matches >= 2 {
			headerAt = i
			break
		}
	}

	if headerAt < 0 {
		headerAt = firstNonEmpty
	}
	if headerAt < 0 {
		return domain.RawSheet{Name: sheet.Name}
	}

	headers := make([]string, len(sheet.Rows[headerAt]))
	for i, cell := range sheet.Rows[headerAt] {
		headers[i] = strings.TrimSpace(cell)
	}

	return domain.RawSheet{
		Name:      sheet.Name,
		Headers:   headers,
		Rows:      sheet.Rows[headerAt+1:],
		HeaderRow: sheet.HeaderRow + headerAt + 1,
	}
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
