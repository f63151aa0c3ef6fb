package reporting

import (
	"time"

	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/closing"
	"github.com/vfg2006/capex-consolidado/internal/usecases/converting"
	"github.com/vfg2006/capex-consolidado/internal/usecases/normalizing"
	"github.com/vfg2006/capex-consolidado/internal/usecases/templating"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

// BuildInput é tudo o que a consolidação precisa, já carregado em memória
type BuildInput struct {
	Profile       *config.CountryProfile
	ReferenceDate time.Time
	Sheet         domain.RawSheet
	Rates         converting.RateLookup
	// History são as linhas já persistidas do ano fiscal
	History  []domain.DetailRow
	Template []byte
}

type BuildOutput struct {
	FiscalYear string
	// Rows são as linhas do BOSQUETO já calculadas, na ordem de entrada
	Rows []domain.DetailRow
	// Detail é o histórico do ano fiscal seguido das linhas novas
	Detail []domain.DetailRow
	// Repeated conta as linhas descartadas por repetirem uma fatura do lote
	Repeated    int
	Close       domain.ClosePeriod
	Differences []domain.DifferenceEntry
	Workbook    []byte
}

// Build executa normalização, cálculo, decisão de fechamento e escrita do template.
// Qualquer erro interrompe a execução sem produzir artefato parcial.
func Build(in BuildInput) (*BuildOutput, error) {
	profile := in.Profile
	friday := utils.LastWeekFriday(in.ReferenceDate)
	fiscalYear := converting.FiscalYear(friday)

	normalized, err := normalizing.Normalize(in.Sheet, profile)
	if err != nil {
		return nil, err
	}
	// Repetições da mesma fatura no lote não podem somar duas vezes no acumulado do mês
	unique := dedupByID(normalized)
	repeated := len(normalized) - len(unique)
	normalized = unique

	current := make(map[string]bool, len(normalized))
	for _, row := range normalized {
		current[row.ID] = true
	}

	// Linhas do próprio lote que já estão no histórico não entram no acumulado,
	// assim reprocessar o mesmo arquivo dá o mesmo resultado
	var previous []domain.DetailRow
	for _, row := range in.History {
		if !current[row.ID] {
			previous = append(previous, row)
		}
	}

	rows, err := converting.Enrich(normalized, in.Rates, converting.MonthToDate(previous, fiscalYear), converting.CalcContext{
		ReferenceDate: in.ReferenceDate,
		Profile:       profile,
	})
	if err != nil {
		return nil, err
	}

	detail := make([]domain.DetailRow, 0, len(previous)+len(rows))
	detail = append(detail, previous...)
	detail = append(detail, rows...)

	layout := profile.Template
	period := closing.Decide(in.ReferenceDate, layout)

	var (
		rolled      []domain.BudgetRow
		differences []domain.DifferenceEntry
	)
	if period.IsCloseWeek {
		budget, err := templating.ReadBudgetRows(in.Template, layout.Rollover)
		if err != nil {
			return nil, err
		}
		rolled, err = closing.Rollover(budget, layout.Rollover)
		if err != nil {
			return nil, err
		}
		differences = closing.Snapshot(rolled, layout.Rollover, profile.Key, fiscalYear, period.Titles.Previous, in.ReferenceDate)
	}

	write := templating.WriteInput{
		Layout:       layout,
		DetailRows:   detail,
		BosquetoRows: rows,
		Titles:       period.Cells,
		Rollover:     rolled,
	}
	if layout.PaidByReceipt != nil {
		summary := templating.SummarizePaidByReceipt(detail, converting.PaymentMonthName(friday))
		write.PaidByReceipt = &summary
	}

	workbook, err := templating.Write(in.Template, write)
	if err != nil {
		return nil, err
	}

	return &BuildOutput{
		FiscalYear:  fiscalYear,
		Rows:        rows,
		Detail:      detail,
		Repeated:    repeated,
		Close:       period,
		Differences: differences,
		Workbook:    workbook,
	}, nil
}

// dedupByID mantém a primeira ocorrência de cada linha do lote
func dedupByID(rows []domain.DetailRow) []domain.DetailRow {
	seen := make(map[string]bool, len(rows))
	unique := make([]domain.DetailRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		unique = append(unique, row)
	}
	return unique
}
