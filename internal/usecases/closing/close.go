// Package closing decide o fechamento mensal e calcula o traspasse de Diferencia para Remanente
package closing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// IsCloseWeek é verdadeiro nos sete primeiros dias do mês
func IsCloseWeek(date time.Time) bool {
	return date.Day() >= 1 && date.Day() <= 7
}

// ComputeTitles devolve os rótulos Mes-YYYY do mês da data e do mês anterior
func ComputeTitles(date time.Time) domain.Titles {
	previousMonth, previousYear := date.Month()-1, date.Year()
	if date.Month() == time.January {
		previousMonth, previousYear = time.December, date.Year()-1
	}

	return domain.Titles{
		Current:  label(date.Month(), date.Year()),
		Previous: label(previousMonth, previousYear),
	}
}

func label(month time.Month, year int) string {
	return fmt.Sprintf("%s-%d", monthNames[month-1], year)
}

// RenderTitle substitui {current} e {previous} no formato da célula
func RenderTitle(format string, titles domain.Titles) string {
	return strings.NewReplacer("{current}", titles.Current, "{previous}", titles.Previous).Replace(format)
}

// Decide é função pura da data injetada; fora da semana de fechamento não há células de título
func Decide(date time.Time, layout config.TemplateLayout) domain.ClosePeriod {
	period := domain.ClosePeriod{
		ReferenceDate: date,
		IsCloseWeek:   IsCloseWeek(date),
		Titles:        ComputeTitles(date),
	}
	if !period.IsCloseWeek {
		return period
	}

	period.Cells = make([]domain.TitleValue, 0, len(layout.Titles))
	for _, title := range layout.Titles {
		period.Cells = append(period.Cells, domain.TitleValue{
			Sheet: title.Sheet,
			Cell:  title.Cell,
			Value: RenderTitle(title.Format, period.Titles),
		})
	}
	return period
}
