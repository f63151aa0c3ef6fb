package converting

import (
	"fmt"
	"time"

	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

var paymentMonths = [...]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// fiscalYearStart é o primeiro mês do ano fiscal (agosto a julho)
const fiscalYearStart = time.August

// WeekOfMonth conta semanas a partir da segunda-feira da semana que contém o dia 1.
// Os dias 22 a 28 são sempre a quarta semana.
func WeekOfMonth(date time.Time) int {
	day := utils.DateOnly(date)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	mondayOfFirst := first.AddDate(0, 0, -((int(first.Weekday()) + 6) % 7))

	days := int(day.Sub(mondayOfFirst).Hours() / 24)
	week := days/7 + 1

	if day.Day() >= 22 && day.Day() <= 28 {
		week = 4
	}
	return week
}

// ReportWeek aplica a regra do relatório sobre a sexta-feira anterior à referência:
// se ela cai no mês anterior, a partir do dia 22, é a quarta semana
func ReportWeek(reference time.Time) int {
	friday := utils.LastWeekFriday(reference)
	week := WeekOfMonth(friday)
	if friday.Month() != reference.Month() && friday.Day() >= 22 {
		week = 4
	}
	return week
}

func PaymentMonthName(date time.Time) string {
	return paymentMonths[date.Month()-1]
}

// FiscalYear devolve o ano fiscal agosto-julho no formato 2025-2026
func FiscalYear(date time.Time) string {
	start := date.Year()
	if date.Month() < fiscalYearStart {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}
