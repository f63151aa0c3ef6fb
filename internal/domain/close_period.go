package domain

import "time"

// Titles contém os rótulos Mes-YYYY usados nos títulos do template
type Titles struct {
	Current  string `json:"current"`  // ex: Febrero-2026
	Previous string `json:"previous"` // ex: Enero-2026
}

// TitleValue é o texto final de uma célula de título
type TitleValue struct {
	Sheet string `json:"sheet"`
	Cell  string `json:"cell"`
	Value string `json:"value"`
}

// ClosePeriod é derivado da data de referência da execução e nunca é persistido
type ClosePeriod struct {
	ReferenceDate time.Time    `json:"reference_date"`
	IsCloseWeek   bool         `json:"is_close_week"`
	Titles        Titles       `json:"titles"`
	Cells         []TitleValue `json:"cells,omitempty"`
}
