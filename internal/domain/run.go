package domain

import "time"

// RunSummary é o resultado estruturado de uma execução do consolidado
type RunSummary struct {
	RunID          string   `json:"run_id"`
	Country        string   `json:"country"`
	ReferenceDate  string   `json:"reference_date"`
	FiscalYear     string   `json:"fiscal_year"`
	RowsProcessed  int      `json:"rows_processed"`
	RowsInserted   int      `json:"rows_inserted"`
	RowsDuplicated int      `json:"rows_duplicated"`
	DetailRows     int      `json:"detail_rows"`
	CloseExecuted  bool     `json:"close_executed"`
	Errors         []string `json:"errors"`
	ArtifactKey    string   `json:"artifact_key,omitempty"`
}

// BosquetoArtifact descreve o BOSQUETO gerado para correção do analista
type BosquetoArtifact struct {
	Key         string `json:"key"`
	Country     string `json:"country"`
	Rows        int    `json:"rows"`
	NotFound    int    `json:"invoices_not_found"`
	GeneratedAt string `json:"generated_at"`
}

// TableInfo resume o estado de uma tabela do warehouse para diagnóstico
type TableInfo struct {
	Table          string     `json:"table"`
	Rows           int64      `json:"rows"`
	LastInsertedAt *time.Time `json:"last_inserted_at,omitempty"`
}
