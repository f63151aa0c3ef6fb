package normalizing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSchemaMismatch = errors.New("planilha fora do formato esperado")

// SchemaMismatchError aponta colunas ausentes ou a célula que não pôde ser interpretada
type SchemaMismatchError struct {
	Sheet   string
	Missing []string
	Row     int
	Column  string
	Value   string
	Reason  string
}

func (e *SchemaMismatchError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: planilha %q sem as colunas obrigatórias: %s",
			ErrSchemaMismatch.Error(), e.Sheet, strings.Join(e.Missing, ", "))
	}
	msg := fmt.Sprintf("%s: planilha %q, linha %d, coluna %q, valor %q",
		ErrSchemaMismatch.Error(), e.Sheet, e.Row, e.Column, e.Value)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

func missingColumns(sheet string, missing []string) *SchemaMismatchError {
	return &SchemaMismatchError{Sheet: sheet, Missing: missing}
}

func invalidCell(sheet string, row int, column, value string, err error) *SchemaMismatchError {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return &SchemaMismatchError{Sheet: sheet, Row: row, Column: column, Value: value, Reason: reason}
}
