package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateLayout = errors.New("layout do template inválido")
	ErrWriteConflict  = errors.New("região do template sem capacidade")
)

// TemplateLayoutError aponta a aba ou célula esperada que não existe no template
type TemplateLayoutError struct {
	Sheet  string
	Cell   string
	Reason string
}

func (e *TemplateLayoutError) Error() string {
	msg := fmt.Sprintf("%s: aba %q", ErrTemplateLayout.Error(), e.Sheet)
	if e.Cell != "" {
		msg += fmt.Sprintf(", célula %s", e.Cell)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TemplateLayoutError) Unwrap() error {
	return ErrTemplateLayout
}

// WriteConflictError indica que as linhas não cabem na região reservada da aba
type WriteConflictError struct {
	Sheet    string
	Capacity int
	Rows     int
}

func (e *WriteConflictError) Error() string {
	return fmt.Sprintf("%s: aba %q comporta %d linhas, recebidas %d",
		ErrWriteConflict.Error(), e.Sheet, e.Capacity, e.Rows)
}

func (e *WriteConflictError) Unwrap() error {
	return ErrWriteConflict
}
