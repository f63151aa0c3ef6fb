// Package spreadsheet lê as planilhas enviadas pelos analistas sem interpretar tipos
package spreadsheet

import (
	"bytes"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("formato de planilha não suportado, envie um arquivo .xlsx")
	ErrNoSheets          = errors.New("planilha sem abas")
)

// xlsx é um zip; o conteúdo começa sempre com a assinatura PK
var zipSignature = []byte("PK\x03\x04")

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read devolve as células da aba pedida como texto cru, sem cabeçalho detectado.
// Com sheet vazio, ou quando a aba não existe, lê a primeira aba do arquivo.
func (r *Reader) Read(content []byte, sheet string) (domain.RawSheet, error) {
	if !bytes.HasPrefix(content, zipSignature) {
		return domain.RawSheet{}, ErrUnsupportedFormat
	}

	file, err := xlsx.OpenBinary(content)
	if err != nil {
		return domain.RawSheet{}, pkgerrors.Wrap(err, "erro ao abrir planilha")
	}
	if len(file.Sheets) == 0 {
		return domain.RawSheet{}, ErrNoSheets
	}

	selected := pickSheet(file, sheet)

	rows := make([][]string, 0, len(selected.Rows))
	for _, row := range selected.Rows {
		rows = append(rows, rowValues(row))
	}

	logrus.WithFields(logrus.Fields{
		"sheet": selected.Name,
		"rows":  len(rows),
	}).Debug("spreadsheet: planilha lida")

	return domain.RawSheet{Name: selected.Name, Rows: rows}, nil
}

func pickSheet(file *xlsx.File, name string) *xlsx.Sheet {
	if name == "" {
		return file.Sheets[0]
	}
	if s, ok := file.Sheet[name]; ok {
		return s
	}
	for _, s := range file.Sheets {
		if strings.EqualFold(strings.TrimSpace(s.Name), name) {
			return s
		}
	}

	logrus.WithFields(logrus.Fields{
		"expected": name,
		"using":    file.Sheets[0].Name,
	}).Warn("spreadsheet: aba não encontrada, usando a primeira")
	return file.Sheets[0]
}

// rowValues usa o valor cru da célula: datas chegam como número serial do Excel
func rowValues(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	values := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		if cell == nil {
			continue
		}
		values[i] = strings.TrimSpace(cell.Value)
	}
	return values
}
