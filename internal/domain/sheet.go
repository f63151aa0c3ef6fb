package domain

// RawSheet representa uma planilha lida sem nenhuma interpretação de tipos
type RawSheet struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	// HeaderRow é o número (base 1) da linha onde o cabeçalho foi encontrado
	HeaderRow int `json:"header_row"`
}

// Cell retorna o valor de uma célula ou vazio quando a linha é mais curta
func (s RawSheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	if col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}
