package workbook

import "strings"

// sheet is a header-indexed view over the rows of one worksheet.
type sheet struct {
	name    string
	columns map[string]int
	rows    [][]string
}

// newSheet indexes the first row as headers. Header names are matched
// case-insensitively after trimming.
func newSheet(name string, rows [][]string) sheet {
	s := sheet{name: name, columns: map[string]int{}}
	if len(rows) == 0 {
		return s
	}
	for i, header := range rows[0] {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if _, exists := s.columns[key]; !exists {
			s.columns[key] = i
		}
	}
	s.rows = rows[1:]
	return s
}

// column returns the index of the first matching header variant, or -1.
func (s sheet) column(variants ...string) int {
	for _, variant := range variants {
		if index, ok := s.columns[normalizeHeader(variant)]; ok {
			return index
		}
	}
	return -1
}

// cell returns the trimmed value at a column, or "" when absent.
func cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}

// blankRow reports whether every cell of a row is empty.
func blankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func normalizeHeader(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
