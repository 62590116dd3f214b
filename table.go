package pinniped

import "strings"

// Table is a rectangular text grid. Rows may be ragged; no column-count
// invariant is enforced or repaired.
type Table struct {
	Rows      [][]string
	HasHeader bool
}

// NewTable builds a Table and detects a header: present iff there are at
// least two rows and row 1 is a separator row.
func NewTable(rows [][]string) Table {
	return Table{
		Rows:      rows,
		HasHeader: len(rows) >= 2 && isSeparatorRow(rows[1]),
	}
}

// A separator row has every cell made of '-' and ':' only, with at least
// one '-' per cell.
func isSeparatorRow(row []string) bool {
	for _, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if !strings.Contains(trimmed, "-") {
			return false
		}
		if strings.Trim(trimmed, "-:") != "" {
			return false
		}
	}
	return true
}

// Direction selects a table navigation move. The numeric values are part of
// the embedding contract.
type Direction int

const (
	// Up moves to the previous data row.
	Up Direction = iota
	// Down moves to the next data row.
	Down
	// Left moves to the previous column.
	Left
	// Right moves to the next column.
	Right
)

// CellPosition is the result of a navigation move. On an out-of-bounds move
// Row and Col are the unchanged origin and Valid is false.
type CellPosition struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Valid bool `json:"valid"`
}

// Navigate computes the cell reached from (row, col) in the given
// direction, clamped to the data area. When the table has a header, row
// indices address data rows only: the header and separator rows are
// excluded from the row range.
func (t Table) Navigate(row, col int, dir Direction) CellPosition {
	maxRow := len(t.Rows) - 1
	if t.HasHeader {
		maxRow = len(t.Rows) - 2
	}
	maxCol := 0
	if len(t.Rows) > 0 {
		maxCol = len(t.Rows[0]) - 1
	}

	newRow, newCol := row, col
	switch dir {
	case Up:
		newRow--
	case Down:
		newRow++
	case Left:
		newCol--
	case Right:
		newCol++
	}

	if newRow < 0 || newRow > maxRow || newCol < 0 || newCol > maxCol {
		return CellPosition{Row: row, Col: col, Valid: false}
	}
	return CellPosition{Row: newRow, Col: newCol, Valid: true}
}

// Cell returns the content at (row, col). When the table has a header,
// row 0 addresses the header row and later rows are offset past the
// separator, so row 1 is the first data row.
func (t Table) Cell(row, col int) (string, error) {
	actual := row
	if t.HasHeader && row != 0 {
		actual = row + 1
	}
	if row < 0 || actual >= len(t.Rows) {
		return "", ErrCellOutOfRange
	}
	if col < 0 || col >= len(t.Rows[actual]) {
		return "", ErrCellOutOfRange
	}
	return t.Rows[actual][col], nil
}
