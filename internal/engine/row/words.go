package row

// isWhitespace reports whether a cell is one of the two whitespace
// cells the word scanner recognizes.
func isWhitespace(cell string) bool {
	return cell == " " || cell == "\t"
}

// Words returns the character indices of word starts in the row, in
// order, plus a trailing boundary at the row's end. The scan is a
// single forward pass: runs of spaces and tabs are skipped, each
// leading tab before any text is recorded as a pseudo-boundary so word
// jumps can land on indentation, and a maximal run of non-whitespace
// cells is recorded once at its first cell.
func (r *Row) Words() []int {
	return scanWords(r.cells)
}

func scanWords(cells []string) []int {
	bounds := make([]int, 0, len(cells)/4+1)
	chr := 0
	pad := true
	for chr < len(cells) {
		switch cells[chr] {
		case " ":
			chr++
		case "\t":
			if pad {
				bounds = append(bounds, chr)
			}
			chr++
		default:
			pad = false
			bounds = append(bounds, chr)
			for chr < len(cells) && !isWhitespace(cells[chr]) {
				chr++
			}
		}
	}
	return append(bounds, len(cells))
}

// NextWordForth returns the nearest word boundary strictly after from,
// clamped to the row's end when no further boundary exists.
func (r *Row) NextWordForth(from int) int {
	for _, b := range r.Words() {
		if b > from {
			return b
		}
	}
	return r.Len()
}

// NextWordBack returns the nearest word boundary strictly before from,
// clamped to the row's start when no earlier boundary exists.
func (r *Row) NextWordBack(from int) int {
	prev := 0
	for _, b := range r.Words() {
		if b >= from {
			break
		}
		prev = b
	}
	return prev
}
