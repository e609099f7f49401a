package row

// Range addresses a span of cells by character index. Start is
// inclusive and End is exclusive.
type Range struct {
	Start int
	End   int
}

// NewRange creates an exclusive range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Inclusive creates a range covering [start, end] inclusive of both
// endpoints.
func Inclusive(start, end int) Range {
	return Range{Start: start, End: end + 1}
}

// Len returns the number of cells the range covers.
func (rng Range) Len() int {
	if rng.End < rng.Start {
		return 0
	}
	return rng.End - rng.Start
}
