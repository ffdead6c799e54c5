package domain

// Result holds the outcome of an address split computation.
type Result struct {
	// Name of the operation.
	Name string
	// The three display lines, in order. Each may be empty.
	Line1 string
	Line2 string
	Line3 string
	// Original is the input string, unmodified.
	Original string
	// Normalized is the whitespace-collapsed form the lines were computed from.
	Normalized string
	// SegmentCount is the number of delimiter-separated segments found.
	SegmentCount int
	// TargetLength is the per-line character budget used for distribution.
	TargetLength int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Lines returns the three lines as an ordered slice.
func (r Result) Lines() []string {
	return []string{r.Line1, r.Line2, r.Line3}
}
