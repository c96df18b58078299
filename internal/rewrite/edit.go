package rewrite

import (
	"fmt"
	"sort"
)

// Edit replaces the half-open byte span [Start, End) with Text.
// An insertion has Start == End.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Insert returns an edit inserting text at the given offset.
func Insert(at int, text string) Edit {
	return Edit{Start: at, End: at, Text: text}
}

// Replace returns an edit replacing the span [start, end) with text.
func Replace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// ApplyEdits splices the edits into src and returns the result.
// Edits may be given in any order; overlapping edits are an error.
// With zero edits the input is returned unchanged.
func ApplyEdits(src []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}

		return sorted[i].End < sorted[j].End
	})

	var out []byte

	prev := 0
	for _, e := range sorted {
		if e.Start > e.End || e.Start < 0 || e.End > len(src) {
			return nil, fmt.Errorf("edit [%d,%d) out of range (len %d)", e.Start, e.End, len(src))
		}
		if e.Start < prev {
			return nil, fmt.Errorf("edit [%d,%d) overlaps a previous edit ending at %d", e.Start, e.End, prev)
		}

		out = append(out, src[prev:e.Start]...)
		out = append(out, e.Text...)
		prev = e.End
	}

	out = append(out, src[prev:]...)

	return out, nil
}
