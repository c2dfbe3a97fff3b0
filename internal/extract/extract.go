// internal/extract/extract.go
package extract

import (
	"errors"
	"fmt"
)

// ErrNegativeCoordinate is returned when a range carries a negative start or end.
var ErrNegativeCoordinate = errors.New("negative coordinate")

// Range is a half-open [Start, End) window into the reference.
type Range struct {
	ID    string
	Start int
	End   int
}

// Named is an extracted sub-sequence. Seq is owned by the Named value and is
// never mutated after extraction.
type Named struct {
	ID  string
	Seq []byte
}

// Kind classifies a Diagnostic.
type Kind int

const (
	// OutOfRange: the range starts at or beyond the end of the reference.
	OutOfRange Kind = iota + 1
	// Empty: the clamped range yields no symbols.
	Empty
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "out_of_range"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic is a non-fatal event emitted while extracting one range.
type Diagnostic struct {
	Kind   Kind
	ID     string
	Start  int
	End    int
	RefLen int
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case OutOfRange:
		return fmt.Sprintf("chromosome %s start position %d is out of genome range (length %d)", d.ID, d.Start, d.RefLen)
	case Empty:
		return fmt.Sprintf("chromosome %s sequence is empty (%d-%d)", d.ID, d.Start, d.End)
	}
	return fmt.Sprintf("chromosome %s: %s", d.ID, d.Kind)
}

// Extract produces one Named per range, in input order.
//
// A range whose start is >= len(ref) yields an empty sequence and an
// OutOfRange diagnostic. Otherwise end is clamped to len(ref) and the
// half-open slice is taken; an empty slice (including start > end) yields an
// Empty diagnostic. Negative coordinates are rejected with
// ErrNegativeCoordinate and no output.
func Extract(ref []byte, ranges []Range) ([]Named, []Diagnostic, error) {
	for _, r := range ranges {
		if r.Start < 0 || r.End < 0 {
			return nil, nil, fmt.Errorf("range %q (%d-%d): %w", r.ID, r.Start, r.End, ErrNegativeCoordinate)
		}
	}

	n := len(ref)
	out := make([]Named, 0, len(ranges))
	var diags []Diagnostic
	for _, r := range ranges {
		if r.Start >= n {
			out = append(out, Named{ID: r.ID, Seq: []byte{}})
			diags = append(diags, Diagnostic{Kind: OutOfRange, ID: r.ID, Start: r.Start, End: r.End, RefLen: n})
			continue
		}
		end := min(r.End, n)
		if r.Start >= end {
			out = append(out, Named{ID: r.ID, Seq: []byte{}})
			diags = append(diags, Diagnostic{Kind: Empty, ID: r.ID, Start: r.Start, End: end, RefLen: n})
			continue
		}
		// copy; ref may be reused by the caller
		out = append(out, Named{ID: r.ID, Seq: append([]byte(nil), ref[r.Start:end]...)})
	}
	return out, diags, nil
}
