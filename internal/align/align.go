// internal/align/align.go
package align

import "strings"

// Outcome is the per-position result of laying seq2 against seq1.
type Outcome byte

const (
	Match    Outcome = 'R'
	Mismatch Outcome = 'W'
	Gap      Outcome = 'X' // seq2 position falls outside seq1
)

// Trace is a three-line rendering of the winning offset. Comparison and
// Indicator are left-padded by max(0, Offset) spaces.
type Trace struct {
	Reference  string
	Indicator  string
	Comparison string
}

// Lines returns the trace in display order.
func (t Trace) Lines() []string {
	return []string{t.Reference, t.Indicator, t.Comparison}
}

// Result of aligning two sequences. Trace is nil when either input is empty.
type Result struct {
	Similarity float64
	Matches    int
	Offset     int
	Trace      *Trace
}

// Score runs the exhaustive offset scan and returns the best match count and
// the offset that first achieved it. Both are 0 for empty input.
func Score(seq1, seq2 []byte) (matches, offset int) {
	len1, len2 := len(seq1), len(seq2)
	if len1 == 0 || len2 == 0 {
		return 0, 0
	}
	best, bestOff := -1, 0
	for o := -(len2 - 1); o <= len1-1; o++ {
		n := 0
		for i := 0; i < len2; i++ {
			if p := i + o; p >= 0 && p < len1 && seq1[p] == seq2[i] {
				n++
			}
		}
		if n > best {
			best, bestOff = n, o
		}
	}
	return best, bestOff
}

// Outcomes classifies every seq2 position at offset o.
func Outcomes(seq1, seq2 []byte, o int) []Outcome {
	out := make([]Outcome, len(seq2))
	for i := range seq2 {
		p := i + o
		switch {
		case p < 0 || p >= len(seq1):
			out[i] = Gap
		case seq1[p] == seq2[i]:
			out[i] = Match
		default:
			out[i] = Mismatch
		}
	}
	return out
}

// Align scores seq2 against seq1 and renders the trace of the best offset.
// Neither input is modified.
func Align(seq1, seq2 []byte) Result {
	if len(seq1) == 0 || len(seq2) == 0 {
		return Result{}
	}
	matches, off := Score(seq1, seq2)
	return Result{
		Similarity: float64(matches) / float64(len(seq2)) * 100,
		Matches:    matches,
		Offset:     off,
		Trace:      render(seq1, seq2, off),
	}
}

func render(seq1, seq2 []byte, off int) *Trace {
	pad := strings.Repeat(" ", max(0, off))
	oc := Outcomes(seq1, seq2, off)
	ind := make([]byte, len(oc))
	for i, o := range oc {
		ind[i] = byte(o)
	}
	return &Trace{
		Reference:  string(seq1),
		Indicator:  pad + string(ind),
		Comparison: pad + string(seq2),
	}
}
