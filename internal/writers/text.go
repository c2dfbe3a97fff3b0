// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"chromalign/internal/pairwise"
)

func init() {
	registerReport(FormatText, func(w io.Writer, args reportArgs) error {
		for p := range args.In {
			if err := WritePairLine(w, p); err != nil {
				return err
			}
		}
		s, ok := <-args.Done
		if !ok {
			return nil
		}
		return WriteBestBlock(w, s.Best, args.Opt.Trace)
	})
}

// WritePairLine prints "id1 vs id2 similarity: 12.34%".
func WritePairLine(w io.Writer, p pairwise.PairResult) error {
	_, err := fmt.Fprintf(w, "%s vs %s similarity: %.2f%%\n", p.ID1, p.ID2, p.Result.Similarity)
	return err
}

// WriteBestBlock prints the best pair summary and, if trace is set and the
// pair has one, the three alignment lines.
func WriteBestBlock(w io.Writer, best *pairwise.PairResult, trace bool) error {
	if best == nil {
		_, err := fmt.Fprintln(w, "\nNo valid chromosome pairs found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "\nBest Match Pair: %s and %s\nSimilarity: %.2f%%\n",
		best.ID1, best.ID2, best.Result.Similarity); err != nil {
		return err
	}
	if !trace || best.Result.Trace == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Offset: %d\n\n", best.Result.Offset); err != nil {
		return err
	}
	for _, l := range best.Result.Trace.Lines() {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
