package writers

import (
	"fmt"
	"io"

	"chromalign/internal/pairwise"
)

// TSVHeader is the column header of the tsv format.
const TSVHeader = "id1\tid2\tsimilarity\tmatches\toffset"

func init() {
	registerReport(FormatTSV, func(w io.Writer, args reportArgs) error {
		if args.Opt.Header {
			if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
				return err
			}
		}
		for p := range args.In {
			if err := writeTSVRow(w, "", p); err != nil {
				return err
			}
		}
		s, ok := <-args.Done
		if !ok || s.Best == nil {
			return nil
		}
		return writeTSVRow(w, "#best\t", *s.Best)
	})
}

func writeTSVRow(w io.Writer, prefix string, p pairwise.PairResult) error {
	_, err := fmt.Fprintf(w, "%s%s\t%s\t%.2f\t%d\t%d\n",
		prefix, p.ID1, p.ID2, p.Result.Similarity, p.Result.Matches, p.Result.Offset)
	return err
}
