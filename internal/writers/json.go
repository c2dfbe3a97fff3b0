// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"chromalign/internal/pairwise"
	"chromalign/pkg/api"
)

// ToAPIPair converts a scored pair to the stable wire schema (v1).
// The trace is attached only when withTrace is set.
func ToAPIPair(p pairwise.PairResult, withTrace bool) api.PairV1 {
	v := api.PairV1{
		ID1:        p.ID1,
		ID2:        p.ID2,
		Similarity: p.Result.Similarity,
		Matches:    p.Result.Matches,
		Offset:     p.Result.Offset,
	}
	if withTrace && p.Result.Trace != nil {
		t := p.Result.Trace
		v.Trace = &api.TraceV1{Reference: t.Reference, Indicator: t.Indicator, Comparison: t.Comparison}
	}
	return v
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	// single document; buffers every pair
	registerReport(FormatJSON, func(w io.Writer, args reportArgs) error {
		list := drainPairs(args.In)
		rep := api.ReportV1{Pairs: make([]api.PairV1, 0, len(list))}
		for _, p := range list {
			rep.Pairs = append(rep.Pairs, ToAPIPair(p, false))
		}
		if s, ok := <-args.Done; ok && s.Best != nil {
			b := ToAPIPair(*s.Best, args.Opt.Trace)
			rep.Best = &b
		}
		return encodePretty(w, rep)
	})
}
