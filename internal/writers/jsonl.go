// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"chromalign/pkg/api"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

func init() {
	registerReport(FormatJSONL, func(out io.Writer, args reportArgs) error {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for p := range args.In {
			v := ToAPIPair(p, false)
			if err := enc.Encode(api.RecordV1{Type: "pair", PairV1: &v}); err != nil {
				return err
			}
		}
		if s, ok := <-args.Done; ok {
			found := s.Best != nil
			rec := api.RecordV1{Type: "best", Found: &found}
			if found {
				v := ToAPIPair(*s.Best, args.Opt.Trace)
				rec.PairV1 = &v
			}
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			return err
		}
		return nil
	})
}
