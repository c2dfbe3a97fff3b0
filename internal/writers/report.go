// internal/writers/report.go
package writers

import (
	"io"

	"chromalign/internal/pairwise"
)

// Options control report rendering.
type Options struct {
	Header bool // TSV header line
	Trace  bool // include the alignment trace of the best pair
}

// Summary is delivered once, after every pair has been sent.
type Summary struct {
	Best  *pairwise.PairResult
	Total int
}

type reportArgs struct {
	Opt  Options
	In   <-chan pairwise.PairResult
	Done <-chan Summary
}

// drainPairs collects the remaining pairs from ch.
func drainPairs(ch <-chan pairwise.PairResult) []pairwise.PairResult {
	list := make([]pairwise.PairResult, 0, 128)
	for p := range ch {
		list = append(list, p)
	}
	return list
}

// StartReportWriter spins up a writer goroutine for format. The caller sends
// pairs in enumeration order on pairs, closes it, then sends one Summary on
// summary (or closes summary without sending to skip the best block). The
// writer's result arrives on the error channel.
func StartReportWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- pairwise.PairResult, chan<- Summary, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pairwise.PairResult, bufSize)
	sum := make(chan Summary, 1)
	errCh := make(chan error, 1)

	go func() {
		err := writeReport(format, out, reportArgs{Opt: opt, In: in, Done: sum})
		if err != nil {
			// unblock the producer
			for range in {
			}
		}
		errCh <- err
	}()
	return in, sum, errCh
}
