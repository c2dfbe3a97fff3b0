// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// ErrUnknownFormat is returned for a format with no registered writer.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// reportWriters maps format → handler. Entries are added in init() blocks of
// the per-format files (last registration wins).
var reportWriters = map[string]func(w io.Writer, args reportArgs) error{}

func registerReport(format string, fn func(io.Writer, reportArgs) error) {
	reportWriters[format] = fn
}

func writeReport(format string, w io.Writer, args reportArgs) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return fn(w, args)
}

// ReportFormats lists the registered report formats, sorted.
func ReportFormats() []string {
	out := make([]string, 0, len(reportWriters))
	for k := range reportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsReportFormat reports whether format has a registered writer.
func IsReportFormat(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// IsBrokenPipe reports whether err is a broken or closed pipe, which happens
// when a downstream consumer like `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
