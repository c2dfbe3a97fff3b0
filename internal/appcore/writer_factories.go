package appcore

import (
	"io"

	"chromalign/internal/config"
	"chromalign/internal/pairwise"
	"chromalign/internal/writers"
)

// ReportWriterFactory starts the report writer chosen on the command line.
type ReportWriterFactory struct {
	Format string
	Header bool
	Trace  bool
}

// NewReportWriterFactory reads the output settings from c.
func NewReportWriterFactory(c config.Config) ReportWriterFactory {
	return ReportWriterFactory{Format: c.Output, Header: c.Header, Trace: c.Trace}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- pairwise.PairResult, chan<- writers.Summary, <-chan error) {
	return writers.StartReportWriter(out, w.Format, writers.Options{Header: w.Header, Trace: w.Trace}, bufSize)
}
