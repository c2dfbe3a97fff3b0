// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"

	"chromalign/internal/config"
	"chromalign/internal/coords"
	"chromalign/internal/extract"
	"chromalign/internal/genome"
	"chromalign/internal/logging"
	"chromalign/internal/pairwise"
	"chromalign/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Load reads the genome and the coordinate table and extracts every
// chromosome. Diagnostics and skipped rows are logged, not returned.
func Load(ctx context.Context, c config.Config, log *slog.Logger) ([]extract.Named, error) {
	ref, err := genome.Read(ctx, c.Genome)
	if err != nil {
		return nil, err
	}
	log.Info("genome loaded", "path", c.Genome, "length", humanize.Comma(int64(len(ref))))

	ranges, skipped, err := coords.Load(c.Coords)
	if err != nil {
		return nil, err
	}
	logging.Skipped(log, c.Coords, skipped)

	items, diags, err := extract.Extract(ref, ranges)
	if err != nil {
		return nil, err
	}
	logging.Diagnostics(log, diags)
	log.Info("chromosomes extracted",
		"count", len(items),
		"pairs", humanize.Comma(int64(pairwise.Pairs(len(items)))),
	)
	return items, nil
}

func loadExitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	return ExitUsage
}

// Compare runs the full pipeline and writes the pairwise report to stdout.
func Compare(ctx context.Context, c config.Config, stdout, stderr io.Writer, log *slog.Logger) int {
	items, err := Load(ctx, c, log)
	if err != nil {
		log.Error("load inputs", "err", err)
		return loadExitCode(err)
	}
	return report(ctx, c, items, stdout, stderr, log)
}

// AlignPair scores two literal sequences and writes them as a one-pair report.
func AlignPair(ctx context.Context, c config.Config, seq1, seq2 string, stdout, stderr io.Writer, log *slog.Logger) int {
	items := []extract.Named{
		{ID: "seq1", Seq: []byte(seq1)},
		{ID: "seq2", Seq: []byte(seq2)},
	}
	return report(ctx, c, items, stdout, stderr, log)
}

func report(ctx context.Context, c config.Config, items []extract.Named, stdout, stderr io.Writer, log *slog.Logger) int {
	outw := bufio.NewWriter(stdout)

	if ids := pairwise.Truncated(items, c.MaxLength); len(ids) > 0 {
		logging.Truncated(log, ids, c.MaxLength)
	}

	thr := c.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	wf := NewReportWriterFactory(c)
	inCh, sumCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bar := newProgress(c.Progress, stderr, pairwise.Pairs(len(items)))
	rep, perr := pairwise.Run(ctx, items, pairwise.Config{Threads: thr, MaxLen: c.MaxLength},
		func(p pairwise.PairResult) error {
			bar.increment()
			select {
			case inCh <- p:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	bar.finish(perr == nil)

	close(inCh)
	if perr == nil {
		sumCh <- writers.Summary{Best: rep.Best, Total: len(rep.All)}
	}
	close(sumCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write report", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush output", "err", e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		log.Error("compare", "err", perr)
		return ExitIO
	}
	if rep.Best == nil {
		return c.NoMatchExitCode
	}
	log.Debug("best pair", "id1", rep.Best.ID1, "id2", rep.Best.ID2,
		"similarity", fmt.Sprintf("%.2f", rep.Best.Result.Similarity), "offset", rep.Best.Result.Offset)
	return ExitOK
}

// Extract writes the extracted chromosomes as FASTA.
func Extract(ctx context.Context, c config.Config, stdout io.Writer, log *slog.Logger) int {
	items, err := Load(ctx, c, log)
	if err != nil {
		log.Error("load inputs", "err", err)
		return loadExitCode(err)
	}
	outw := bufio.NewWriter(stdout)
	if err := writers.WriteFASTA(outw, items, c.FastaWidth); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		log.Error("write fasta", "err", err)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush output", "err", e)
		return ExitIO
	}
	return ExitOK
}
