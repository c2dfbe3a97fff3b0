package logging

import (
	"log/slog"

	"chromalign/internal/coords"
	"chromalign/internal/extract"
)

// Diagnostics logs each extraction diagnostic at WARN.
func Diagnostics(log *slog.Logger, diags []extract.Diagnostic) {
	for _, d := range diags {
		log.Warn(d.String(),
			"kind", d.Kind.String(),
			"id", d.ID,
			"start", d.Start,
			"end", d.End,
			"genome_length", d.RefLen,
		)
	}
}

// Skipped logs each dropped coordinate row at WARN.
func Skipped(log *slog.Logger, file string, rows []coords.Skipped) {
	for _, s := range rows {
		log.Warn("skipping malformed coordinate row",
			"file", file,
			"line", s.Line,
			"reason", s.Reason,
			"row", s.Text,
		)
	}
}

// Truncated logs the ids whose sequences were capped before comparison.
func Truncated(log *slog.Logger, ids []string, limit int) {
	for _, id := range ids {
		log.Warn("sequence truncated before comparison", "id", id, "max_length", limit)
	}
}
