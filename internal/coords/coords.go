// Package coords loads the chromosome coordinate table: a header line
// followed by "id,start,end" rows. Malformed rows are skipped and reported so
// that only well-typed ranges reach the extractor.
package coords

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chromalign/internal/extract"
)

// Skipped describes a dropped row. Line is 1-based and counts the header.
type Skipped struct {
	Line   int
	Text   string
	Reason string
}

// Load reads the coordinate table at path ("-" for stdin).
func Load(path string) ([]extract.Range, []Skipped, error) {
	if path == "-" {
		return Parse(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// Parse reads a coordinate table from r; name is only used in errors.
// The first line is always treated as a header. Fields are comma separated
// unless the header has a tab and no comma. Extra trailing fields are ignored.
func Parse(r io.Reader, name string) ([]extract.Range, []Skipped, error) {
	var (
		rows    []extract.Range
		skipped []Skipped
		sep     = ","
	)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		raw := sc.Text()
		if ln == 1 {
			if strings.Contains(raw, "\t") && !strings.Contains(raw, ",") {
				sep = "\t"
			}
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, sep)
		if len(f) < 3 {
			skipped = append(skipped, Skipped{Line: ln, Text: line, Reason: fmt.Sprintf("want 3 fields, got %d", len(f))})
			continue
		}
		start, err := strconv.Atoi(strings.TrimSpace(f[1]))
		if err != nil {
			skipped = append(skipped, Skipped{Line: ln, Text: line, Reason: fmt.Sprintf("bad start %q", f[1])})
			continue
		}
		end, err := strconv.Atoi(strings.TrimSpace(f[2]))
		if err != nil {
			skipped = append(skipped, Skipped{Line: ln, Text: line, Reason: fmt.Sprintf("bad end %q", f[2])})
			continue
		}
		if start < 0 || end < 0 {
			skipped = append(skipped, Skipped{Line: ln, Text: line, Reason: "negative coordinate"})
			continue
		}
		rows = append(rows, extract.Range{ID: strings.TrimSpace(f[0]), Start: start, End: end})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, skipped, nil
}
