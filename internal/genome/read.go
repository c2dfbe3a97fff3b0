// Package genome reads the reference sequence.
//
// Every line that does not start with '>' is trimmed and appended, so
// multi-record FASTA files collapse into one sequence and plain text files
// work unchanged. Case is preserved.
package genome

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// Read loads the reference sequence from path ("-" for stdin).
func Read(ctx context.Context, path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	seq, err := ReadFrom(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// ReadFrom is the reader-based variant of Read. It returns promptly when ctx
// is done, even mid-file.
func ReadFrom(ctx context.Context, r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	seq := make([]byte, 0, 1<<20)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("genome scan: %w", err)
	}
	return seq, nil
}
