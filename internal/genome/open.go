// internal/genome/open.go
package genome

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// Open returns a reader for path; "-" is stdin. Gzip input is detected by
// magic number (1F 8B), which also covers compressed stdin, or by a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReaderSize(src, 64*1024)
	magic, _ := br.Peek(2)
	gz := len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b
	if !gz && !strings.HasSuffix(path, ".gz") {
		return readCloser{Reader: br, close: src.Close}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return readCloser{Reader: gr, close: func() error {
		gerr := gr.Close()
		if err := src.Close(); err != nil {
			return err
		}
		return gerr
	}}, nil
}
