// internal/writers/fasta.go
package writers

import (
	"fmt"
	"io"

	"chromalign/internal/extract"
)

// WriteFASTA writes extracted sequences as FASTA, wrapping sequence lines at
// width symbols (0 = no wrapping). Empty sequences are written as a header
// with no sequence line so every range stays visible.
func WriteFASTA(w io.Writer, list []extract.Named, width int) error {
	for _, n := range list {
		if _, err := fmt.Fprintf(w, ">%s len=%d\n", n.ID, len(n.Seq)); err != nil {
			return err
		}
		seq := n.Seq
		for len(seq) > 0 {
			k := len(seq)
			if width > 0 && k > width {
				k = width
			}
			if _, err := w.Write(seq[:k]); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			seq = seq[k:]
		}
	}
	return nil
}
