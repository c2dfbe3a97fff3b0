package writers

import (
	"bytes"
	"testing"

	"chromalign/internal/extract"
)

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	list := []extract.Named{
		{ID: "c1", Seq: []byte("ACGTACGTAC")},
		{ID: "c2", Seq: []byte{}},
	}
	if err := WriteFASTA(&buf, list, 4); err != nil {
		t.Fatal(err)
	}
	want := ">c1 len=10\nACGT\nACGT\nAC\n>c2 len=0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	_ = WriteFASTA(&buf, list[:1], 0)
	if buf.String() != ">c1 len=10\nACGTACGTAC\n" {
		t.Fatalf("unwrapped: %q", buf.String())
	}
}
