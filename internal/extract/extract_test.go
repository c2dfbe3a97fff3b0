package extract

import (
	"errors"
	"testing"
)

func TestExtractInRange(t *testing.T) {
	got, diags, err := Extract([]byte("ACGTACGT"), []Range{{ID: "x", Start: 2, End: 6}})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("want no diagnostics, got %v", diags)
	}
	if len(got) != 1 || got[0].ID != "x" || string(got[0].Seq) != "GTAC" {
		t.Fatalf("got %+v, want x=GTAC", got)
	}
}

func TestExtractStartAtLengthIsOutOfRange(t *testing.T) {
	got, diags, err := Extract([]byte("ACGT"), []Range{{ID: "x", Start: 4, End: 10}})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 1 || got[0].ID != "x" || len(got[0].Seq) != 0 {
		t.Fatalf("want empty x, got %+v", got)
	}
	if len(diags) != 1 || diags[0].Kind != OutOfRange || diags[0].ID != "x" || diags[0].Start != 4 {
		t.Fatalf("want one out_of_range diagnostic for x, got %+v", diags)
	}
}

func TestExtractClampsEnd(t *testing.T) {
	got, diags, err := Extract([]byte("ACGT"), []Range{{ID: "tail", Start: 1, End: 100}})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("clamping alone should not warn, got %v", diags)
	}
	if string(got[0].Seq) != "CGT" {
		t.Fatalf("got %q, want CGT", got[0].Seq)
	}
}

func TestExtractEmptySlices(t *testing.T) {
	cases := []struct {
		name  string
		start int
		end   int
	}{
		{"start==end", 2, 2},
		{"start>end", 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, diags, err := Extract([]byte("ACGTACGT"), []Range{{ID: "e", Start: tc.start, End: tc.end}})
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if len(got) != 1 || len(got[0].Seq) != 0 {
				t.Fatalf("want one empty sequence, got %+v", got)
			}
			if len(diags) != 1 || diags[0].Kind != Empty {
				t.Fatalf("want one empty diagnostic, got %+v", diags)
			}
		})
	}
}

func TestExtractPreservesOrderAndCount(t *testing.T) {
	ranges := []Range{
		{ID: "c", Start: 0, End: 2},
		{ID: "a", Start: 50, End: 60},
		{ID: "b", Start: 2, End: 4},
	}
	got, diags, err := Extract([]byte("acGT"), ranges)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != len(ranges) {
		t.Fatalf("want %d entries, got %d", len(ranges), len(got))
	}
	want := []string{"ac", "", "GT"}
	for i, r := range ranges {
		if got[i].ID != r.ID || string(got[i].Seq) != want[i] {
			t.Fatalf("entry %d = %s:%q, want %s:%q", i, got[i].ID, got[i].Seq, r.ID, want[i])
		}
	}
	if len(diags) != 1 || diags[0].ID != "a" {
		t.Fatalf("want one diagnostic for a, got %+v", diags)
	}
}

func TestExtractRejectsNegative(t *testing.T) {
	_, _, err := Extract([]byte("ACGT"), []Range{{ID: "ok", Start: 0, End: 1}, {ID: "neg", Start: -2, End: 3}})
	if !errors.Is(err, ErrNegativeCoordinate) {
		t.Fatalf("want ErrNegativeCoordinate, got %v", err)
	}
}

func TestExtractCopiesReference(t *testing.T) {
	ref := []byte("ACGT")
	got, _, _ := Extract(ref, []Range{{ID: "x", Start: 0, End: 4}})
	ref[0] = 'N'
	if string(got[0].Seq) != "ACGT" {
		t.Fatalf("extracted sequence changed with reference: %q", got[0].Seq)
	}
}
