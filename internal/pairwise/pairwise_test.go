package pairwise

import (
	"testing"

	"chromalign/internal/extract"
)

func named(kv ...string) []extract.Named {
	var out []extract.Named
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, extract.Named{ID: kv[i], Seq: []byte(kv[i+1])})
	}
	return out
}

func TestBestMatchFewerThanTwo(t *testing.T) {
	for _, items := range [][]extract.Named{nil, named("only", "ACGT")} {
		rep := BestMatch(items)
		if rep.Best != nil || len(rep.All) != 0 {
			t.Fatalf("want absent best and no results, got %+v", rep)
		}
	}
}

func TestBestMatchTieKeepsEarliestPair(t *testing.T) {
	// (0,1)=50, (0,2)=0, (1,2)=50
	items := named("a", "AT", "b", "AG", "c", "GC")
	rep := BestMatch(items)
	if len(rep.All) != 3 {
		t.Fatalf("want 3 pair results, got %d", len(rep.All))
	}
	wantOrder := [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	for k, w := range wantOrder {
		if rep.All[k].ID1 != w[0] || rep.All[k].ID2 != w[1] {
			t.Fatalf("result %d = %s/%s, want %s/%s", k, rep.All[k].ID1, rep.All[k].ID2, w[0], w[1])
		}
	}
	if rep.All[0].Result.Similarity != 50 || rep.All[2].Result.Similarity != 50 || rep.All[1].Result.Similarity != 0 {
		t.Fatalf("unexpected scores: %v %v %v",
			rep.All[0].Result.Similarity, rep.All[1].Result.Similarity, rep.All[2].Result.Similarity)
	}
	if rep.Best == nil || rep.Best.I != 0 || rep.Best.J != 1 {
		t.Fatalf("want best pair (0,1), got %+v", rep.Best)
	}
}

func TestBestMatchAllZeroHasNoBest(t *testing.T) {
	rep := BestMatch(named("x", "AAA", "y", "CCC", "z", ""))
	if rep.Best != nil {
		t.Fatalf("want no best pair, got %+v", rep.Best)
	}
	if len(rep.All) != 3 {
		t.Fatalf("want 3 results, got %d", len(rep.All))
	}
}

func TestBestMatchUsesIndexOrderNotIDs(t *testing.T) {
	rep := BestMatch(named("z", "ACGT", "a", "ACGT"))
	if rep.Best == nil || rep.Best.ID1 != "z" || rep.Best.ID2 != "a" {
		t.Fatalf("want z as seq1, got %+v", rep.Best)
	}
}

func TestPairs(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 10: 45} {
		if got := Pairs(n); got != want {
			t.Fatalf("Pairs(%d)=%d want %d", n, got, want)
		}
	}
}

func TestCapAndTruncated(t *testing.T) {
	items := named("long", "ACGTACGT", "short", "AC")
	capped := Cap(items, 4)
	if string(capped[0].Seq) != "ACGT" || string(capped[1].Seq) != "AC" {
		t.Fatalf("cap: %q %q", capped[0].Seq, capped[1].Seq)
	}
	if string(items[0].Seq) != "ACGTACGT" {
		t.Fatal("Cap modified its input")
	}
	ids := Truncated(items, 4)
	if len(ids) != 1 || ids[0] != "long" {
		t.Fatalf("truncated = %v", ids)
	}
	if Truncated(items, 0) != nil {
		t.Fatal("max 0 must not truncate")
	}
}
