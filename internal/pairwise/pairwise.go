// internal/pairwise/pairwise.go
package pairwise

import (
	"chromalign/internal/align"
	"chromalign/internal/extract"
)

// PairResult is the score of items[I] (as seq1) against items[J] (as seq2).
type PairResult struct {
	I, J   int
	ID1    string
	ID2    string
	Result align.Result
}

// Report carries every pair in enumeration order plus the winner.
// Best is nil when no pair scored above zero or there were fewer than 2 items.
type Report struct {
	Best *PairResult
	All  []PairResult
}

// Pairs returns the number of unordered pairs over n items.
func Pairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// BestMatch scores all pairs sequentially.
func BestMatch(items []extract.Named) Report {
	all := make([]PairResult, 0, Pairs(len(items)))
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			all = append(all, score(items, i, j))
		}
	}
	return Report{Best: pickBest(all), All: all}
}

func score(items []extract.Named, i, j int) PairResult {
	return PairResult{
		I: i, J: j,
		ID1:    items[i].ID,
		ID2:    items[j].ID,
		Result: align.Align(items[i].Seq, items[j].Seq),
	}
}

// pickBest applies the running-maximum rule: start at 0 and replace only on a
// strictly greater similarity, so the earliest pair wins ties.
func pickBest(all []PairResult) *PairResult {
	var (
		best    *PairResult
		bestSim float64
	)
	for k := range all {
		if all[k].Result.Similarity > bestSim {
			bestSim = all[k].Result.Similarity
			b := all[k]
			best = &b
		}
	}
	return best
}

// Cap returns items with every sequence cut to at most limit symbols.
// limit <= 0 returns items unchanged. The returned slices alias the originals.
func Cap(items []extract.Named, limit int) []extract.Named {
	if limit <= 0 {
		return items
	}
	out := make([]extract.Named, len(items))
	for i, it := range items {
		if len(it.Seq) > limit {
			it.Seq = it.Seq[:limit:limit]
		}
		out[i] = it
	}
	return out
}

// Truncated lists the ids Cap would shorten.
func Truncated(items []extract.Named, limit int) []string {
	if limit <= 0 {
		return nil
	}
	var ids []string
	for _, it := range items {
		if len(it.Seq) > limit {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
