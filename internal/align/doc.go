// Package align scores two sequences by rigid translation: seq2 is laid
// against seq1 at every offset that overlaps by at least one position and the
// offset with the most identical symbols wins. No insertions or deletions are
// modelled.
//
// Similarity is always matches / len(seq2) * 100, so Align is asymmetric.
package align
