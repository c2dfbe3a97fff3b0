// Package writers turns pairwise reports and extracted sequences into
// serialized outputs.
//
// Writers own all presentation knowledge (text blocks, TSV, JSON/JSONL,
// FASTA). The align and pairwise packages stay domain-only. JSON and JSONL
// go through pkg/api (v1) for a stable wire format.
package writers
