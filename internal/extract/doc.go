// Package extract slices named sub-sequences out of a reference sequence.
// It is pure and domain-only; it never logs or prints. Out-of-bounds ranges
// produce empty sequences plus a structured Diagnostic the caller can route.
package extract
