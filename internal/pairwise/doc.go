// Package pairwise scores every unordered pair of a sequence collection and
// keeps the best one.
//
// Pairs are enumerated as (i, j), i < j, in index order. That order is part
// of the contract: results are reported in it, and ties for the best
// similarity go to the earliest pair. Run may score pairs concurrently but
// reports and picks the winner exactly as BestMatch does.
package pairwise
