// Package dlx implements Knuth's Algorithm X over a toroidal
// quadruply-linked Dancing Links matrix: an arena of fixed-size nodes
// addressed by integer index, O(1) column cover/uncover, minimum-remaining-
// values column selection, and a recursive backtracking search that
// enumerates every exact cover of a caller-supplied ExactCoverSource.
package dlx
