// Package search traces binary and linear search over a sorted integer
// sequence, and races the two against each other.
//
// The classic demo is a shelf of books numbered 1..100 (see Books): binary
// search halves the bracket [low, high] on every comparison, linear search
// checks one book at a time.
//
// Complexity:
//
//   - Binary: O(log N) comparisons, O(N) upfront sortedness check.
//   - Linear: O(N) comparisons.
//   - Space:  O(1) besides the recorded trace.
//
// Binary requires ascending input and fails fast with ErrNotSorted
// otherwise; Linear has no precondition.
package search
