// Package sorting traces top-down merge sort in full detail and races it
// against bubble sort and selection sort.
//
// MergeSortFunc is the narrated engine: every divide, base case, comparison,
// leftover take and completed merge becomes a step whose payload carries a
// snapshot of the whole working array, so a renderer can redraw the bars at
// any point. Merging takes from the left half on ties, which makes the sort
// stable.
//
// Bubble, Selection and MergeRun are the comparison runners. Each one sorts
// its own copy of the input, keeps private counters (comparisons, swaps,
// merges, writes) and records its own trace. Compare runs all three
// concurrently.
//
// Complexity:
//
//   - MergeSortFunc, MergeRun: O(N log N) comparisons, O(N) extra space.
//   - Bubble, Selection: O(N^2) comparisons, O(1) extra space.
//
// Every step payload copies the array, so a narrated sort of N elements
// holds O(N^2 log N) values in its trace. Use trace.WithDiscard with a sink
// for long inputs.
package sorting
