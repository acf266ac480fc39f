// Package algotrace is a set of algorithm engines that show their work.
//
// 🚀 What is algotrace?
//
//	Every engine runs a classic algorithm and records an ordered trace of
//	steps, ending in exactly one terminal step:
//		• Searching: binary and linear search, and a race between them
//		• Two pointers: palindrome check, pairs summing to a target
//		• Sliding window: best k-day average, longest gain, Kadane
//		• Sorting: traced merge sort, bubble/selection/merge runners
//		• Graphs: naive Dijkstra over preset or random graphs
//		• Dynamic programming: coin change, 0/1 knapsack, Fibonacci ×3
//
// ✨ Why traces?
//
//   - Steps carry snapshots, so a renderer can replay them at any pace
//   - One contract for all engines: trace.Option controls sinks,
//     cancellation, step limits and recording
//   - Bad input fails before the first step; "not found" is a step, not an error
//
// Packages:
//
//	trace/      - Step, Trace, Emitter, options, iterator adapter, pacing
//	search/     - Binary, Linear, Race
//	twopointer/ - Palindrome, PairSum
//	window/     - MaxSumWindow, LongestIncreasingRun, MaxSubarray
//	sorting/    - MergeSort, MergeSortFunc, runners, Compare
//	core/       - thread-safe undirected weighted Graph and presets
//	dijkstra/   - ShortestPath
//	dp/         - CoinChange, Knapsack, Fibonacci
//
// The algotrace command (cmd/algotrace) runs any engine from flags or
// YAML scenario files and serves traces over websockets:
//
//	algotrace dijkstra --preset highway --from BOS --to CHI
//	algotrace run -f scenarios.yaml --format json
//	algotrace serve --addr :8080 --delay 250ms
package algotrace
