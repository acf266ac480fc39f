// Package window traces sliding-window and running-sum techniques over an
// integer series, typically a run of daily stock prices.
//
// Three engines share one trace vocabulary:
//
//   - MaxSumWindow: the fixed-size window with the largest sum. The first
//     window is summed directly, every later one is derived in O(1) by
//     dropping the outgoing element and adding the incoming one.
//   - LongestIncreasingRun: the longest stretch of strictly increasing values.
//   - MaxSubarray: Kadane's maximum-sum contiguous subarray.
//
// Ties always keep the leftmost (first found) answer.
//
// Complexity: O(N) time and O(1) extra space for all three.
package window
