// Package dp traces three classic dynamic-programming solvers.
//
//   - CoinChange: fewest coins for an amount, unlimited supply of each
//     denomination, over a 1-D table dp[0..amount].
//   - Knapsack: 0/1 knapsack over a 2-D table dp[0..n][0..capacity], with
//     backward reconstruction of the chosen items.
//   - Fibonacci: the same number three ways (naive recursion, memoized
//     recursion, bottom-up tabulation) so their call counts can be compared.
//
// Fill order is strictly bottom-up: a cell is only read after every cell it
// depends on has been written.
//
// "No combination" is a result, not an error: CoinChange reports it with a
// terminal no-solution step and CoinResult.Feasible == false.
//
// Complexity:
//
//   - CoinChange: O(amount * len(coins)) time, O(amount) space.
//   - Knapsack:   O(n * capacity) time and space.
//   - Fibonacci:  naive O(phi^n) calls, memoized 2n-1 calls, tabulated n+1 fills.
package dp
