package dp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// Knapsack solves 0/1 knapsack: each item taken at most once, total weight
// within capacity, total value maximal.
//
// Row 0 is all zeros. Every cell dp[i][w] for i = 1..n and w = 0..capacity
// emits one table-update step carrying the include/exclude candidates. The
// chosen items are recovered backwards: dp[i][w] != dp[i-1][w] means item i
// was taken. Ties prefer excluding the item.
func Knapsack(capacity int, items []Item, opts ...trace.Option) (*KnapsackResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if capacity < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	for _, it := range items {
		if it.Weight <= 0 || it.Value < 0 {
			return nil, nil, fmt.Errorf("%w: %q (value %d, weight %d)", ErrBadItem, it.Name, it.Value, it.Weight)
		}
	}

	n := len(items)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, capacity+1)
	}

	res := &KnapsackResult{Capacity: capacity, Selected: []Item{}}
	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			res.Subproblems++
			cell := KnapsackCell{Item: i, W: w, Exclude: table[i-1][w]}
			if it.Weight <= w {
				cell.Fits = true
				cell.Include = it.Value + table[i-1][w-it.Weight]
				cell.Took = cell.Include > cell.Exclude
			}
			cell.Value = cell.Exclude
			if cell.Took {
				cell.Value = cell.Include
			}
			table[i][w] = cell.Value

			if cell.Fits {
				err = em.Emit(KindTableUpdate, cell, "%s at w=%d: max(include=%d, exclude=%d) = %d",
					it.Name, w, cell.Include, cell.Exclude, cell.Value)
			} else {
				err = em.Emit(KindTableUpdate, cell, "%s too heavy (%d > %d): keep %d",
					it.Name, it.Weight, w, cell.Value)
			}
			if err != nil {
				return nil, em.Trace(), err
			}
		}
	}

	w := capacity
	for i := n; i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			res.Selected = append(res.Selected, items[i-1])
			res.TotalWeight += items[i-1].Weight
			w -= items[i-1].Weight
		}
	}
	slices.Reverse(res.Selected)
	res.MaxValue = table[n][capacity]
	res.Table = table

	if err = em.Emit(KindSolution, *res, "max value %d with %d item(s), weight %d/%d",
		res.MaxValue, len(res.Selected), res.TotalWeight, capacity); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}
