package dp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// CoinChange finds the fewest coins summing to amount.
//
// dp[0] = 0 and every other cell starts at Inf. For i = 1..amount and each
// coin c <= i (in the given order), a strict improvement dp[i-c]+1 < dp[i]
// updates the cell, remembers c and emits table-update; every i then emits
// cell-done. Ties keep the earlier coin. The run ends with solution, or with
// no-solution when dp[amount] stays Inf.
func CoinChange(amount int, coins []int, opts ...trace.Option) (*CoinResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if amount < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadAmount, amount)
	}
	if len(coins) == 0 {
		return nil, nil, ErrNoCoins
	}
	for _, c := range coins {
		if c <= 0 {
			return nil, nil, fmt.Errorf("%w: got %d", ErrBadCoin, c)
		}
	}

	table := make([]int, amount+1)
	last := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		table[i] = Inf
	}

	for i := 1; i <= amount; i++ {
		for _, c := range coins {
			if c > i || table[i-c] == Inf || table[i-c]+1 >= table[i] {
				continue
			}
			u := CoinUpdate{Amount: i, Coin: c, Old: table[i], New: table[i-c] + 1}
			table[i], last[i] = u.New, c
			if err = em.Emit(KindTableUpdate, u, "dp[%d] = dp[%d] + 1 = %d using coin %d", i, i-c, u.New, c); err != nil {
				return nil, em.Trace(), err
			}
		}
		if err = em.Emit(KindCellDone, CoinCell{Amount: i, Coins: table[i], Last: last[i]},
			"dp[%d] settled at %s", i, countOrInf(table[i])); err != nil {
			return nil, em.Trace(), err
		}
	}

	res := &CoinResult{
		Amount:   amount,
		Coins:    slices.Clone(coins),
		MinCoins: -1,
		Used:     []int{},
		Counts:   map[int]int{},
		Table:    table,
	}
	if table[amount] == Inf {
		if err = em.Emit(KindNoSolution, *res, "no combination of %v makes %d", coins, amount); err != nil {
			return nil, em.Trace(), err
		}
		return res, em.Trace(), nil
	}

	res.Feasible, res.MinCoins = true, table[amount]
	for i := amount; i > 0; i -= last[i] {
		res.Used = append(res.Used, last[i])
		res.Counts[last[i]]++
	}
	if err = em.Emit(KindSolution, *res, "%d coin(s) make %d: %v", res.MinCoins, amount, res.Used); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

func countOrInf(v int) string {
	if v == Inf {
		return "inf"
	}
	return fmt.Sprint(v)
}
