package twopointer

import (
	"math/rand"
	"slices"
)

// Random array bounds.
const (
	minPairValues = 8
	maxPairValues = 17
	maxPairValue  = 50
)

// RandomPairs returns a sorted array of 8..17 values in 1..50 and a target
// equal to the sum of two of its elements at distinct indices, so PairSum
// finds at least one pair. rng must not be shared across goroutines.
func RandomPairs(rng *rand.Rand) (arr []int, target int) {
	n := minPairValues + rng.Intn(maxPairValues-minPairValues+1)
	arr = make([]int, n)
	for i := range arr {
		arr[i] = 1 + rng.Intn(maxPairValue)
	}
	slices.Sort(arr)

	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return arr, arr[i] + arr[j]
}
