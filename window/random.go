package window

import "math/rand"

// Random series bounds.
const (
	minPrices    = 8
	maxPrices    = 15
	minBasePrice = 50
	priceFloor   = 10
	maxDrift     = 10
	minWindow    = 3
	maxWindow    = 5
)

// RandomPrices returns a random walk of 8..15 prices starting at 50..99, each
// day moving by -10..+10 and never below 10, plus a window size in 3..5.
// rng must not be shared across goroutines.
func RandomPrices(rng *rand.Rand) (prices []int, k int) {
	n := minPrices + rng.Intn(maxPrices-minPrices+1)
	prices = make([]int, n)
	prices[0] = minBasePrice + rng.Intn(50)
	for i := 1; i < n; i++ {
		prices[i] = max(priceFloor, prices[i-1]+rng.Intn(2*maxDrift+1)-maxDrift)
	}
	k = minWindow + rng.Intn(maxWindow-minWindow+1)
	return prices, k
}
