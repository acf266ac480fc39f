package sorting

import (
	"fmt"
	"math/rand"
)

// DefaultRandomSize is the array length used when the caller has no preference.
const DefaultRandomSize = 15

// RandomArray returns size values drawn uniformly from 1..100.
// rng must not be shared across goroutines.
func RandomArray(rng *rand.Rand, size int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = 1 + rng.Intn(100)
	}
	return out, nil
}
