package search_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/search"
)

// ExampleBinary looks for book 42 on the 100-book shelf.
func ExampleBinary() {
	books, _ := search.Books(100)
	res, tr, err := search.Binary(books, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v index=%d comparisons=%d steps=%d\n",
		res.Found, res.Index, res.Iterations, tr.Len())
	// Output: found=true index=41 comparisons=7 steps=14
}
