package twopointer_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/twopointer"
)

func ExamplePalindrome() {
	res, tr, _ := twopointer.Palindrome("Never odd or even", twopointer.DefaultPalindromeOptions())
	fmt.Println(res.Normalized, res.Palindrome, res.Comparisons, tr.Len())
	// Output: neveroddoreven true 7 15
}

func ExamplePairSum() {
	res, _, _ := twopointer.PairSum([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 10, twopointer.PairSumOptions{})
	for _, p := range res.Pairs {
		fmt.Printf("(%d,%d) ", p.A, p.B)
	}
	fmt.Println()
	// Output: (1,9) (2,8) (3,7) (4,6)
}
