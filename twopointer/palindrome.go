package twopointer

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/algotrace/trace"
)

// Palindrome reports whether text reads the same in both directions.
//
// Preprocessing: NFC normalisation, then optional case folding and
// alphanumeric filtering per po. The pointer walk emits compare, then match or
// the terminal mismatch. A completed walk ends with the terminal palindrome
// step. Strings of zero or one rune are palindromes with no comparisons.
//
// The result is symmetric under reversal by NFC rune (a letter together with
// its combining marks). Reversing a decomposed string code point by code
// point moves each mark in front of its letter and yields a different text.
func Palindrome(text string, po PalindromeOptions, opts ...trace.Option) (*PalindromeResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}

	runes := normalize(text, po)
	res := &PalindromeResult{Normalized: string(runes)}

	left, right := 0, len(runes)-1
	for left < right {
		a, b := string(runes[left]), string(runes[right])
		res.Comparisons++
		pair := CharPair{Left: left, Right: right, A: a, B: b}
		if err = em.Emit(KindCompare, pair, "compare %q at %d with %q at %d", a, left, b, right); err != nil {
			return nil, em.Trace(), err
		}
		if runes[left] != runes[right] {
			if err = em.Emit(KindMismatch, pair, "%q != %q: not a palindrome", a, b); err != nil {
				return nil, em.Trace(), err
			}
			return res, em.Trace(), nil
		}
		if err = em.Emit(KindMatch, pair, "%q == %q: move both pointers inward", a, b); err != nil {
			return nil, em.Trace(), err
		}
		left++
		right--
	}

	res.Palindrome = true
	if err = em.Emit(KindPalindrome, nil, "%q is a palindrome after %d comparisons", res.Normalized, res.Comparisons); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// normalize applies the preprocessing selected by po and returns runes.
func normalize(text string, po PalindromeOptions) []rune {
	s := norm.NFC.String(text)
	if po.IgnoreCase {
		s = cases.Fold().String(s)
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if po.IgnoreNonAlnum && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
