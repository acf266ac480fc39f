// Package twopointer traces the two-pointer technique: two indices that walk
// toward each other, steered by a comparison.
//
// Palindrome compares the characters under the pointers and stops at the
// first mismatch. PairSum walks a sorted array and collects every pair the
// technique meets whose sum equals the target.
//
// Complexity: O(N) time, O(1) extra space for both engines (O(N) for the
// normalised rune slice of Palindrome and the optional sorted copy of PairSum).
//
// Duplicate values in PairSum: after a match both pointers move inward, so an
// index pair is never reported twice, but other index pairs made of the same
// values may be skipped. [1,1,2,3] with target 4 yields only (0,3).
package twopointer
