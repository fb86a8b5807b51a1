// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

import (
	"cmp"
	"slices"
)

// sortByStart sorts s by (start,end) on axis a, the order the collision
// finder's sweep-and-prune relies on at query time.
func sortByStart[N Num, T Bounded[N]](a Axis, s []T) {
	slices.SortFunc(s, func(x, y T) int {
		xs, xe := startKey[N](a, x)
		ys, ye := startKey[N](a, y)
		if c := cmp.Compare(xs, ys); c != 0 {
			return c
		}
		return cmp.Compare(xe, ye)
	})
}

// startKey orders elements by their start coordinate on axis a, breaking
// ties on start by end coordinate as a secondary key.
func startKey[N Num, T Bounded[N]](a Axis, e T) (N, N) {
	iv := e.Rect().Range(a)
	return iv.Start, iv.End
}

func lessStart[N Num, T Bounded[N]](a Axis, x, y T) bool {
	xs, xe := startKey[N](a, x)
	ys, ye := startKey[N](a, y)
	if xs != ys {
		return xs < ys
	}
	return xe < ye
}

// nthElementByStart reorders s in place such that s[k] holds the value
// it would hold were s fully sorted by (start,end) on axis a, every
// element before k compares <= s[k] and every element after compares
// >= s[k]. This is the classic quickselect / introselect primitive
// (linear expected time), used by the builder to find the median start
// coordinate without paying for a full sort.
//
// The pack ships no generic order-statistics library (see DESIGN.md);
// this is the one place the core reaches past a one-line stdlib call.
func nthElementByStart[N Num, T Bounded[N]](a Axis, s []T, k int) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := medianOfThreePivot(a, s, lo, hi)
		p = partitionAround(a, s, lo, hi, p)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// medianOfThreePivot picks a pivot index using the median of s[lo],
// s[mid], s[hi] to avoid quadratic blowup on sorted or reverse-sorted
// input, and moves it to s[hi] (Hoare/Lomuto hybrid convention).
func medianOfThreePivot[N Num, T Bounded[N]](a Axis, s []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if lessStart[N](a, s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if lessStart[N](a, s[hi], s[lo]) {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if lessStart[N](a, s[hi], s[mid]) {
		s[hi], s[mid] = s[mid], s[hi]
	}
	s[mid], s[hi] = s[hi], s[mid]
	return hi
}

// partitionAround performs a Lomuto partition of s[lo:hi+1] around the
// pivot currently at index pivotIdx, returning the pivot's final index.
func partitionAround[N Num, T Bounded[N]](a Axis, s []T, lo, hi, pivotIdx int) int {
	pivot := s[pivotIdx]
	s[pivotIdx], s[hi] = s[hi], s[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if lessStart[N](a, s[i], pivot) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[hi] = s[hi], s[store]
	return store
}
