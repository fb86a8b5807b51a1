// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

// Package assert offers brute-force reference implementations of every
// core query plus a tree structural validator, for use in tests. None of
// it is imported by the core package; release builds never pay for it.
package assert

import (
	"github.com/Byron/broccoli"
)

// Pair is an unordered pair of indices into the slice a brute-force
// search was run over.
type Pair struct {
	A, B int
}

// CollisionPairsNaive finds every colliding pair in elems by the
// textbook O(n^2) double loop, with no sweep, no tree, no pruning -
// the oracle FindCollisionPairs is checked against.
func CollisionPairsNaive[N broccoli.Num, T broccoli.Bounded[N]](elems []T) []Pair {
	var out []Pair
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			if elems[i].Rect().Intersects(elems[j].Rect()) {
				out = append(out, Pair{A: i, B: j})
			}
		}
	}
	return out
}

// RayCastNaive finds every element hit by ray at the minimum distance
// among elems by testing each in turn, with no tree and no pruning. It
// returns the indices of every tied element, not just one.
func RayCastNaive[N broccoli.Num, T broccoli.Bounded[N]](elems []T, ray broccoli.Ray[N], handle broccoli.RayCastHandler[N, T]) ([]int, N, bool) {
	var best []int
	var bestDist N
	found := false
	for i := range elems {
		dist, ok := handle(broccoli.ProtectedFor[N](&elems[i]))
		if !ok {
			continue
		}
		switch {
		case !found || dist < bestDist:
			best, bestDist, found = []int{i}, dist, true
		case dist == bestDist:
			best = append(best, i)
		}
	}
	return best, bestDist, found
}

// KNearestNaive finds the k elements of elems with the smallest distance
// as computed by handle, by sorting every element's distance and taking
// the smallest k, with no tree and no pruning.
func KNearestNaive[N broccoli.Num, T broccoli.Bounded[N]](elems []T, k int, handle broccoli.KNearestHandler[N, T]) []int {
	type scored struct {
		idx  int
		dist N
	}
	all := make([]scored, len(elems))
	for i := range elems {
		all[i] = scored{idx: i, dist: handle(broccoli.ProtectedFor[N](&elems[i]))}
	}
	// Insertion sort: n is expected small in tests, and this avoids
	// pulling in a second sort dependency for an oracle only used by
	// test code.
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].dist < all[j-1].dist; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	if k > len(all) {
		k = len(all)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = all[i].idx
	}
	return out
}

// RectWindowNaive returns the indices of every element in elems whose
// rectangle intersects query, by brute force.
func RectWindowNaive[N broccoli.Num, T broccoli.Bounded[N]](elems []T, query broccoli.Rect[N]) []int {
	var out []int
	for i := range elems {
		if elems[i].Rect().Intersects(query) {
			out = append(out, i)
		}
	}
	return out
}
