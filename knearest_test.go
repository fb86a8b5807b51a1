// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"sort"
	"testing"

	"github.com/Byron/broccoli"
	"github.com/Byron/broccoli/assert"
	"github.com/stretchr/testify/require"
)

func distToRect(x, y int, r broccoli.Rect[int]) int {
	dx := 0
	switch {
	case x < r.X.Start:
		dx = r.X.Start - x
	case x > r.X.End:
		dx = x - r.X.End
	}
	dy := 0
	switch {
	case y < r.Y.Start:
		dy = r.Y.Start - y
	case y > r.Y.End:
		dy = y - r.Y.End
	}
	return dx*dx + dy*dy
}

func TestKNearestMatchesNaiveOracleDistances(t *testing.T) {
	const qx, qy = 50, 50
	handle := func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) int {
		return distToRect(qx, qy, p.Rect())
	}

	for _, seed := range []uint64{51, 52, 53} {
		elems := randBoxes(120, 100, seed)
		tree := broccoli.New[int](elems)

		got := broccoli.KNearest[int](tree, qx, qy, 5, handle)
		wantIdx := assert.KNearestNaive[int](elems, 5, handle)

		require.Len(t, got, 5)
		gotDists := make([]int, len(got))
		for i, r := range got {
			gotDists[i] = r.Dist
		}
		wantDists := make([]int, len(wantIdx))
		for i, idx := range wantIdx {
			wantDists[i] = handle(broccoli.ProtectedFor[int](&elems[idx]))
		}
		sort.Ints(gotDists)
		sort.Ints(wantDists)
		require.Equal(t, wantDists, gotDists, "seed %d", seed)
	}
}

func TestKNearestAscendingOrder(t *testing.T) {
	elems := randBoxes(80, 60, 54)
	tree := broccoli.New[int](elems)
	handle := func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) int {
		return distToRect(30, 30, p.Rect())
	}

	got := broccoli.KNearest[int](tree, 30, 30, 10, handle)
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1].Dist, got[i].Dist)
	}
}

func TestKNearestMoreThanAvailable(t *testing.T) {
	elems := randBoxes(3, 20, 55)
	tree := broccoli.New[int](elems)
	handle := func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) int {
		return distToRect(0, 0, p.Rect())
	}

	got := broccoli.KNearest[int](tree, 0, 0, 50, handle)
	require.Len(t, got, 3)
}

func TestKNearestZero(t *testing.T) {
	elems := randBoxes(10, 20, 56)
	tree := broccoli.New[int](elems)
	handle := func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) int {
		return distToRect(0, 0, p.Rect())
	}
	require.Nil(t, broccoli.KNearest[int](tree, 0, 0, 0, handle))
}
