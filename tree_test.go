// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"testing"

	"github.com/Byron/broccoli"
	"github.com/Byron/broccoli/internal/randgeom"
	"github.com/stretchr/testify/require"
)

func randBoxes(n, span int, seed uint64) []*broccoli.BBox[int, int] {
	rng := randgeom.Seeded(seed)
	out := make([]*broccoli.BBox[int, int], n)
	for i := 0; i < n; i++ {
		x0, x1, y0, y1 := randgeom.Rect(rng, span)
		b := broccoli.NewBBox(broccoli.NewRect(x0, x1, y0, y1), i)
		out[i] = &b
	}
	return out
}

func TestNewEmptyTree(t *testing.T) {
	tree := broccoli.New[int]([]*broccoli.BBox[int, int]{})
	require.Equal(t, 1, tree.GetHeight())
	require.GreaterOrEqual(t, tree.NumNodes(), 1)
	require.Equal(t, broccoli.Y, tree.Axis())
}

func TestNewWithAxis(t *testing.T) {
	elems := randBoxes(8, 100, 1)
	tree := broccoli.NewWithAxis[int](broccoli.X, elems)
	require.Equal(t, broccoli.X, tree.Axis())
}

func TestBuildIsAPermutation(t *testing.T) {
	elems := randBoxes(200, 500, 2)
	want := make(map[int]bool, len(elems))
	for _, e := range elems {
		want[e.I] = true
	}

	tree := broccoli.New[int](elems)
	got := make(map[int]bool, len(elems))
	for _, node := range tree.GetNodes() {
		for _, e := range node.Range {
			got[e.I] = true
		}
	}
	require.Equal(t, want, got)
}

func TestNewParallelMatchesSequentialNodeCount(t *testing.T) {
	elems := randBoxes(500, 1000, 3)
	elemsCopy := make([]*broccoli.BBox[int, int], len(elems))
	copy(elemsCopy, elems)

	seq := broccoli.New[int](elems)
	par := broccoli.NewParallel[int](elemsCopy)

	require.Equal(t, seq.NumNodes(), par.NumNodes())
	require.Equal(t, seq.GetHeight(), par.GetHeight())
}
