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

func TestForAllIntersectRectMatchesNaiveOracle(t *testing.T) {
	for _, seed := range []uint64{21, 22, 23} {
		elems := randBoxes(200, 80, seed)
		tree := broccoli.New[int](elems)
		query := broccoli.NewRect(10, 40, 10, 40)

		var got []int
		broccoli.ForAllIntersectRect[int](tree, query, func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) {
			got = append(got, *broccoli.PayloadMut[int, int](p))
		})
		want := assert.RectWindowNaive[int](elems, query)

		sort.Ints(got)
		sort.Ints(want)
		require.Equal(t, want, got)
	}
}

func TestForAllInRectIsSubsetOfIntersect(t *testing.T) {
	elems := randBoxes(150, 60, 24)
	tree := broccoli.New[int](elems)
	query := broccoli.NewRect(5, 50, 5, 50)

	inRect := map[int]bool{}
	broccoli.ForAllInRect[int](tree, query, func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) {
		inRect[*broccoli.PayloadMut[int, int](p)] = true
	})
	intersecting := map[int]bool{}
	broccoli.ForAllIntersectRect[int](tree, query, func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) {
		intersecting[*broccoli.PayloadMut[int, int](p)] = true
	})

	for id := range inRect {
		require.True(t, intersecting[id], "element %d reported as fully contained but not as intersecting", id)
	}
}

func TestForAllNotInRectIsComplementOfIntersect(t *testing.T) {
	elems := randBoxes(150, 60, 25)
	tree := broccoli.New[int](elems)
	query := broccoli.NewRect(5, 50, 5, 50)

	notIn := map[int]bool{}
	broccoli.ForAllNotInRect[int](tree, query, func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) {
		notIn[*broccoli.PayloadMut[int, int](p)] = true
	})
	intersecting := map[int]bool{}
	broccoli.ForAllIntersectRect[int](tree, query, func(p broccoli.Protected[int, *broccoli.BBox[int, int]]) {
		intersecting[*broccoli.PayloadMut[int, int](p)] = true
	})

	require.Equal(t, len(elems), len(notIn)+len(intersecting))
	for id := range notIn {
		require.False(t, intersecting[id])
	}
}
