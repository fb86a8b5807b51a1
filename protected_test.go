// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"testing"

	"github.com/Byron/broccoli"
	"github.com/stretchr/testify/require"
)

func TestPayloadMutActuallyMutates(t *testing.T) {
	elems := randBoxes(1, 10, 71)
	p := broccoli.ProtectedFor[int](&elems[0])

	*broccoli.PayloadMut[int, int](p) = 42
	require.Equal(t, 42, elems[0].I)
}

func TestProtectedSliceSplitFirstAndAll(t *testing.T) {
	elems := randBoxes(5, 20, 72)
	slice := broccoli.NewProtectedSlice[int](elems)

	require.Equal(t, 5, slice.Len())

	first, rest, ok := slice.SplitFirst()
	require.True(t, ok)
	require.Equal(t, elems[0].Rect(), first.Rect())
	require.Equal(t, 4, rest.Len())

	count := 0
	for i, p := range slice.All() {
		require.Equal(t, elems[i].Rect(), p.Rect())
		count++
	}
	require.Equal(t, 5, count)

	empty := broccoli.NewProtectedSlice[int]([]*broccoli.BBox[int, int]{})
	_, _, ok = empty.SplitFirst()
	require.False(t, ok)
}
