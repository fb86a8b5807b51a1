// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"testing"

	"github.com/Byron/broccoli"
	"github.com/stretchr/testify/require"
)

func TestTreeOwnedRoundTrips(t *testing.T) {
	elems := randBoxes(120, 200, 81)
	owned := broccoli.NewTreeOwned[int](elems)

	require.Equal(t, len(elems), len(owned.Elements()))
	require.Same(t, owned.AsTree(), owned.AsTreeMut())
	require.Equal(t, owned.AsTree().NumNodes(), owned.AsTreeMut().NumNodes())
}

type payload struct {
	ID int
}

func TestTreeRefIndBuildsOverIndirection(t *testing.T) {
	backing := make([]payload, 50)
	rects := make([]broccoli.Rect[int], 50)
	for i := range backing {
		backing[i] = payload{ID: i}
		rects[i] = broccoli.NewRect(i, i+1, i, i+1)
	}

	ref := broccoli.NewTreeRefInd[int](backing, func(p *payload) broccoli.Rect[int] {
		return rects[p.ID]
	})

	require.Equal(t, 50, len(ref.Elements()))
	require.Greater(t, ref.AsTree().NumNodes(), 0)

	count := 0
	for _, node := range ref.AsTree().GetNodes() {
		count += len(node.Range)
	}
	require.Equal(t, 50, count)
}

func TestTreeRefIndElementsMutPanics(t *testing.T) {
	backing := []payload{{ID: 0}}
	ref := broccoli.NewTreeRefInd[int](backing, func(p *payload) broccoli.Rect[int] {
		return broccoli.NewRect(0, 1, 0, 1)
	})

	require.PanicsWithValue(t,
		"broccoli: TreeRefInd.ElementsMut is not implemented upstream; semantics were never specified",
		func() { ref.ElementsMut() },
	)
}
