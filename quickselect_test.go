// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"testing"

	"github.com/Byron/broccoli"
	"github.com/stretchr/testify/require"
)

// TestBuildLeavesEveryNodeRangeSortedByStart exercises the unexported
// sortByStart indirectly, by rebuilding a tree and recursively checking
// each node's Range is ascending on the axis that node actually split
// on (axes alternate with depth, so a plain GetNodes() loop can't know
// a node's own axis without retracing the same pre-order descent Build
// used).
func TestBuildLeavesEveryNodeRangeSortedByStart(t *testing.T) {
	elems := randBoxes(500, 300, 61)
	tree := broccoli.New[int](elems)
	nodes := tree.GetNodes()

	subtreeSize := func(h int) int {
		if h <= 0 {
			return 0
		}
		return (1 << uint(h)) - 1
	}

	var walk func(idx, remainingHeight int, axis broccoli.Axis)
	walk = func(idx, remainingHeight int, axis broccoli.Axis) {
		node := nodes[idx]
		for i := 1; i < len(node.Range); i++ {
			prev := node.Range[i-1].Rect().Range(axis).Start
			cur := node.Range[i].Rect().Range(axis).Start
			require.LessOrEqual(t, prev, cur, "node %d not sorted on axis %v at position %d", idx, axis, i)
		}
		if remainingHeight <= 1 {
			return
		}
		li := idx + 1
		ri := idx + 1 + subtreeSize(remainingHeight-1)
		walk(li, remainingHeight-1, axis.Next())
		walk(ri, remainingHeight-1, axis.Next())
	}
	walk(0, tree.GetHeight(), tree.Axis())
}
