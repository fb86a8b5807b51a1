// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package assert

import (
	"fmt"

	"github.com/Byron/broccoli"
	"github.com/bits-and-blooms/bitset"
)

// subtreeSize mirrors the core's own unexported formula for the number
// of array slots a complete subtree of the given remaining height
// occupies; duplicated here rather than exported from the core just for
// the validator.
func subtreeSize(remainingHeight int) int {
	if remainingHeight <= 0 {
		return 0
	}
	return (1 << uint(remainingHeight)) - 1
}

// ValidateTree checks a built tree against its structural invariants:
//
//  1. every element originally passed to Build appears in the tree
//     exactly once (no drops, no duplicates);
//  2. a node's Cont is nil iff its Range is empty;
//  3. a leaf's Div is nil;
//  4. when a node's Div is present, every element in its left subtree
//     ends strictly before Div and every element in its right subtree
//     starts strictly after it, on the node's axis;
//  5. a node's Range is sorted by start coordinate on the node's own
//     axis.
//
// original must be comparable and must be the exact slice passed to
// Build (or equal to it element-for-element); ValidateTree uses value
// identity, not pointer identity, to track coverage, so original must
// not contain duplicate values.
func ValidateTree[N broccoli.Num, T interface {
	broccoli.Bounded[N]
	comparable
}](original []T, tree *broccoli.Tree[N, T]) error {
	index := make(map[T]int, len(original))
	for i, e := range original {
		if _, dup := index[e]; dup {
			return fmt.Errorf("assert: ValidateTree requires distinct original elements, found duplicate at index %d", i)
		}
		index[e] = i
	}

	seen := bitset.New(uint(len(original)))
	nodes := tree.GetNodes()
	axis := tree.Axis()

	var walk func(idx, remainingHeight int, axis broccoli.Axis) error
	walk = func(idx, remainingHeight int, axis broccoli.Axis) error {
		node := nodes[idx]

		if (node.Cont == nil) != (len(node.Range) == 0) {
			return fmt.Errorf("assert: node %d: Cont nil-ness disagrees with Range emptiness", idx)
		}

		isLeaf := remainingHeight <= 1
		if isLeaf && node.Div != nil {
			return fmt.Errorf("assert: node %d: leaf has non-nil Div", idx)
		}

		var prevStart N
		havePrev := false
		for i, e := range node.Range {
			iv := e.Rect().Range(axis)
			if havePrev && iv.Start < prevStart {
				return fmt.Errorf("assert: node %d: Range not sorted by start at position %d", idx, i)
			}
			prevStart, havePrev = iv.Start, true

			origIdx, ok := index[e]
			if !ok {
				return fmt.Errorf("assert: node %d: element at position %d not found in original slice", idx, i)
			}
			if seen.Test(uint(origIdx)) {
				return fmt.Errorf("assert: element at original index %d appears more than once in the tree", origIdx)
			}
			seen.Set(uint(origIdx))
		}

		if isLeaf {
			return nil
		}

		// rightChildIndex/subtreeSize are unexported; recompute the same
		// formula here rather than widen the core's API surface just for
		// the validator.
		li := idx + 1
		ri := idx + 1 + subtreeSize(remainingHeight-1)
		nextAxis := axis.Next()

		if node.Div != nil {
			div := *node.Div
			if err := checkChildBound(nodes, li, remainingHeight-1, nextAxis, axis, div, true); err != nil {
				return err
			}
			if err := checkChildBound(nodes, ri, remainingHeight-1, nextAxis, axis, div, false); err != nil {
				return err
			}
		}

		if err := walk(li, remainingHeight-1, nextAxis); err != nil {
			return err
		}
		return walk(ri, remainingHeight-1, nextAxis)
	}

	if err := walk(0, tree.GetHeight(), axis); err != nil {
		return err
	}

	if seen.Count() != uint(len(original)) {
		return fmt.Errorf("assert: tree covers %d of %d original elements", seen.Count(), len(original))
	}
	return nil
}

// checkChildBound recursively verifies invariant 4: every element
// anywhere within the subtree rooted at idx respects div on parentAxis,
// either entirely left of it (isLeftChild) or entirely right.
func checkChildBound[N broccoli.Num, T broccoli.Bounded[N]](nodes []broccoli.Node[N, T], idx, remainingHeight int, axis, parentAxis broccoli.Axis, div N, isLeftChild bool) error {
	node := nodes[idx]
	for _, e := range node.Range {
		iv := e.Rect().Range(parentAxis)
		if isLeftChild && iv.End >= div {
			return fmt.Errorf("assert: node %d: element with end %v on axis %v reaches left-child divider %v", idx, iv.End, parentAxis, div)
		}
		if !isLeftChild && iv.Start <= div {
			return fmt.Errorf("assert: node %d: element with start %v on axis %v reaches right-child divider %v", idx, iv.Start, parentAxis, div)
		}
	}
	if remainingHeight <= 1 || node.Div == nil {
		return nil
	}
	li := idx + 1
	ri := idx + 1 + subtreeSize(remainingHeight-1)
	nextAxis := axis.Next()
	if err := checkChildBound(nodes, li, remainingHeight-1, nextAxis, parentAxis, div, isLeftChild); err != nil {
		return err
	}
	return checkChildBound(nodes, ri, remainingHeight-1, nextAxis, parentAxis, div, isLeftChild)
}
