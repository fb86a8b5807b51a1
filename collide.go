// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

import "github.com/Byron/broccoli/internal/prevec"

// FindCollisionPairs enumerates every pair of elements with intersecting
// rectangles exactly once, calling handle for each. Delivery order is
// tree pre-order then sweep order, but callers must not depend on it.
func FindCollisionPairs[N Num, T Bounded[N]](t *Tree[N, T], handle CollisionHandler[N, T]) {
	if len(t.nodes) == 0 {
		return
	}
	pool := prevec.New[*T]()
	collideNode[N, T](t.nodes, 0, t.axis, t.height, pool, handle)
}

// FindCollisionPairsParallel runs FindCollisionPairs, forking at each
// level per policy. handle may be called concurrently on disjoint
// element pairs - the protected reference discipline makes this safe,
// since each subtree's Range slices are disjoint - but handle's own
// captured state must tolerate concurrent use.
func FindCollisionPairsParallel[N Num, T Bounded[N]](t *Tree[N, T], policy ParallelPolicy, handle CollisionHandler[N, T]) {
	if len(t.nodes) == 0 {
		return
	}
	pool := prevec.New[*T]()
	collideNodeParallel[N, T](t.nodes, 0, 0, t.axis, t.height, pool, policy, handle)
}

// collideNode implements the outer pre-order traversal: at every node,
// run self-pairs (case 1), then anchor an inner scan over this node's
// own subtree for cross-pairs (case 2), then recurse into both children
// so each of them gets its own turn as anchor.
func collideNode[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight int, pool *prevec.Pool[*T], handle CollisionHandler[N, T]) {
	node := nodes[idx]

	sweep1D[N](pool, axis, node.Range, perpAxisHandler(axis, handle))

	if remainingHeight <= 1 {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()

	if node.Cont != nil {
		innerRecurse[N, T](nodes, li, nextAxis, remainingHeight-1, axis, node, pool, handle)
		innerRecurse[N, T](nodes, ri, nextAxis, remainingHeight-1, axis, node, pool, handle)
	}

	collideNode[N, T](nodes, li, nextAxis, remainingHeight-1, pool, handle)
	collideNode[N, T](nodes, ri, nextAxis, remainingHeight-1, pool, handle)
}

// innerRecurse walks the subtree rooted at idx looking for cross-pairs
// against anchor, pruning descent once a child's divider can no longer
// intersect anchor's bounding interval.
func innerRecurse[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight int, anchorAxis Axis, anchor Node[N, T], pool *prevec.Pool[*T], handle CollisionHandler[N, T]) {
	cur := nodes[idx]

	if axis == anchorAxis {
		sweepParallel1D[N](pool, axis, anchor.Range, cur.Range, perpAxisHandler(axis, handle))
	} else {
		sweepPerpendicular[N](anchorAxis, anchor.Range, cur.Range, handle)
	}

	if remainingHeight <= 1 || cur.Div == nil {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()

	if axis != anchorAxis {
		innerRecurse[N, T](nodes, li, nextAxis, remainingHeight-1, anchorAxis, anchor, pool, handle)
		innerRecurse[N, T](nodes, ri, nextAxis, remainingHeight-1, anchorAxis, anchor, pool, handle)
		return
	}

	div := *cur.Div
	if anchor.Cont.Start <= div {
		innerRecurse[N, T](nodes, li, nextAxis, remainingHeight-1, anchorAxis, anchor, pool, handle)
	}
	if div <= anchor.Cont.End {
		innerRecurse[N, T](nodes, ri, nextAxis, remainingHeight-1, anchorAxis, anchor, pool, handle)
	}
}

func collideNodeParallel[N Num, T Bounded[N]](nodes []Node[N, T], idx, depth int, axis Axis, remainingHeight int, pool *prevec.Pool[*T], policy ParallelPolicy, handle CollisionHandler[N, T]) {
	node := nodes[idx]

	// Self-pairs at the parent run before the fork, so both children can
	// be processed concurrently afterward without racing on this node's
	// own Range.
	sweep1D[N](pool, axis, node.Range, perpAxisHandler(axis, handle))

	if remainingHeight <= 1 {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()

	if node.Cont != nil {
		innerRecurse[N, T](nodes, li, nextAxis, remainingHeight-1, axis, node, pool, handle)
		innerRecurse[N, T](nodes, ri, nextAxis, remainingHeight-1, axis, node, pool, handle)
	}

	if policy.ShouldFork(depth) {
		// The forked goroutine gets a fresh scratch pool of its own.
		rightPool := prevec.New[*T]()
		Join(
			func() { collideNodeParallel[N, T](nodes, li, depth+1, nextAxis, remainingHeight-1, pool, policy, handle) },
			func() { collideNodeParallel[N, T](nodes, ri, depth+1, nextAxis, remainingHeight-1, rightPool, policy, handle) },
		)
		return
	}
	collideNodeParallel[N, T](nodes, li, depth+1, nextAxis, remainingHeight-1, pool, policy, handle)
	collideNodeParallel[N, T](nodes, ri, depth+1, nextAxis, remainingHeight-1, pool, policy, handle)
}
