// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

// ForAllIntersectRect calls visit for every element whose rectangle
// intersects query.
func ForAllIntersectRect[N Num, T Bounded[N]](t *Tree[N, T], query Rect[N], visit func(Protected[N, T])) {
	walkRect[N](t.nodes, 0, t.axis, t.height, query, func(e Protected[N, T]) bool {
		return e.Rect().Intersects(query)
	}, visit)
}

// ForAllInRect calls visit for every element whose rectangle is fully
// contained within query.
func ForAllInRect[N Num, T Bounded[N]](t *Tree[N, T], query Rect[N], visit func(Protected[N, T])) {
	walkRect[N](t.nodes, 0, t.axis, t.height, query, func(e Protected[N, T]) bool {
		r := e.Rect()
		return query.X.Start <= r.X.Start && r.X.End <= query.X.End &&
			query.Y.Start <= r.Y.Start && r.Y.End <= query.Y.End
	}, visit)
}

// ForAllNotInRect calls visit for every element whose rectangle does not
// intersect query.
func ForAllNotInRect[N Num, T Bounded[N]](t *Tree[N, T], query Rect[N], visit func(Protected[N, T])) {
	walkAll[N](t.nodes, 0, t.height, func(e Protected[N, T]) bool {
		return !e.Rect().Intersects(query)
	}, visit)
}

// walkRect descends the tree pruning by cont/div against query, calling
// visit for each element satisfying pred. Pruning: a node's own Range is
// skipped when query's interval on the node's axis misses its cont
// interval; a child is skipped when query's interval lies entirely on
// the other side of the node's div.
func walkRect[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight int, query Rect[N], pred func(Protected[N, T]) bool, visit func(Protected[N, T])) {
	node := nodes[idx]
	qiv := query.Range(axis)

	if node.Cont != nil && !qiv.Intersects(*node.Cont) {
		// The straddler bucket cannot contain a hit, but descendants
		// might still be within range on this axis - fall through to
		// the usual div-based pruning below instead of returning.
	} else {
		for i := 0; i < len(node.Range); i++ {
			e := newProtected[N](&node.Range[i])
			if pred(e) {
				visit(e)
			}
		}
	}

	if remainingHeight <= 1 || node.Div == nil {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()
	div := *node.Div

	if qiv.Start <= div {
		walkRect[N](nodes, li, nextAxis, remainingHeight-1, query, pred, visit)
	}
	if div <= qiv.End {
		walkRect[N](nodes, ri, nextAxis, remainingHeight-1, query, pred, visit)
	}
}

// walkAll visits every element in the tree, used by ForAllNotInRect
// which cannot prune on the query rectangle (absence of overlap is not
// spatially localized the way presence is).
func walkAll[N Num, T Bounded[N]](nodes []Node[N, T], idx, remainingHeight int, pred func(Protected[N, T]) bool, visit func(Protected[N, T])) {
	node := nodes[idx]
	for i := 0; i < len(node.Range); i++ {
		e := newProtected[N](&node.Range[i])
		if pred(e) {
			visit(e)
		}
	}
	if remainingHeight <= 1 {
		return
	}
	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	walkAll[N, T](nodes, li, remainingHeight-1, pred, visit)
	walkAll[N, T](nodes, ri, remainingHeight-1, pred, visit)
}
