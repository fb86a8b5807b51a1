// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

import "container/heap"

// KNearestHandler computes the distance from the query point to elem's
// rectangle (typically the distance to its nearest edge or corner, zero
// if the point is inside). Smaller is nearer.
type KNearestHandler[N Num, T Bounded[N]] func(elem Protected[N, T]) N

// KNearestResult is one element of a k-nearest search, paired with its
// distance from the query point.
type KNearestResult[N Num, T Bounded[N]] struct {
	Elem Protected[N, T]
	Dist N
}

// KNearest finds the k elements nearest to (x,y) by the distance handle
// computes, in ascending distance order. It maintains a bounded max-heap
// of the best k candidates seen so far and prunes any subtree whose
// divider is already farther than the current worst kept candidate once
// the heap is full.
func KNearest[N Num, T Bounded[N]](t *Tree[N, T], x, y N, k int, handle KNearestHandler[N, T]) []KNearestResult[N, T] {
	if k <= 0 {
		return nil
	}
	h := &knnHeap[N, T]{}
	knearestNode[N](t.nodes, 0, t.axis, t.height, x, y, k, handle, h)

	out := make([]KNearestResult[N, T], len(h.items))
	for i := len(h.items) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(KNearestResult[N, T])
	}
	return out
}

func knearestNode[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight int, x, y N, k int, handle KNearestHandler[N, T], h *knnHeap[N, T]) {
	node := nodes[idx]

	for i := range node.Range {
		e := &node.Range[i]
		p := newProtected[N](e)
		d := handle(p)
		considerCandidate(h, k, KNearestResult[N, T]{Elem: p, Dist: d})
	}

	if remainingHeight <= 1 || node.Div == nil {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()
	div := *node.Div

	origin := x
	if axis == Y {
		origin = y
	}

	nearLeft := origin <= div
	visit := func(childIdx int) {
		knearestNode[N](nodes, childIdx, nextAxis, remainingHeight-1, x, y, k, handle, h)
	}

	near, far := li, ri
	if !nearLeft {
		near, far = ri, li
	}
	visit(near)

	axisDist := div - origin
	if axisDist < 0 {
		axisDist = -axisDist
	}
	if h.Len() < k || axisDist <= h.items[0].Dist {
		visit(far)
	}
}

func considerCandidate[N Num, T Bounded[N]](h *knnHeap[N, T], k int, cand KNearestResult[N, T]) {
	if h.Len() < k {
		heap.Push(h, cand)
		return
	}
	if cand.Dist < h.items[0].Dist {
		h.items[0] = cand
		heap.Fix(h, 0)
	}
}

// knnHeap is a max-heap on Dist, bounded externally to size k by
// considerCandidate, giving container/heap-backed bounded top-k
// selection - the pack's idiomatic way to keep a rolling best-k (mirrors
// the standard library's own heap.Interface pattern; the original
// source uses a binary heap crate for the same purpose).
type knnHeap[N Num, T Bounded[N]] struct {
	items []KNearestResult[N, T]
}

func (h *knnHeap[N, T]) Len() int { return len(h.items) }
func (h *knnHeap[N, T]) Less(i, j int) bool {
	return h.items[i].Dist > h.items[j].Dist
}
func (h *knnHeap[N, T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *knnHeap[N, T]) Push(x any)    { h.items = append(h.items, x.(KNearestResult[N, T])) }
func (h *knnHeap[N, T]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}
