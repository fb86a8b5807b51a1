// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

// DefaultBucket is the default target number of elements per leaf.
const DefaultBucket = 32

// Builder configures and runs the kd-tree build algorithm. The zero
// value is ready to use with DefaultBucket and an automatically
// computed height.
type Builder[N Num, T Bounded[N]] struct {
	// Bucket is the target leaf size. Zero means DefaultBucket.
	Bucket int
	// MaxHeight caps the computed height; zero means no cap.
	MaxHeight int
	// StartAxis is the axis the root node splits on. Zero value is X,
	// so callers wanting the documented default of Y must set this
	// explicitly, or use New/NewParallel which default it for them.
	StartAxis Axis
}

func (b Builder[N, T]) bucket() int {
	if b.Bucket <= 0 {
		return DefaultBucket
	}
	return b.Bucket
}

// Height returns the heuristic tree height for n elements:
// max(1, ceil(log2(n/bucket))+1), capped by MaxHeight if set.
func (b Builder[N, T]) Height(n int) int {
	bucket := b.bucket()
	h := 1
	if n > bucket {
		h = ceilLog2(ceilDiv(n, bucket)) + 1
	}
	if h < 1 {
		h = 1
	}
	if b.MaxHeight > 0 && h > b.MaxHeight {
		h = b.MaxHeight
	}
	return h
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// Build runs the build algorithm sequentially over elems, reordering
// elems in place and returning the resulting Tree. elems is borrowed by
// the returned Tree for its lifetime: the caller must not reorder it
// directly until the tree is discarded.
func (b Builder[N, T]) Build(elems []T) *Tree[N, T] {
	height := b.Height(len(elems))
	nodes := make([]Node[N, T], totalNodes(height))
	buildSequential[N, T](nodes, 0, b.StartAxis, height, b.bucket(), elems)
	return &Tree[N, T]{nodes: nodes, axis: b.StartAxis, height: height}
}

// BuildParallel runs the build algorithm, forking across a
// work-stealing goroutine join per the given ParallelPolicy. Building is
// embarrassingly parallel per subtree since each recursive call owns a
// disjoint sub-slice of elems.
func (b Builder[N, T]) BuildParallel(elems []T, policy ParallelPolicy) *Tree[N, T] {
	height := b.Height(len(elems))
	nodes := make([]Node[N, T], totalNodes(height))
	buildParallel[N, T](nodes, 0, 0, b.StartAxis, height, b.bucket(), elems, policy)
	return &Tree[N, T]{nodes: nodes, axis: b.StartAxis, height: height}
}

// buildSequential implements the recursive build step. Each node's
// Range is left sorted by start coordinate on the node's axis; the
// collision finder's sweep-and-prune (oned.go) relies on this sort
// having already happened at build time rather than re-sorting on every
// query.
func buildSequential[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight, bucket int, s []T) {
	if remainingHeight <= 1 {
		sortByStart[N](axis, s)
		nodes[idx] = Node[N, T]{Range: s, Cont: computeCont[N](axis, s)}
		return
	}
	if len(s) <= bucket {
		sortByStart[N](axis, s)
		nodes[idx] = Node[N, T]{Range: s, Cont: computeCont[N](axis, s)}
		buildSequential[N, T](nodes, leftChildIndex(idx), axis.Next(), remainingHeight-1, bucket, nil)
		buildSequential[N, T](nodes, rightChildIndex(idx, remainingHeight), axis.Next(), remainingHeight-1, bucket, nil)
		return
	}

	left, middle, right, div := splitByMedian[N](axis, s)
	sortByStart[N](axis, middle)
	nodes[idx] = Node[N, T]{Range: middle, Cont: computeCont[N](axis, middle), Div: &div}
	buildSequential[N, T](nodes, leftChildIndex(idx), axis.Next(), remainingHeight-1, bucket, left)
	buildSequential[N, T](nodes, rightChildIndex(idx, remainingHeight), axis.Next(), remainingHeight-1, bucket, right)
}

func buildParallel[N Num, T Bounded[N]](nodes []Node[N, T], idx, depth int, axis Axis, remainingHeight, bucket int, s []T, policy ParallelPolicy) {
	if remainingHeight <= 1 {
		sortByStart[N](axis, s)
		nodes[idx] = Node[N, T]{Range: s, Cont: computeCont[N](axis, s)}
		return
	}
	if len(s) <= bucket {
		sortByStart[N](axis, s)
		nodes[idx] = Node[N, T]{Range: s, Cont: computeCont[N](axis, s)}
		recurseBuildChildren(nodes, idx, depth, axis, remainingHeight, bucket, nil, nil, policy)
		return
	}

	left, middle, right, div := splitByMedian[N](axis, s)
	sortByStart[N](axis, middle)
	nodes[idx] = Node[N, T]{Range: middle, Cont: computeCont[N](axis, middle), Div: &div}
	recurseBuildChildren(nodes, idx, depth, axis, remainingHeight, bucket, left, right, policy)
}

func recurseBuildChildren[N Num, T Bounded[N]](nodes []Node[N, T], idx, depth int, axis Axis, remainingHeight, bucket int, left, right []T, policy ParallelPolicy) {
	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	leftNodes := nodes[li:ri]
	rightNodes := nodes[ri:]
	nextAxis := axis.Next()

	if policy.ShouldFork(depth) {
		Join(
			func() { buildParallel[N, T](leftNodes, 0, depth+1, nextAxis, remainingHeight-1, bucket, left, policy) },
			func() { buildParallel[N, T](rightNodes, 0, depth+1, nextAxis, remainingHeight-1, bucket, right, policy) },
		)
		return
	}
	buildParallel[N, T](leftNodes, 0, depth+1, nextAxis, remainingHeight-1, bucket, left, policy)
	buildParallel[N, T](rightNodes, 0, depth+1, nextAxis, remainingHeight-1, bucket, right, policy)
}

// splitByMedian finds the median start m via quickselect, then three-way
// (Dutch-flag) partitions s into elements strictly left of m, straddlers
// containing m, and elements strictly right of m.
func splitByMedian[N Num, T Bounded[N]](axis Axis, s []T) (left, middle, right []T, div N) {
	k := len(s) / 2
	nthElementByStart[N](axis, s, k)
	div = s[k].Rect().Range(axis).Start

	lo, cur, hi := 0, 0, len(s)
	for cur < hi {
		iv := s[cur].Rect().Range(axis)
		switch {
		case iv.End < div:
			s[lo], s[cur] = s[cur], s[lo]
			lo++
			cur++
		case iv.Start > div:
			hi--
			s[cur], s[hi] = s[hi], s[cur]
		default:
			cur++
		}
	}
	return s[:lo], s[lo:hi], s[hi:], div
}
