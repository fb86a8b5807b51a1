// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

// Ray is a half-infinite line starting at (X,Y) pointing in direction
// (DX,DY). DX and DY need not be normalized; a zero direction component
// means the ray travels parallel to that axis.
type Ray[N Num] struct {
	X, Y   N
	DX, DY N
}

// RayCastHandler is asked to confirm a candidate already known to have
// its rectangle crossed by ray, returning the true hit distance along
// the ray and ok=true, or ok=false to reject the candidate outright.
type RayCastHandler[N Num, T Bounded[N]] func(elem Protected[N, T]) (dist N, ok bool)

// RayCastResult is one of the nearest hits found by RayCast.
type RayCastResult[N Num, T Bounded[N]] struct {
	Elem Protected[N, T]
	Dist N
}

// rayCastState accumulates every hit tied for the minimum distance seen
// so far, discarding the set and starting over whenever a strictly
// closer hit arrives.
type rayCastState[N Num, T Bounded[N]] struct {
	found   bool
	dist    N
	results []RayCastResult[N, T]
}

func (s *rayCastState[N, T]) consider(p Protected[N, T], dist N) {
	switch {
	case !s.found || dist < s.dist:
		s.found = true
		s.dist = dist
		s.results = append(s.results[:0], RayCastResult[N, T]{Elem: p, Dist: dist})
	case dist == s.dist:
		s.results = append(s.results, RayCastResult[N, T]{Elem: p, Dist: dist})
	}
}

// RayCast finds every element hit by ray at the minimum distance. It
// descends the tree in nearest-first order, visiting the child the
// ray's origin is on the same side of first, and prunes the far child
// once its divider is provably farther than the best hit distance found
// so far. Ties at the same minimum distance are all returned.
func RayCast[N Num, T Bounded[N]](t *Tree[N, T], ray Ray[N], handle RayCastHandler[N, T]) ([]RayCastResult[N, T], bool) {
	var state rayCastState[N, T]
	rayCastNode[N](t.nodes, 0, t.axis, t.height, ray, handle, &state)
	return state.results, state.found
}

func rayCastNode[N Num, T Bounded[N]](nodes []Node[N, T], idx int, axis Axis, remainingHeight int, ray Ray[N], handle RayCastHandler[N, T], state *rayCastState[N, T]) {
	node := nodes[idx]

	for i := range node.Range {
		e := &node.Range[i]
		entry, ok := rayRectEntry[N](ray, (*e).Rect())
		if !ok || (state.found && entry > state.dist) {
			continue
		}
		p := newProtected[N](e)
		dist, ok := handle(p)
		if ok {
			state.consider(p, dist)
		}
	}

	if remainingHeight <= 1 || node.Div == nil {
		return
	}

	li, ri := leftChildIndex(idx), rightChildIndex(idx, remainingHeight)
	nextAxis := axis.Next()
	div := *node.Div

	origin := rayOnAxis(ray, axis)
	dir := rayDirOnAxis(ray, axis)

	nearLeft := origin <= div

	visit := func(childIdx int) {
		rayCastNode[N](nodes, childIdx, nextAxis, remainingHeight-1, ray, handle, state)
	}

	near, far := li, ri
	if !nearLeft {
		near, far = ri, li
	}
	visit(near)

	tDiv, crosses := rayAxisCrossing(origin, dir, div)
	if crosses && (!state.found || tDiv <= state.dist) {
		visit(far)
	}
}

func rayOnAxis[N Num](ray Ray[N], a Axis) N {
	if a == X {
		return ray.X
	}
	return ray.Y
}

func rayDirOnAxis[N Num](ray Ray[N], a Axis) N {
	if a == X {
		return ray.DX
	}
	return ray.DY
}

// rayAxisCrossing returns the non-negative coordinate distance |div-origin|
// on one axis (not divided by dir) that the ray covers before reaching
// div, with crosses=false when the ray moves away from div. When dir
// is zero the ray never changes that coordinate, so it crosses only if
// it is already exactly at div (crosses=true, distance 0) - otherwise it
// can never reach the far side and the subtree is pruned.
func rayAxisCrossing[N Num](origin, dir, div N) (dist N, crosses bool) {
	if dir == 0 {
		if origin == div {
			return 0, true
		}
		return 0, false
	}
	if dir > 0 {
		if div < origin {
			return 0, false
		}
		return div - origin, true
	}
	if div > origin {
		return 0, false
	}
	return origin - div, true
}

// rayRectEntry computes the ray's entry distance into rect via the
// standard slab method, reporting ok=false if the ray never enters rect
// at a non-negative distance - rays are half-infinite, so intersections
// behind the origin don't count.
func rayRectEntry[N Num](ray Ray[N], rect Rect[N]) (N, bool) {
	var tmin, tmax N
	first := true

	for _, a := range [2]Axis{X, Y} {
		origin := rayOnAxis(ray, a)
		dir := rayDirOnAxis(ray, a)
		iv := rect.Range(a)

		var lo, hi N
		if dir == 0 {
			if !iv.Contains(origin) {
				return tmin, false
			}
			continue
		}
		t0, t1 := axisSlab(origin, dir, iv)
		lo, hi = t0, t1
		if first {
			tmin, tmax = lo, hi
			first = false
		} else {
			if lo > tmin {
				tmin = lo
			}
			if hi < tmax {
				tmax = hi
			}
		}
		if tmin > tmax {
			return tmin, false
		}
	}

	var zero N
	if first {
		// Ray is parallel to both axes (zero direction) and the origin
		// was inside both slabs the whole time: hits at distance zero.
		return zero, true
	}
	if tmax < zero {
		return zero, false
	}
	if tmin < zero {
		return zero, true
	}
	return tmin, true
}

func axisSlab[N Num](origin, dir N, iv Interval[N]) (N, N) {
	t0 := (iv.Start - origin) / dir
	t1 := (iv.End - origin) / dir
	if dir < 0 {
		t0, t1 = t1, t0
	}
	return t0, t1
}
