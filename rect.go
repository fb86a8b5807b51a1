// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

// Interval is a closed 1D range [Start,End]. Start must be <= End; the
// core never constructs an Interval that violates this from finite
// input, but does not defend against a caller-supplied Rect that does.
type Interval[N Num] struct {
	Start N
	End   N
}

// Intersects reports whether two closed intervals overlap, including at
// a shared endpoint.
func (iv Interval[N]) Intersects(o Interval[N]) bool {
	return iv.Start <= o.End && o.Start <= iv.End
}

// Contains reports whether v falls within the closed interval.
func (iv Interval[N]) Contains(v N) bool {
	return iv.Start <= v && v <= iv.End
}

// union returns the tightest interval containing both iv and o.
func (iv Interval[N]) union(o Interval[N]) Interval[N] {
	start, end := iv.Start, iv.End
	if o.Start < start {
		start = o.Start
	}
	if o.End > end {
		end = o.End
	}
	return Interval[N]{Start: start, End: end}
}

// Rect is an axis-aligned bounding box: two ordered intervals. Callers
// must supply X.Start<=X.End and Y.Start<=Y.End, with finite coordinates
// for floating-point N; this is not checked.
type Rect[N Num] struct {
	X Interval[N]
	Y Interval[N]
}

// NewRect builds a Rect from raw bounds, ordering each axis defensively
// (the source data may come from user code that hasn't normalized it).
func NewRect[N Num](x0, x1, y0, y1 N) Rect[N] {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect[N]{X: Interval[N]{Start: x0, End: x1}, Y: Interval[N]{Start: y0, End: y1}}
}

// Range returns the interval of the rectangle along the given axis.
func (r Rect[N]) Range(a Axis) Interval[N] {
	if a == X {
		return r.X
	}
	return r.Y
}

// Intersects reports whether two rectangles overlap on both axes
// (closed-interval test).
func (r Rect[N]) Intersects(o Rect[N]) bool {
	return r.X.Intersects(o.X) && r.Y.Intersects(o.Y)
}

// Contains reports whether the point (x,y) lies within the rectangle.
func (r Rect[N]) Contains(x, y N) bool {
	return r.X.Contains(x) && r.Y.Contains(y)
}

// union returns the tightest rectangle containing both r and o.
func (r Rect[N]) union(o Rect[N]) Rect[N] {
	return Rect[N]{X: r.X.union(o.X), Y: r.Y.union(o.Y)}
}
