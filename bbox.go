// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

// BBox is a ready-made element type pairing a rectangle with an inner
// payload, for callers who don't want to define their own Bounded type.
// Mirrors the shape of the original's bbox.rs: rect and payload are
// disjoint fields, so BBox satisfies both Bounded and BoundedPayload.
type BBox[N Num, I any] struct {
	R Rect[N]
	I I
}

// NewBBox constructs a BBox pairing rect with an inner payload.
func NewBBox[N Num, I any](rect Rect[N], inner I) BBox[N, I] {
	return BBox[N, I]{R: rect, I: inner}
}

// Rect implements Bounded.
func (b *BBox[N, I]) Rect() Rect[N] { return b.R }

// PayloadMut implements BoundedPayload.
func (b *BBox[N, I]) PayloadMut() *I { return &b.I }
