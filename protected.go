// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

import "iter"

// Protected is a protected mutable reference to a single tree element.
// It exposes read access to the element's rectangle and, via the free
// function [PayloadMut], mutable access to a BoundedPayload element's
// inner payload. It deliberately does not expose the wrapped pointer:
// there is no way to overwrite the whole element through a Protected
// value, only its payload. Collision handlers receive two Protected
// arguments simultaneously; if either could overwrite the whole
// element, a rectangle could change mid-query and break every tree
// invariant that depends on rectangles being stable.
//
// The Go language has no ownership system to enforce this at compile
// time the way the source's PMut<'a,T> newtype does; Protected achieves
// the same guarantee by never handing the caller anything but a
// payload-only handle.
type Protected[N Num, T Bounded[N]] struct {
	ptr *T
}

func newProtected[N Num, T Bounded[N]](ptr *T) Protected[N, T] {
	return Protected[N, T]{ptr: ptr}
}

// ProtectedFor wraps ptr as a Protected reference. Exported for the
// assert package's brute-force oracles, which must hand query handlers
// the same Protected type the real tree queries do; ordinary callers
// never need it, since every Protected they see already comes from a
// tree query.
func ProtectedFor[N Num, T Bounded[N]](ptr *T) Protected[N, T] {
	return newProtected[N](ptr)
}

// Rect returns the element's rectangle.
func (p Protected[N, T]) Rect() Rect[N] {
	return (*p.ptr).Rect()
}

// PayloadMut returns a mutable reference to a BoundedPayload element's
// inner payload. It is a free function rather than a method because Go
// methods cannot introduce new type parameters (here, I); this is the
// idiomatic way to add an optional capability on top of a generic type.
func PayloadMut[N Num, I any, T BoundedPayload[N, I]](p Protected[N, T]) *I {
	return (*p.ptr).PayloadMut()
}

// ProtectedSlice is a protected mutable reference to a contiguous run of
// tree elements - a node's range, or a sub-range of it during a sweep.
// Like Protected, it never exposes the backing []T, only per-element
// Protected handles and further sub-slicing.
type ProtectedSlice[N Num, T Bounded[N]] struct {
	s []T
}

func newProtectedSlice[N Num, T Bounded[N]](s []T) ProtectedSlice[N, T] {
	return ProtectedSlice[N, T]{s: s}
}

// NewProtectedSlice wraps s as a ProtectedSlice. Exported for callers
// (and the assert package) that want the same split/sub-range surface a
// tree query gets, over their own element slice.
func NewProtectedSlice[N Num, T Bounded[N]](s []T) ProtectedSlice[N, T] {
	return newProtectedSlice[N](s)
}

// Len returns the number of elements in the slice.
func (ps ProtectedSlice[N, T]) Len() int { return len(ps.s) }

// Index returns a Protected reference to the element at i.
func (ps ProtectedSlice[N, T]) Index(i int) Protected[N, T] {
	return Protected[N, T]{ptr: &ps.s[i]}
}

// SplitFirst splits off the first element, returning ok=false on an
// empty slice.
func (ps ProtectedSlice[N, T]) SplitFirst() (first Protected[N, T], rest ProtectedSlice[N, T], ok bool) {
	if len(ps.s) == 0 {
		return Protected[N, T]{}, ps, false
	}
	return Protected[N, T]{ptr: &ps.s[0]}, ProtectedSlice[N, T]{s: ps.s[1:]}, true
}

// Sub returns the sub-range [lo,hi).
func (ps ProtectedSlice[N, T]) Sub(lo, hi int) ProtectedSlice[N, T] {
	return ProtectedSlice[N, T]{s: ps.s[lo:hi]}
}

// All iterates the slice, yielding each element's index and Protected
// reference. Matches the `iter.Seq2`-returning style bart's own node
// traversal uses (see noder.nodeReader.allChildren).
func (ps ProtectedSlice[N, T]) All() iter.Seq2[int, Protected[N, T]] {
	return func(yield func(int, Protected[N, T]) bool) {
		for i := range ps.s {
			if !yield(i, Protected[N, T]{ptr: &ps.s[i]}) {
				return
			}
		}
	}
}
