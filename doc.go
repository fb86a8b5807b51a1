// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

// Package broccoli implements a kd-tree broad-phase for 2D axis-aligned
// bounding box (AABB) collision detection.
//
// Unlike a textbook kd-tree, every node may retain a bucket of elements
// that straddle its divider rather than forcing each element to one
// side; this trades a small amount of extra work at each node for a
// tree that never needs to grow the bounding box of a subtree past what
// its own elements occupy. The tree is laid out as a single
// array of Node in depth-first pre-order, built once via New (or a
// Builder for more control) and queried many times through
// FindCollisionPairs, RayCast, KNearest, and the ForAll* rectangle
// queries.
//
// Elements only need to satisfy Bounded - a single Rect() method - to be
// stored in a tree. BoundedPayload additionally exposes a mutable inner
// field disjoint from the rectangle, for callers who want collision
// handlers or k-nearest visitors to mutate something about the element
// found. BBox is a ready-made Bounded/BoundedPayload implementation for
// callers who don't want to define their own.
//
// A built tree borrows its elements; TreeOwned and TreeRefInd (owned.go)
// bundle a tree with its backing storage for callers who would rather
// not track the two separately.
//
// Every query accepts a Protected reference rather than a raw pointer or
// slice index: it is read-only on the rectangle and, via the package
// free function PayloadMut, writable only on the payload. This keeps a
// handler from ever reordering or replacing an element out from under
// the tree mid-query, which would violate the invariants the tree's own
// pruning logic depends on.
//
// The assert subpackage offers brute-force reference implementations of
// every query and a tree structural validator, useful in tests and
// during development; it is deliberately excluded from the core package
// so release builds never pay for it.
package broccoli
