// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli

import "golang.org/x/exp/constraints"

// Num is the scalar coordinate type a tree is built over: any signed
// integer or floating-point type. Floating-point coordinates must be
// finite (not NaN, not +/-Inf) for the whole lifetime of the tree; this
// is a caller precondition that neither the core nor the assert package
// checks.
type Num interface {
	constraints.Signed | constraints.Float
}
