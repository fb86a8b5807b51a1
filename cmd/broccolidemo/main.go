// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

// Command broccolidemo builds a tree over randomly generated rectangles
// and reports collision-pair counts and tree height, as a smoke test of
// the library outside of the test suite.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Byron/broccoli"
	"github.com/Byron/broccoli/internal/randgeom"
)

func main() {
	n := flag.Int("n", 10000, "number of random rectangles")
	span := flag.Int("span", 1000, "coordinate span each rectangle is drawn from")
	seed := flag.Uint64("seed", 1, "PRNG seed")
	parallel := flag.Bool("parallel", false, "build and query using the parallel code paths")
	flag.Parse()

	rng := randgeom.Seeded(*seed)
	elems := make([]*broccoli.BBox[int, int], *n)
	for i := range elems {
		x0, x1, y0, y1 := randgeom.Rect(rng, *span)
		b := broccoli.NewBBox(broccoli.NewRect(x0, x1, y0, y1), i)
		elems[i] = &b
	}

	start := time.Now()
	var tree *broccoli.Tree[int, *broccoli.BBox[int, int]]
	if *parallel {
		tree = broccoli.NewParallel[int](elems)
	} else {
		tree = broccoli.New[int](elems)
	}
	buildTime := time.Since(start)

	count := 0
	start = time.Now()
	handle := func(a, b broccoli.Protected[int, *broccoli.BBox[int, int]]) {
		count++
	}
	if *parallel {
		broccoli.FindCollisionPairsParallel[int](tree, broccoli.DefaultParallelPolicy(), handle)
	} else {
		broccoli.FindCollisionPairs[int](tree, handle)
	}
	queryTime := time.Since(start)

	fmt.Printf("elements=%d height=%d collisions=%d build=%s query=%s\n",
		*n, tree.GetHeight(), count, buildTime, queryTime)

	if *n > 200000 {
		log.Println("warning: n this large may take a while under -race")
	}
}
