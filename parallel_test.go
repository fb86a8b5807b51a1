// Copyright (c) 2025 Byron
// SPDX-License-Identifier: MIT

package broccoli_test

import (
	"sync/atomic"
	"testing"

	"github.com/Byron/broccoli"
	"github.com/stretchr/testify/require"
)

func TestParallelPolicyShouldFork(t *testing.T) {
	p := broccoli.NewParallelPolicy(4)
	require.True(t, p.ShouldFork(0))
	require.False(t, p.ShouldFork(1000))
}

func TestSequentialPolicyNeverForks(t *testing.T) {
	p := broccoli.Sequential()
	require.False(t, p.ShouldFork(0))
}

func TestJoinRunsBothSides(t *testing.T) {
	var a, b int32
	broccoli.Join(
		func() { atomic.StoreInt32(&a, 1) },
		func() { atomic.StoreInt32(&b, 1) },
	)
	require.Equal(t, int32(1), atomic.LoadInt32(&a))
	require.Equal(t, int32(1), atomic.LoadInt32(&b))
}

type sumSplitter struct {
	total int
}

func (s *sumSplitter) Div() (*sumSplitter, *sumSplitter) {
	return &sumSplitter{}, &sumSplitter{}
}

func (s *sumSplitter) Merge(left, right *sumSplitter) {
	s.total = left.total + right.total
}

func TestJoinSplitMergesAccumulators(t *testing.T) {
	root := &sumSplitter{}
	broccoli.JoinSplit[*sumSplitter](root,
		func(s *sumSplitter) { s.total = 3 },
		func(s *sumSplitter) { s.total = 4 },
	)
	require.Equal(t, 7, root.total)
}
