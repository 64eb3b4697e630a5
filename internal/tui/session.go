// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
)

// mailbox hands the latest value published by a service listener to the
// bubbletea loop. put never blocks, so listeners may run before the program
// starts or while it is busy; intermediate values are coalesced.
type mailbox[T any] struct {
	mu     sync.Mutex
	latest T
	signal chan struct{}
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{signal: make(chan struct{}, 1)}
}

func (m *mailbox[T]) put(v T) {
	m.mu.Lock()
	m.latest = v
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

// wait blocks until a value was put since the last wait, or ctx is done.
func (m *mailbox[T]) wait(ctx context.Context) (T, bool) {
	select {
	case <-m.signal:
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.latest, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}
