// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"sync/atomic"
)

// listener serializes its callback with its own removal: unsubscribe waits for
// a running call and no call starts after it returns.
type listener[T any] struct {
	mu       sync.Mutex
	callback func(T)
	active   bool
}

func (s *listener[T]) deliver(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.callback(value)
	}
}

func (s *listener[T]) deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// listeners is a registry of state subscribers. notify runs callbacks outside
// the registry lock, so a callback may subscribe or unsubscribe other
// listeners. A callback never runs after its unsubscribe returned, so it must
// not call its own unsubscribe.
type listeners[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]*listener[T]
	order  []uint64
	nextID atomic.Uint64
}

func newListeners[T any]() *listeners[T] {
	return &listeners[T]{subs: make(map[uint64]*listener[T])}
}

func (l *listeners[T]) subscribe(fn func(T)) (uint64, func()) {
	id := l.nextID.Add(1)

	sub := &listener[T]{callback: fn, active: true}

	l.mu.Lock()
	l.subs[id] = sub
	l.order = append(l.order, id)
	l.mu.Unlock()

	return id, func() { l.unsubscribe(id) }
}

func (l *listeners[T]) unsubscribe(id uint64) {
	l.mu.Lock()
	sub, ok := l.subs[id]
	if !ok {
		l.mu.Unlock()
		return
	}
	delete(l.subs, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	sub.deactivate()
}

// notify calls every listener in subscription order.
func (l *listeners[T]) notify(value T) {
	l.mu.RLock()
	subs := make([]*listener[T], 0, len(l.order))
	for _, id := range l.order {
		subs = append(subs, l.subs[id])
	}
	l.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(value)
	}
}

// notifyOne calls only the listener with the given id.
func (l *listeners[T]) notifyOne(id uint64, value T) {
	l.mu.RLock()
	sub, ok := l.subs[id]
	l.mu.RUnlock()

	if ok {
		sub.deliver(value)
	}
}

func (l *listeners[T]) clear() {
	l.mu.Lock()
	subs := l.subs
	l.subs = make(map[uint64]*listener[T])
	l.order = nil
	l.mu.Unlock()

	for _, sub := range subs {
		sub.deactivate()
	}
}

func (l *listeners[T]) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}
