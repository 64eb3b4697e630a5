// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-stegano/models"
)

type identityObserver struct {
	mu       sync.Mutex
	callback func(*models.Identity)
	active   bool
}

func (s *identityObserver) deliver(identity *models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.callback(identity.Clone())
	}
}

// deactivate waits for a running callback to return.
func (s *identityObserver) deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// identityObservers is the observer registry of the identity provider.
// Callbacks are invoked outside the registry lock and never after their
// unsubscribe returned; a callback must not unsubscribe itself.
type identityObservers struct {
	mu     sync.RWMutex
	subs   map[uint64]*identityObserver
	nextID atomic.Uint64
}

func newIdentityObservers() *identityObservers {
	return &identityObservers{subs: make(map[uint64]*identityObserver)}
}

func (o *identityObservers) subscribe(fn func(*models.Identity)) func() {
	id := o.nextID.Add(1)

	sub := &identityObserver{callback: fn, active: true}

	o.mu.Lock()
	o.subs[id] = sub
	o.mu.Unlock()

	return func() {
		o.unsubscribe(id)
	}
}

// unsubscribe removes a subscription. Safe to call multiple times.
func (o *identityObservers) unsubscribe(id uint64) {
	o.mu.Lock()
	sub, ok := o.subs[id]
	delete(o.subs, id)
	o.mu.Unlock()

	if ok {
		sub.deactivate()
	}
}

// notify hands every observer its own copy of identity.
func (o *identityObservers) notify(identity *models.Identity) {
	o.mu.RLock()
	subs := make([]*identityObserver, 0, len(o.subs))
	for _, sub := range o.subs {
		subs = append(subs, sub)
	}
	o.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(identity)
	}
}

func (o *identityObservers) clear() {
	o.mu.Lock()
	subs := o.subs
	o.subs = make(map[uint64]*identityObserver)
	o.mu.Unlock()

	for _, sub := range subs {
		sub.deactivate()
	}
}

func (o *identityObservers) len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}
