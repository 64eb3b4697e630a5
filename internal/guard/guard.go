// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard implements the route guard shared by both front ends.
//
// The guard has three states. [Pending] means the session is not resolved
// yet: a neutral view is shown and nothing redirects. [Authorized] renders
// the protected workflow. [Unauthorized] redirects protected routes to the
// login route. Both front ends feed session snapshots into a [Guard] and ask
// it where a navigation goes.
package guard

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stegano/models"
)

// State of the guard.
type State int

const (
	Pending State = iota
	Authorized
	Unauthorized
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Authorized:
		return "AUTHORIZED"
	case Unauthorized:
		return "UNAUTHORIZED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Route is a client-visible route.
type Route string

const (
	RouteLogin  Route = "/login"
	RouteSignup Route = "/signup"
	RouteHome   Route = "/"
)

// Protected reports whether the route needs a signed-in user.
func (r Route) Protected() bool {
	return r == RouteHome
}

// Action tells the front end what to do with a navigation.
type Action int

const (
	// Render shows the requested route.
	Render Action = iota
	// Redirect navigates to [Decision.Target] instead.
	Redirect
	// Wait shows a neutral view until the session resolves.
	Wait
)

func (a Action) String() string {
	switch a {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Wait:
		return "wait"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Decision is the outcome of a navigation.
type Decision struct {
	Action Action
	// Target is set for [Redirect].
	Target Route
}

// Evaluate maps a session snapshot to a guard state.
func Evaluate(session models.Session) State {
	switch {
	case !session.Resolved:
		return Pending
	case session.Authenticated():
		return Authorized
	default:
		return Unauthorized
	}
}

// DecideFor decides a navigation to route in state.
//
// Only a protected route in [Unauthorized] redirects to the login route. An
// [Authorized] user asking for the login or signup route is sent home.
// A pending state never redirects.
func DecideFor(state State, route Route) Decision {
	switch state {
	case Pending:
		if route.Protected() {
			return Decision{Action: Wait}
		}
		return Decision{Action: Render}
	case Unauthorized:
		if route.Protected() {
			return Decision{Action: Redirect, Target: RouteLogin}
		}
		return Decision{Action: Render}
	default:
		if !route.Protected() {
			return Decision{Action: Redirect, Target: RouteHome}
		}
		return Decision{Action: Render}
	}
}

// Transition records a state change seen by [Guard.Update].
type Transition struct {
	From State
	To   State
}

// Guard tracks the guard state across session changes. It leaves [Pending]
// once and then moves between [Authorized] and [Unauthorized]. Safe for
// concurrent use.
type Guard struct {
	mu    sync.RWMutex
	state State
}

// New returns a guard in [Pending].
func New() *Guard {
	return &Guard{state: Pending}
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Update feeds a session snapshot into the guard. It reports the transition
// and whether the state changed. An unresolved snapshot after resolution is
// ignored: the guard never returns to [Pending].
func (g *Guard) Update(session models.Session) (Transition, bool) {
	next := Evaluate(session)

	g.mu.Lock()
	defer g.mu.Unlock()

	if next == Pending || next == g.state {
		return Transition{From: g.state, To: g.state}, false
	}

	t := Transition{From: g.state, To: next}
	g.state = next
	return t, true
}

// Decide decides a navigation to route in the current state.
func (g *Guard) Decide(route Route) Decision {
	return DecideFor(g.State(), route)
}
