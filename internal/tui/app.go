// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// page is a screen the router can open.
type page interface {
	tea.Model
	reset()
}

// RootModel is the TUI router:
// 1) keeps the current route and asks the route guard before rendering it
// 2) follows session changes (sign-in opens /, sign-out opens /login)
// 3) handles global ctrl+c and the about window
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	guard *guard.Guard
	route guard.Route
	pages map[guard.Route]page

	workflow *WorkflowModel

	sessions  *mailbox[models.Session]
	snapshots *mailbox[models.WorkflowSnapshot]

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers the pages and opens the protected home route. The
// guard keeps it pending until the session is resolved.
func NewRootModel(ctx context.Context, login *LoginModel, signup *SignupModel, workflow *WorkflowModel,
	sessions *mailbox[models.Session], snapshots *mailbox[models.WorkflowSnapshot], buildInfo models.AppBuildInfo) *RootModel {
	return &RootModel{
		ctx:   ctx,
		guard: guard.New(),
		route: guard.RouteHome,
		pages: map[guard.Route]page{
			guard.RouteLogin:  login,
			guard.RouteSignup: signup,
			guard.RouteHome:   workflow,
		},
		workflow:  workflow,
		sessions:  sessions,
		snapshots: snapshots,
		buildInfo: buildInfo,
	}
}

// Init implements [tea.Model].
func (r *RootModel) Init() tea.Cmd {
	return tea.Batch(r.waitSession(), r.waitSnapshot(), r.pages[r.route].Init())
}

func (r *RootModel) waitSession() tea.Cmd {
	ctx, box := r.ctx, r.sessions
	return func() tea.Msg {
		session, ok := box.wait(ctx)
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: session}
	}
}

func (r *RootModel) waitSnapshot() tea.Cmd {
	ctx, box := r.ctx, r.snapshots
	return func() tea.Msg {
		snapshot, ok := box.wait(ctx)
		if !ok {
			return nil
		}
		return workflowChangedMsg{snapshot: snapshot}
	}
}

// Update implements [tea.Model].
func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
		// keys go nowhere until the page may be rendered
		if r.guard.Decide(r.route).Action != guard.Render {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case sessionChangedMsg:
		r.guard.Update(msg.session)
		r.workflow.setEmail(msg.session.Email())
		return r, tea.Batch(r.navigate(r.route), r.waitSession())
	case workflowChangedMsg:
		return r, tea.Batch(r.workflow.applySnapshot(msg.snapshot), r.waitSnapshot())
	case NavigateTo:
		return r, r.navigate(msg.Route)
	case authResultMsg:
		// the session change may already have moved the router away
		r.pages[guard.RouteLogin].Update(msg)
		r.pages[guard.RouteSignup].Update(msg)
		return r, nil
	case spinner.TickMsg, submitDoneMsg, downloadDoneMsg, copiedMsg, clearStatusMsg, logoutDoneMsg:
		_, cmd := r.workflow.Update(msg)
		return r, cmd
	}

	current, ok := r.pages[r.route]
	if !ok {
		return r, nil
	}
	_, cmd := current.Update(msg)
	return r, cmd
}

// navigate asks the guard about route and opens the route it allows. A
// pending decision keeps the requested route until the session resolves.
func (r *RootModel) navigate(route guard.Route) tea.Cmd {
	if _, ok := r.pages[route]; !ok {
		return nil
	}

	decision := r.guard.Decide(route)
	if decision.Action == guard.Redirect {
		route = decision.Target
	}

	if route == r.route {
		return nil
	}

	r.route = route
	r.showBuildInfo = false
	next := r.pages[route]
	next.reset()
	return next.Init()
}

// Route returns the current route.
func (r *RootModel) Route() guard.Route {
	return r.route
}

// View implements [tea.Model].
func (r *RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.guard.Decide(r.route).Action != guard.Render {
		return renderPending()
	}
	current, ok := r.pages[r.route]
	if !ok {
		return renderPage(appName, "", "")
	}
	return current.View()
}
