// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---- Таблица: решение route guard для каждой страницы ----

func TestWithGuard_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		session      func() *fakeSession
		path         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:       "pending: protected route shows the neutral page",
			session:    func() *fakeSession { return &fakeSession{} },
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Checking session...",
		},
		{
			name:       "pending: login is rendered",
			session:    func() *fakeSession { return &fakeSession{} },
			path:       "/login",
			wantStatus: http.StatusOK,
			wantBody:   "Log in",
		},
		{
			name:         "unauthorized: protected route redirects to login",
			session:      unauthorizedSession,
			path:         "/",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:       "unauthorized: signup is rendered",
			session:    unauthorizedSession,
			path:       "/signup",
			wantStatus: http.StatusOK,
			wantBody:   "Confirm password",
		},
		{
			name:       "authorized: workflow is rendered",
			session:    authorizedSession,
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "user@example.com",
		},
		{
			name:         "authorized: login redirects home",
			session:      authorizedSession,
			path:         "/login",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:         "authorized: signup redirects home",
			session:      authorizedSession,
			path:         "/signup",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(tt.session(), &fakeWorkflow{})

			rr := serve(t, h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

// Пока сессия не определена, защищённые POST-маршруты не доходят до сервиса.
func TestWithGuard_PendingNeverReachesProtectedHandler(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	h := newTestHandler(&fakeSession{}, &fakeWorkflow{})
	rr := httptest.NewRecorder()
	h.withGuard("/")(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/encrypt", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http-equiv="refresh"`)
	assert.NotContains(t, rr.Body.String(), "Encrypt")
}

func TestWithGuard_FollowsSignOut(t *testing.T) {
	session := authorizedSession()
	h := newTestHandler(session, &fakeWorkflow{})

	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	session.signOut()

	rr = serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}
