// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withCrossOriginCheck)
	router.Use(middleware.Compress(5, "text/html", "application/json"))

	router.Get("/session", h.sessionStatus)
	router.Get("/version", h.version)

	// public routes; a signed-in user is sent home
	router.Group(func(r chi.Router) {
		r.Use(h.withGuard(guard.RouteLogin))
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Post("/login/federated", h.loginFederated)
	})
	router.Group(func(r chi.Router) {
		r.Use(h.withGuard(guard.RouteSignup))
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
	})

	router.Post("/logout", h.logout)

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.withGuard(guard.RouteHome))
		r.Get("/", h.home)
		r.Post("/encrypt", h.encrypt)
		r.Post("/decrypt", h.decrypt)
		r.Post("/artifacts/{kind}", h.saveArtifact)
	})

	return router
}
