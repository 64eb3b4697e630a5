// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, pageData{Title: "Log in"})
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageSignup, pageData{Title: "Sign up"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue(validators.FieldEmail))
	password := r.PostFormValue(validators.FieldPassword)

	if err := h.session.Login(r.Context(), email, password); err != nil {
		log.Err(err).Msg("login failed")
		h.render(w, r, statusFromError(err), pageLogin, pageData{
			Title: "Log in",
			Error: service.UserMessage(err),
			Form:  formValues{Email: email},
		})
		return
	}

	log.Info().Msg("user logged in")
	http.Redirect(w, r, string(guard.RouteHome), http.StatusSeeOther)
}

func (h *Handler) loginFederated(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	cred := models.FederatedCredential{
		Provider: models.ProviderGoogle,
		IDToken:  strings.TrimSpace(r.PostFormValue(validators.FieldFederatedToken)),
	}

	if err := h.session.LoginWithFederatedProvider(r.Context(), cred); err != nil {
		log.Err(err).Msg("federated login failed")
		h.render(w, r, statusFromError(err), pageLogin, pageData{Title: "Log in", Error: service.UserMessage(err)})
		return
	}

	log.Info().Msg("user logged in with federated provider")
	http.Redirect(w, r, string(guard.RouteHome), http.StatusSeeOther)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Email:                strings.TrimSpace(r.PostFormValue(validators.FieldEmail)),
		Password:             r.PostFormValue(validators.FieldPassword),
		PasswordConfirmation: r.PostFormValue(validators.FieldPasswordConfirmation),
	}

	err := h.validator.Validate(ctx, creds, validators.SignupFields...)
	if err == nil {
		err = h.session.Signup(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		log.Err(err).Msg("signup failed")
		h.render(w, r, statusFromError(err), pageSignup, pageData{
			Title: "Sign up",
			Error: service.UserMessage(err),
			Form:  formValues{Email: creds.Email},
		})
		return
	}

	log.Info().Msg("user signed up")
	http.Redirect(w, r, string(guard.RouteHome), http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.session.Logout(r.Context()); err != nil {
		log.Err(err).Msg("logout failed")
		http.Error(w, service.UserMessage(err), statusFromError(err))
		return
	}

	log.Info().Msg("user logged out")
	http.Redirect(w, r, string(guard.RouteLogin), http.StatusSeeOther)
}
