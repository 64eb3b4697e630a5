// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
)

type clientSessionService struct {
	provider  adapter.IdentityProvider
	validator validators.Validator
	logger    *logger.Logger

	// notifyMu keeps state changes and their notifications in order and
	// makes Subscribe's initial call atomic with registration.
	notifyMu sync.Mutex

	mu          sync.RWMutex
	identity    *models.Identity
	resolved    bool
	started     bool
	closed      bool
	unsubscribe func()

	listeners *listeners[models.Session]
}

// NewClientSessionService creates the session context over provider. It
// stays unresolved until Start is called.
func NewClientSessionService(provider adapter.IdentityProvider, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		provider:  provider,
		validator: validators.NewCredentialsValidator(),
		logger:    log,
		listeners: newListeners[models.Session](),
	}
}

// Start implements [ClientSessionService].
func (s *clientSessionService) Start() {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	// ObserveIdentity calls back synchronously, so the session is resolved
	// when Start returns.
	unsubscribe := s.provider.ObserveIdentity(s.onIdentity)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
}

// onIdentity is the only writer of the session state.
func (s *clientSessionService) onIdentity(identity *models.Identity) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	wasAuthenticated := s.identity != nil
	s.identity = identity.Clone()
	s.resolved = true
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	switch {
	case identity != nil && !wasAuthenticated:
		s.logger.Info().Str("email", identity.Email).Msg("session started")
	case identity == nil && wasAuthenticated:
		s.logger.Info().Msg("session ended")
	}

	s.listeners.notify(snapshot)
}

// Close implements [ClientSessionService].
func (s *clientSessionService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.listeners.clear()
}

// CurrentIdentity implements [ClientSessionService].
func (s *clientSessionService) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

// Snapshot implements [ClientSessionService].
func (s *clientSessionService) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *clientSessionService) snapshotLocked() models.Session {
	return models.Session{Identity: s.identity.Clone(), Resolved: s.resolved}
}

// Subscribe implements [ClientSessionService]. fn must not call back into
// the session synchronously.
func (s *clientSessionService) Subscribe(fn func(models.Session)) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	if s.isClosed() {
		return func() {}
	}

	id, unsubscribe := s.listeners.subscribe(fn)
	s.listeners.notifyOne(id, s.Snapshot())
	return unsubscribe
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	if err := s.validator.Validate(ctx, models.Credentials{Email: email, Password: password}, validators.LoginFields...); err != nil {
		return err
	}

	if _, err := s.provider.SignIn(ctx, email, password); err != nil {
		s.logger.Debug().Err(err).Msg("sign in failed")
		return mapAuthError(app.MsgLoginFailedPrefix, err)
	}
	return nil
}

// Signup implements [ClientSessionService]. The password confirmation is
// checked by the signup form before this is called.
func (s *clientSessionService) Signup(ctx context.Context, email, password string) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	if err := s.validator.Validate(ctx, models.Credentials{Email: email, Password: password}, validators.LoginFields...); err != nil {
		return err
	}

	if _, err := s.provider.SignUp(ctx, email, password); err != nil {
		s.logger.Debug().Err(err).Msg("sign up failed")
		return mapAuthError(app.MsgSignupFailedPrefix, err)
	}
	return nil
}

// LoginWithFederatedProvider implements [ClientSessionService].
func (s *clientSessionService) LoginWithFederatedProvider(ctx context.Context, cred models.FederatedCredential) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	if err := s.validator.Validate(ctx, cred); err != nil {
		return err
	}

	if _, err := s.provider.SignInFederated(ctx, cred); err != nil {
		s.logger.Debug().Err(err).Str("provider", string(cred.Provider)).Msg("federated sign in failed")
		return mapAuthError(app.MsgFederatedLoginFailedPrefix, err)
	}
	return nil
}

// Logout implements [ClientSessionService].
func (s *clientSessionService) Logout(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	if err := s.provider.SignOut(ctx); err != nil {
		return mapAuthError(app.MsgLogoutFailedPrefix, err)
	}
	return nil
}

func (s *clientSessionService) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
