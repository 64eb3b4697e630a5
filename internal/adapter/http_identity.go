// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/utils"
	"github.com/MKhiriev/go-stegano/models"
)

const (
	signInWithPasswordPath = "/v1/accounts:signInWithPassword"
	signUpPath             = "/v1/accounts:signUp"
	signInWithIdpPath      = "/v1/accounts:signInWithIdp"
	refreshTokenPath       = "/v1/token"

	passwordProviderID = "password"

	// idpRequestURI is the continue URI sent with federated sign-in; the
	// provider only checks that it is an authorized domain.
	idpRequestURI = "http://localhost"
)

type httpIdentityProvider struct {
	client      *utils.HTTPClient
	tokenClient *utils.HTTPClient
	apiKey      string

	// notifyMu serializes identity changes with their notifications so that
	// observers see changes in order.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	current   *models.Identity
	closed    bool
	observers *identityObservers

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs the Identity Toolkit REST implementation
// of [IdentityProvider]. Both base URLs are normalised; an empty API key is
// rejected.
func NewHTTPIdentityProvider(identityCfg config.ClientIdentity, adapterCfg config.ClientAdapter, log *logger.Logger) (IdentityProvider, error) {
	address, err := normalizeBaseURL(identityCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid identity address: %w", err)
	}
	tokenAddress, err := normalizeBaseURL(identityCfg.TokenAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid identity token address: %w", err)
	}
	if strings.TrimSpace(identityCfg.APIKey) == "" {
		return nil, fmt.Errorf("identity api key is empty")
	}

	return &httpIdentityProvider{
		client:      utils.NewHTTPClient(address, adapterCfg.RequestTimeout),
		tokenClient: utils.NewHTTPClient(tokenAddress, adapterCfg.RequestTimeout),
		apiKey:      identityCfg.APIKey,
		observers:   newIdentityObservers(),
		now:         time.Now,
		logger:      log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignIn implements [IdentityProvider]. It POSTs the credentials to
// accounts:signInWithPassword.
func (h *httpIdentityProvider) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	return h.authenticate(ctx, signInWithPasswordPath, models.PasswordAuthRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

// SignUp implements [IdentityProvider]. It POSTs the credentials to
// accounts:signUp; the new account is signed in right away.
func (h *httpIdentityProvider) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	return h.authenticate(ctx, signUpPath, models.PasswordAuthRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

// SignInFederated implements [IdentityProvider]. It POSTs the provider's
// OAuth ID token to accounts:signInWithIdp.
func (h *httpIdentityProvider) SignInFederated(ctx context.Context, cred models.FederatedCredential) (models.Identity, error) {
	postBody := url.Values{
		"id_token":   {cred.IDToken},
		"providerId": {string(cred.Provider)},
	}

	return h.authenticate(ctx, signInWithIdpPath, models.IdpAuthRequest{
		PostBody:            postBody.Encode(),
		RequestURI:          idpRequestURI,
		ReturnIdpCredential: true,
		ReturnSecureToken:   true,
	})
}

func (h *httpIdentityProvider) authenticate(ctx context.Context, path string, body any) (models.Identity, error) {
	if h.isClosed() {
		return models.Identity{}, ErrAdapterClosed
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", h.apiKey).
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("identity request failed")
		return models.Identity{}, networkAuthError(err)
	}
	if err = mapIdentityError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("identity request rejected")
		return models.Identity{}, err
	}

	var authResp models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &authResp); err != nil {
		return models.Identity{}, &AuthError{Message: "unexpected identity provider response", err: err}
	}

	identity := h.identityFromTokens(authResp.IDToken, authResp.RefreshToken, authResp.ExpiresIn)
	identity.UID = firstNonEmpty(authResp.LocalID, identity.UID)
	identity.Email = firstNonEmpty(authResp.Email, identity.Email)
	identity.DisplayName = firstNonEmpty(authResp.DisplayName, identity.DisplayName)
	identity.ProviderID = firstNonEmpty(authResp.ProviderID, identity.ProviderID, passwordProviderID)

	h.setIdentity(&identity)
	h.logger.Info().Str("uid", identity.UID).Str("provider", identity.ProviderID).Msg("signed in")

	return identity, nil
}

// Refresh implements [IdentityProvider]. It exchanges the refresh token at
// the secure-token endpoint. A rejection by the provider clears the identity.
// The outcome is applied only if the identity is still the one the refresh
// started from; otherwise ErrIdentityChanged is returned and nothing changes.
func (h *httpIdentityProvider) Refresh(ctx context.Context) (models.Identity, error) {
	if h.isClosed() {
		return models.Identity{}, ErrAdapterClosed
	}

	current := h.Current()
	if current == nil || current.RefreshToken == "" {
		return models.Identity{}, ErrNotSignedIn
	}

	resp, err := h.tokenClient.R().
		SetContext(ctx).
		SetQueryParam("key", h.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": current.RefreshToken,
		}).
		Post(refreshTokenPath)
	if err != nil {
		return models.Identity{}, networkAuthError(err)
	}
	if err = mapIdentityError(resp); err != nil {
		if !h.swapIdentity(current, nil) {
			h.logger.Debug().Msg("token refresh rejected for a stale identity, ignoring")
			return models.Identity{}, ErrIdentityChanged
		}
		h.logger.Warn().Err(err).Msg("token refresh rejected, signed out")
		return models.Identity{}, err
	}

	var refreshResp models.RefreshTokenResponse
	if err = json.Unmarshal(resp.Body(), &refreshResp); err != nil {
		return models.Identity{}, &AuthError{Message: "unexpected identity provider response", err: err}
	}

	refreshed := h.identityFromTokens(refreshResp.IDToken, refreshResp.RefreshToken, refreshResp.ExpiresIn)
	identity := *current
	identity.IDToken = refreshed.IDToken
	identity.RefreshToken = firstNonEmpty(refreshed.RefreshToken, current.RefreshToken)
	identity.ExpiresAt = refreshed.ExpiresAt

	if !h.swapIdentity(current, &identity) {
		h.logger.Debug().Msg("identity changed during refresh, dropping new tokens")
		return models.Identity{}, ErrIdentityChanged
	}
	h.logger.Debug().Time("expires_at", identity.ExpiresAt).Msg("token refreshed")

	return identity, nil
}

// SignOut implements [IdentityProvider].
func (h *httpIdentityProvider) SignOut(ctx context.Context) error {
	if h.isClosed() {
		return ErrAdapterClosed
	}

	h.setIdentity(nil)
	h.logger.Info().Msg("signed out")
	return nil
}

// Current implements [IdentityProvider].
func (h *httpIdentityProvider) Current() *models.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Clone()
}

// ObserveIdentity implements [IdentityProvider].
func (h *httpIdentityProvider) ObserveIdentity(fn func(*models.Identity)) func() {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	if h.isClosed() {
		return func() {}
	}

	unsubscribe := h.observers.subscribe(fn)
	fn(h.Current())

	return unsubscribe
}

// Close implements [IdentityProvider].
func (h *httpIdentityProvider) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.observers.clear()
	return nil
}

func (h *httpIdentityProvider) isClosed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

func (h *httpIdentityProvider) setIdentity(identity *models.Identity) {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	h.mu.Lock()
	h.current = identity.Clone()
	h.mu.Unlock()

	h.observers.notify(identity)
}

// swapIdentity replaces the identity with next only while the current one
// still has the UID and refresh token of from.
func (h *httpIdentityProvider) swapIdentity(from, next *models.Identity) bool {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	h.mu.Lock()
	cur := h.current
	if cur == nil || cur.UID != from.UID || cur.RefreshToken != from.RefreshToken {
		h.mu.Unlock()
		return false
	}
	h.current = next.Clone()
	h.mu.Unlock()

	h.observers.notify(next)
	return true
}

// identityFromTokens fills what can be read from the tokens themselves:
// subject, e-mail and expiry from the ID token claims, with expiresIn
// (seconds) taking precedence over the exp claim.
func (h *httpIdentityProvider) identityFromTokens(idToken, refreshToken, expiresIn string) models.Identity {
	identity := models.Identity{
		IDToken:      idToken,
		RefreshToken: refreshToken,
	}

	if claims, err := utils.ParseIdentityClaims(idToken); err == nil {
		identity.UID = claims.Subject
		identity.Email = claims.Email
		identity.DisplayName = claims.Name
		identity.ProviderID = claims.Firebase.SignInProvider
		if claims.ExpiresAt != nil {
			identity.ExpiresAt = claims.ExpiresAt.Time
		}
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(expiresIn)); err == nil && seconds > 0 {
		identity.ExpiresAt = h.now().Add(time.Duration(seconds) * time.Second)
	}

	return identity
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
