// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/models"
)

const (
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldFederatedToken       = "id_token"
)

// LoginFields and SignupFields are the field sets checked by the two forms.
var (
	LoginFields  = []string{FieldEmail, FieldPassword}
	SignupFields = []string{FieldEmail, FieldPassword, FieldPasswordConfirmation}
)

// CredentialsValidator checks the login/signup forms and the federated
// sign-in input.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate implements [Validator]. For [models.Credentials] the fields
// select the form: [LoginFields] (default) or [SignupFields].
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.FederatedCredential:
		return v.validateFederated(value)
	case *models.FederatedCredential:
		return v.validateFederated(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = LoginFields
	}
	selected, err := selectFields(fields, SignupFields)
	if err != nil {
		return err
	}

	var missing []string
	if selected[FieldEmail] && strings.TrimSpace(c.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if selected[FieldPassword] && c.Password == "" {
		missing = append(missing, FieldPassword)
	}
	if selected[FieldPasswordConfirmation] && c.PasswordConfirmation == "" {
		missing = append(missing, FieldPasswordConfirmation)
	}
	if len(missing) > 0 {
		return newValidationError(ErrMissingField, app.MsgFillAllFields, missing...)
	}

	if !selected[FieldPasswordConfirmation] {
		return nil
	}
	if c.Password != c.PasswordConfirmation {
		return newValidationError(ErrPasswordMismatch, app.MsgPasswordsDoNotMatch, FieldPasswordConfirmation)
	}
	if len([]rune(c.Password)) < app.MinPasswordLength {
		return newValidationError(ErrPasswordTooShort, app.MsgPasswordTooShort, FieldPassword)
	}
	return nil
}

func (v *CredentialsValidator) validateFederated(c models.FederatedCredential) error {
	if strings.TrimSpace(c.IDToken) == "" {
		return newValidationError(ErrMissingFederation, app.MsgProvideFederatedToken, FieldFederatedToken)
	}
	if c.Provider != models.ProviderGoogle {
		return newValidationError(ErrUnsupportedType, "Unsupported sign-in provider "+string(c.Provider), FieldFederatedToken)
	}
	return nil
}
