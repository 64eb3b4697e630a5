// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// mapHTTPError turns a non-2xx codec response into a [*RequestError]
// carrying the "error" field of the body.
func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	var body models.ErrorResponse
	_ = json.Unmarshal(resp.Body(), &body)

	return &RequestError{
		StatusCode: resp.StatusCode(),
		Message:    body.Error,
	}
}

func networkRequestError(err error) error {
	return &RequestError{err: fmt.Errorf("%w: %w", ErrNetwork, err)}
}

// mapIdentityError turns a non-2xx identity toolkit response into an
// [*AuthError]. The toolkit reports errors as
// {"error":{"code":400,"message":"CODE : optional detail"}}.
func mapIdentityError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	var body models.IdentityErrorResponse
	_ = json.Unmarshal(resp.Body(), &body)

	code, detail, _ := strings.Cut(body.Error.Message, " : ")
	code = strings.TrimSpace(code)
	if code == "" {
		code = http.StatusText(resp.StatusCode())
	}

	return &AuthError{
		StatusCode: resp.StatusCode(),
		Code:       code,
		Message:    humanizeAuthCode(code, strings.TrimSpace(detail)),
	}
}

func networkAuthError(err error) error {
	return &AuthError{
		Message: app.MsgServiceUnavailable,
		err:     fmt.Errorf("%w: %w", ErrNetwork, err),
	}
}

var authCodeMessages = map[string]string{
	"EMAIL_NOT_FOUND":             "There is no account with this e-mail.",
	"INVALID_PASSWORD":            "The password is incorrect.",
	"INVALID_LOGIN_CREDENTIALS":   "Incorrect e-mail or password.",
	"USER_DISABLED":               "This account has been disabled.",
	"EMAIL_EXISTS":                "An account with this e-mail already exists.",
	"INVALID_EMAIL":               "The e-mail address is badly formatted.",
	"MISSING_PASSWORD":            "A password is required.",
	"MISSING_EMAIL":               "An e-mail address is required.",
	"WEAK_PASSWORD":               app.MsgPasswordTooShort + ".",
	"OPERATION_NOT_ALLOWED":       "This sign-in method is disabled.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts. Try again later.",
	"INVALID_IDP_RESPONSE":        "The Google credential was rejected.",
	"INVALID_ID_TOKEN":            "The session is no longer valid. Please log in again.",
	"TOKEN_EXPIRED":               "The session has expired. Please log in again.",
	"INVALID_REFRESH_TOKEN":       "The session is no longer valid. Please log in again.",
	"USER_NOT_FOUND":              "The account no longer exists.",
}

func humanizeAuthCode(code, detail string) string {
	if msg, ok := authCodeMessages[code]; ok {
		return msg
	}
	if strings.HasPrefix(code, "API key not valid") || strings.HasPrefix(code, "API_KEY_INVALID") {
		return "The identity provider API key is not valid."
	}
	if detail != "" {
		return detail
	}
	return strings.ToLower(strings.ReplaceAll(code, "_", " "))
}
