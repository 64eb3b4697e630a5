// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/internal/logger"
)

// withGuard asks the route guard about route before the handler runs:
//   - Render: the handler runs.
//   - Redirect: 303 See Other to the target route.
//   - Wait: the pending page, which reloads itself until the session is
//     resolved. Protected content is never served in this state.
func (h *Handler) withGuard(route guard.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := h.guard.Decide(route)

			switch decision.Action {
			case guard.Render:
				next.ServeHTTP(w, r)
			case guard.Redirect:
				logger.FromRequest(r).Debug().
					Str("route", string(route)).
					Str("target", string(decision.Target)).
					Msg("redirected by route guard")
				http.Redirect(w, r, string(decision.Target), http.StatusSeeOther)
			default:
				h.render(w, r, http.StatusOK, pagePending, pageData{Pending: true})
			}
		})
	}
}
