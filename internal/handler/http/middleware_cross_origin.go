// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stegano/internal/logger"
)

// withCrossOriginCheck rejects state-changing requests sent by another site:
// a Sec-Fetch-Site other than same-origin or none, or an Origin whose host is
// not the request host. GET, HEAD and OPTIONS always pass.
func withCrossOriginCheck(next http.Handler) http.Handler {
	protection := http.NewCrossOriginProtection()
	protection.SetDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Warn().
			Str("origin", r.Header.Get("Origin")).
			Str("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")).
			Msg("cross-origin request rejected")
		http.Error(w, "cross-origin request rejected", http.StatusForbidden)
	}))
	return protection.Handler(next)
}
