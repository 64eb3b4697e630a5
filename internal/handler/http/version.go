// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		h.buildInfo.BuildVersion(), h.buildInfo.BuildDate(), h.buildInfo.BuildCommit())
}
