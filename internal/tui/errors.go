// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// fileSummary describes the file a path input points at: its name and size,
// or why it cannot be used.
func fileSummary(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}

	st, err := os.Stat(path)
	switch {
	case err != nil:
		return "not found"
	case st.IsDir():
		return "is a directory"
	}

	return filepath.Base(path) + ", " + humanize.Bytes(uint64(st.Size()))
}
