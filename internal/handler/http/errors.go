// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errUnknownMediaKind is returned when an artifact route names a media kind
// other than image, video or audio.
var errUnknownMediaKind = errors.New("unknown media kind")
