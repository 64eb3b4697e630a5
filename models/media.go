// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrMediaFileHasNoSource is returned by [MediaFile.Open] when the handle was
// not constructed with a way to read its content.
var ErrMediaFileHasNoSource = errors.New("media file has no source")

// MediaKind enumerates the three carriers a message is hidden in.
type MediaKind int

const (
	MediaImage MediaKind = iota
	MediaVideo
	MediaAudio
)

// MediaKinds lists every kind in form order.
var MediaKinds = []MediaKind{MediaImage, MediaVideo, MediaAudio}

func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	case MediaAudio:
		return "audio"
	default:
		return fmt.Sprintf("media(%d)", int(k))
	}
}

// MediaFile is a handle to a user-selected file. The content is opened lazily
// and once per request, so the same handle may be submitted again after a
// failure.
type MediaFile struct {
	// Name is the base file name sent as the multipart file name.
	Name string

	// Size is the content length in bytes.
	Size int64

	// ContentType is the detected MIME type ("" if unknown).
	ContentType string

	// Path is the local path for files picked from disk; empty for uploads.
	Path string

	open func() (io.ReadCloser, error)
}

// NewMediaFile builds a handle around an arbitrary content source, e.g. an
// uploaded multipart part.
func NewMediaFile(name string, size int64, contentType string, open func() (io.ReadCloser, error)) *MediaFile {
	return &MediaFile{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		open:        open,
	}
}

// OpenMediaFile builds a handle for a file on disk. It fails if path does not
// exist or is a directory. The content type is taken from the extension and,
// when the extension is unknown, sniffed from the first 512 bytes.
func OpenMediaFile(path string) (*MediaFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty path")
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = sniffContentType(path)
	}

	f := NewMediaFile(filepath.Base(path), st.Size(), contentType, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
	f.Path = path
	return f, nil
}

// Open returns a fresh reader over the file content. The caller closes it.
func (f *MediaFile) Open() (io.ReadCloser, error) {
	if f == nil || f.open == nil {
		return nil, ErrMediaFileHasNoSource
	}
	return f.open()
}

// Ext returns the lower-cased file extension including the dot.
func (f *MediaFile) Ext() string {
	if f == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(f.Name))
}

func sniffContentType(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	if n == 0 {
		return ""
	}
	return http.DetectContentType(head[:n])
}

// MediaSet groups the three carrier files of one request.
type MediaSet struct {
	Image *MediaFile
	Video *MediaFile
	Audio *MediaFile
}

// Get returns the file of the given kind (nil if not selected).
func (s MediaSet) Get(kind MediaKind) *MediaFile {
	switch kind {
	case MediaImage:
		return s.Image
	case MediaVideo:
		return s.Video
	case MediaAudio:
		return s.Audio
	}
	return nil
}

// With returns a copy of the set with kind replaced by f.
func (s MediaSet) With(kind MediaKind, f *MediaFile) MediaSet {
	switch kind {
	case MediaImage:
		s.Image = f
	case MediaVideo:
		s.Video = f
	case MediaAudio:
		s.Audio = f
	}
	return s
}
