// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/models"
)

// Multipart field names of the codec service, used as validation field names.
const (
	FieldData         = "data"
	FieldImage        = "image"
	FieldVideo        = "video"
	FieldAudio        = "audio"
	FieldCiphertext   = "ciphertext"
	FieldEncodedImage = "encoded_image"
	FieldEncodedVideo = "encoded_video"
	FieldEncodedAudio = "encoded_audio"
)

// FieldNames returns the multipart names of the text field and of the image,
// video and audio files for mode.
func FieldNames(mode models.Mode) (text string, files [3]string) {
	if mode == models.ModeDecode {
		return FieldCiphertext, [3]string{FieldEncodedImage, FieldEncodedVideo, FieldEncodedAudio}
	}
	return FieldData, [3]string{FieldImage, FieldVideo, FieldAudio}
}

var (
	videoExtensions = map[string]bool{
		".avi": true, ".mp4": true, ".mov": true, ".mkv": true, ".webm": true, ".m4v": true,
	}
	wavContentTypes = map[string]bool{
		"audio/wav": true, "audio/x-wav": true, "audio/wave": true, "audio/vnd.wave": true,
	}
)

// DraftValidator checks encode/decode drafts before anything is sent:
// all four inputs present, and each carrier of the accepted kind
// (PNG image, any video, WAV audio).
type DraftValidator struct{}

func NewDraftValidator() Validator {
	return &DraftValidator{}
}

// Validate implements [Validator]. obj must be a [models.Draft]. When fields
// are given only those inputs are checked.
func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	draft, ok := obj.(models.Draft)
	if !ok {
		return ErrUnsupportedType
	}

	textField, fileFields := FieldNames(draft.Mode())
	selected, err := selectFields(fields, append([]string{textField}, fileFields[:]...))
	if err != nil {
		return err
	}

	if err = validateRequired(draft, textField, fileFields, selected); err != nil {
		return err
	}

	return validateMediaTypes(draft.Files(), fileFields, selected)
}

func validateRequired(draft models.Draft, textField string, fileFields [3]string, selected map[string]bool) error {
	var missing []string
	if selected[textField] && draft.Text() == "" {
		missing = append(missing, textField)
	}

	files := draft.Files()
	for i, kind := range models.MediaKinds {
		if selected[fileFields[i]] && files.Get(kind) == nil {
			missing = append(missing, fileFields[i])
		}
	}

	if len(missing) == 0 {
		return nil
	}

	msg := app.MsgMissingEncryptFields
	if draft.Mode() == models.ModeDecode {
		msg = app.MsgMissingDecryptFields
	}
	return newValidationError(ErrMissingField, msg, missing...)
}

func validateMediaTypes(files models.MediaSet, fileFields [3]string, selected map[string]bool) error {
	for i, kind := range models.MediaKinds {
		f := files.Get(kind)
		if f == nil || !selected[fileFields[i]] {
			continue
		}
		if acceptsMedia(kind, f) {
			continue
		}
		return newValidationError(ErrUnsupportedMedia,
			fmt.Sprintf("Unsupported %s file %q: %s", kind, f.Name, expectedMedia(kind)),
			fileFields[i])
	}
	return nil
}

func acceptsMedia(kind models.MediaKind, f *models.MediaFile) bool {
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(f.ContentType, ";")[0]))
	ext := f.Ext()

	switch kind {
	case models.MediaImage:
		return ext == ".png" || contentType == "image/png"
	case models.MediaVideo:
		return videoExtensions[ext] || strings.HasPrefix(contentType, "video/")
	case models.MediaAudio:
		return ext == ".wav" || wavContentTypes[contentType]
	}
	return false
}

func expectedMedia(kind models.MediaKind) string {
	switch kind {
	case models.MediaImage:
		return "expected a PNG image"
	case models.MediaVideo:
		return "expected a video file"
	default:
		return "expected a WAV file"
	}
}

// selectFields turns the optional field filter into a set. An empty filter
// selects every known field; an unknown name is an error.
func selectFields(fields, known []string) (map[string]bool, error) {
	selected := make(map[string]bool, len(known))
	if len(fields) == 0 {
		for _, f := range known {
			selected[f] = true
		}
		return selected, nil
	}

	for _, f := range fields {
		found := false
		for _, k := range known {
			if f == k {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		selected[f] = true
	}
	return selected, nil
}
