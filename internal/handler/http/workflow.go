// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
)

// maxUploadMemory is the part of a multipart upload kept in memory; the rest
// is spooled to temporary files.
const maxUploadMemory = 32 << 20

const (
	modeQueryParam   = "mode"
	statusQueryParam = "status"
	modeDecrypt      = "decrypt"
)

var mediaFormFields = map[models.MediaKind]string{
	models.MediaImage: "image",
	models.MediaVideo: "video",
	models.MediaAudio: "audio",
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	snapshot := h.workflow.Snapshot()

	data := pageData{
		Decrypt:  r.URL.Query().Get(modeQueryParam) == modeDecrypt,
		Status:   r.URL.Query().Get(statusQueryParam),
		Snapshot: snapshot,
	}
	if snapshot.Encrypt != nil {
		data.Ciphertext = snapshot.Encrypt.Ciphertext
		for _, kind := range models.MediaKinds {
			data.Artifacts = append(data.Artifacts, artifactLink{Kind: kind, FileName: service.ArtifactFileName(kind)})
		}
	}

	h.render(w, r, http.StatusOK, pageWorkflow, data)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	media, err := h.parseDraftForm(r)
	if err != nil {
		log.Err(err).Msg("invalid upload was passed")
		http.Error(w, "invalid upload was passed", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	draft := models.EncryptDraft{Message: r.PostFormValue("text"), Media: media}
	if err = h.workflow.SubmitEncrypt(submissionContext(r), draft); err != nil {
		log.Err(err).Msg("encrypt failed")
	}

	h.redirectHome(w, r, "", "")
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	media, err := h.parseDraftForm(r)
	if err != nil {
		log.Err(err).Msg("invalid upload was passed")
		http.Error(w, "invalid upload was passed", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	draft := models.DecryptDraft{Ciphertext: strings.TrimSpace(r.PostFormValue("ciphertext")), Media: media}
	if err = h.workflow.SubmitDecrypt(submissionContext(r), draft); err != nil {
		log.Err(err).Msg("decrypt failed")
	}

	h.redirectHome(w, r, modeDecrypt, "")
}

// submissionContext keeps the request values (trace id, logger) but not its
// cancellation: a codec request outlives the browser leaving the page.
func submissionContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// saveArtifact saves one encoded artifact of the last encode result into the
// download directory.
func (h *Handler) saveArtifact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind, err := parseMediaKind(chi.URLParam(r, "kind"))
	if err != nil {
		log.Err(err).Msg("unknown artifact was requested")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	path, err := h.workflow.DownloadArtifact(r.Context(), kind, "")
	if err != nil {
		log.Err(err).Str("kind", kind.String()).Msg("saving artifact failed")
		http.Error(w, fmt.Sprintf("Failed to save the encoded %s: %s", kind, service.UserMessage(err)), statusFromError(err))
		return
	}

	log.Info().Str("path", path).Msg("artifact saved")
	h.redirectHome(w, r, "", "Saved "+path)
}

// parseDraftForm reads the multipart form. A file field left empty stays
// absent in the returned set.
func (h *Handler) parseDraftForm(r *http.Request) (models.MediaSet, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return models.MediaSet{}, fmt.Errorf("parse multipart form: %w", err)
	}

	log := logger.FromRequest(r)

	var media models.MediaSet
	for _, kind := range models.MediaKinds {
		headers := r.MultipartForm.File[mediaFormFields[kind]]
		if len(headers) == 0 || headers[0].Filename == "" {
			continue
		}

		file := uploadedMediaFile(headers[0])
		log.Debug().
			Str("kind", kind.String()).
			Str("name", file.Name).
			Str("size", humanize.Bytes(uint64(file.Size))).
			Msg("media file received")
		media = media.With(kind, file)
	}
	return media, nil
}

func uploadedMediaFile(header *multipart.FileHeader) *models.MediaFile {
	return models.NewMediaFile(header.Filename, header.Size, header.Header.Get("Content-Type"), func() (io.ReadCloser, error) {
		return header.Open()
	})
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request, mode, status string) {
	query := url.Values{}
	if mode != "" {
		query.Set(modeQueryParam, mode)
	}
	if status != "" {
		query.Set(statusQueryParam, status)
	}

	target := "/"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func parseMediaKind(v string) (models.MediaKind, error) {
	for _, kind := range models.MediaKinds {
		if kind.String() == v {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownMediaKind, v)
}
