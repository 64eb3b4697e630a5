// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/utils"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartRequest builds a POST with text fields and file parts. files maps
// the form field to the file name; the content is "<field>-content".
func multipartRequest(t *testing.T, path string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for field, fileName := range files {
		part, err := w.CreateFormFile(field, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(field + "-content"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func readMedia(t *testing.T, f *models.MediaFile) string {
	t.Helper()
	require.NotNil(t, f)
	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

var allFiles = map[string]string{
	"image": "cover.png",
	"video": "cover.mp4",
	"audio": "cover.wav",
}

func TestHome_EncryptResult(t *testing.T) {
	workflow := &fakeWorkflow{snapshot: models.WorkflowSnapshot{
		Encrypt: &models.EncryptResult{
			Ciphertext:   "CIPHER-123",
			EncodedImage: "data:image/png;base64,AAAA",
		},
	}}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "CIPHER-123")
	assert.Contains(t, body, `action="/artifacts/image"`)
	assert.Contains(t, body, service.ArtifactFileName(models.MediaAudio))
}

func TestHome_DecryptModeIsPrefilled(t *testing.T) {
	workflow := &fakeWorkflow{snapshot: models.WorkflowSnapshot{
		Encrypt: &models.EncryptResult{Ciphertext: "CIPHER-123"},
		Decrypt: &models.DecryptResult{RecoveredMessage: "hello world"},
	}}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/?mode=decrypt", nil))

	body := rr.Body.String()
	assert.Contains(t, body, `action="/decrypt"`)
	assert.Contains(t, body, ">CIPHER-123</textarea>")
	assert.Contains(t, body, "hello world")
}

func TestHome_InFlightDisablesSubmit(t *testing.T) {
	workflow := &fakeWorkflow{snapshot: models.WorkflowSnapshot{EncryptInFlight: true}}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rr.Body.String(), "disabled>Encrypting...")
}

func TestHome_ShowsErrorSlot(t *testing.T) {
	workflow := &fakeWorkflow{snapshot: models.WorkflowSnapshot{
		Err: &models.WorkflowError{Mode: models.ModeEncode, Message: app.MsgMissingEncryptFields},
	}}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rr.Body.String(), "Please enter text and upload an image, video, and audio file.")
}

func TestEncrypt_SubmitsUploadedDraft(t *testing.T) {
	var got models.EncryptDraft
	var contents []string
	workflow := &fakeWorkflow{
		encryptFn: func(_ context.Context, draft models.EncryptDraft) error {
			got = draft
			// части multipart доступны только во время запроса
			for _, kind := range models.MediaKinds {
				contents = append(contents, readMedia(t, draft.Media.Get(kind)))
			}
			return nil
		},
	}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, multipartRequest(t, "/encrypt", map[string]string{"text": "secret message"}, allFiles))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, "secret message", got.Message)
	assert.Equal(t, "cover.png", got.Media.Image.Name)
	assert.Equal(t, []string{"image-content", "video-content", "audio-content"}, contents)
}

func TestEncrypt_MissingFileStaysAbsent(t *testing.T) {
	var got models.EncryptDraft
	workflow := &fakeWorkflow{
		encryptFn: func(_ context.Context, draft models.EncryptDraft) error {
			got = draft
			return nil
		},
	}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, multipartRequest(t, "/encrypt", map[string]string{"text": "m"}, map[string]string{"image": "cover.png"}))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.NotNil(t, got.Media.Image)
	assert.Nil(t, got.Media.Video)
	assert.Nil(t, got.Media.Audio)
}

func TestEncrypt_FailureStillRedirects(t *testing.T) {
	workflow := &fakeWorkflow{
		encryptFn: func(context.Context, models.EncryptDraft) error {
			return &adapter.RequestError{StatusCode: http.StatusInternalServerError}
		},
	}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, multipartRequest(t, "/encrypt", map[string]string{"text": "m"}, allFiles))

	// ошибка попадает в снимок контроллера и показывается на странице
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestSubmit_OutlivesRequestCancellation(t *testing.T) {
	tests := []struct {
		name string
		path string
		// setup подменяет колбэк fakeWorkflow: он отменяет запрос и
		// сохраняет полученный контекст
		setup func(w *fakeWorkflow, cancel context.CancelFunc, got *context.Context)
	}{
		{
			name: "encrypt",
			path: "/encrypt",
			setup: func(w *fakeWorkflow, cancel context.CancelFunc, got *context.Context) {
				w.encryptFn = func(ctx context.Context, _ models.EncryptDraft) error {
					cancel()
					*got = ctx
					return nil
				}
			},
		},
		{
			name: "decrypt",
			path: "/decrypt",
			setup: func(w *fakeWorkflow, cancel context.CancelFunc, got *context.Context) {
				w.decryptFn = func(ctx context.Context, _ models.DecryptDraft) error {
					cancel()
					*got = ctx
					return nil
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var got context.Context
			workflow := &fakeWorkflow{}
			tt.setup(workflow, cancel, &got)
			h := newTestHandler(authorizedSession(), workflow)

			req := multipartRequest(t, tt.path, map[string]string{"text": "m", "ciphertext": "c"}, allFiles).WithContext(ctx)
			req.Header.Set(traceIDHeader, "trace-7")
			serve(t, h, req)

			// браузер ушёл со страницы, но запрос к кодеку продолжается
			require.NotNil(t, got)
			require.Error(t, ctx.Err())
			assert.NoError(t, got.Err())

			traceID, ok := utils.GetTraceIDFromContext(got)
			assert.True(t, ok)
			assert.Equal(t, "trace-7", traceID)
		})
	}
}

func TestEncrypt_NotMultipart(t *testing.T) {
	h := newTestHandler(authorizedSession(), &fakeWorkflow{})

	rr := serve(t, h, postForm("/encrypt", url.Values{"text": {"m"}}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEncrypt_UnauthorizedRedirects(t *testing.T) {
	called := false
	workflow := &fakeWorkflow{
		encryptFn: func(context.Context, models.EncryptDraft) error {
			called = true
			return nil
		},
	}
	h := newTestHandler(unauthorizedSession(), workflow)

	rr := serve(t, h, multipartRequest(t, "/encrypt", map[string]string{"text": "m"}, allFiles))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, called)
}

func TestDecrypt_TrimsCiphertext(t *testing.T) {
	var got models.DecryptDraft
	workflow := &fakeWorkflow{
		decryptFn: func(_ context.Context, draft models.DecryptDraft) error {
			got = draft
			return nil
		},
	}
	h := newTestHandler(authorizedSession(), workflow)

	rr := serve(t, h, multipartRequest(t, "/decrypt", map[string]string{"ciphertext": "  CIPHER \n"}, allFiles))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?mode=decrypt", rr.Header().Get("Location"))
	assert.Equal(t, "CIPHER", got.Ciphertext)
	assert.Equal(t, "cover.wav", got.Media.Audio.Name)
}

func TestSaveArtifact(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		downloadErr  error
		wantStatus   int
		wantLocation string
		wantKind     models.MediaKind
	}{
		{
			name:         "image saved",
			kind:         "image",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/?status=Saved+%2Ftmp%2Fencoded_image.png",
			wantKind:     models.MediaImage,
		},
		{
			name:       "no encode result yet",
			kind:       "video",
			wantStatus: http.StatusNotFound,
			wantKind:   models.MediaVideo,
			downloadErr: fmt.Errorf("download video: %w", adapter.ErrNoArtifact),
		},
		{
			name:       "unknown kind",
			kind:       "text",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotKind models.MediaKind = -1
			workflow := &fakeWorkflow{
				downloadFn: func(_ context.Context, kind models.MediaKind, dir string) (string, error) {
					gotKind = kind
					assert.Empty(t, dir, "the configured download dir is used")
					if tt.downloadErr != nil {
						return "", tt.downloadErr
					}
					return "/tmp/" + service.ArtifactFileName(kind), nil
				},
			}
			h := newTestHandler(authorizedSession(), workflow)

			rr := serve(t, h, httptest.NewRequest(http.MethodPost, "/artifacts/"+tt.kind, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.kind != "text" {
				assert.Equal(t, tt.wantKind, gotKind)
			} else {
				assert.Equal(t, models.MediaKind(-1), gotKind)
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"in flight", service.ErrSubmissionInFlight, http.StatusConflict},
		{"no artifact", fmt.Errorf("x: %w", adapter.ErrNoArtifact), http.StatusNotFound},
		{"network", adapter.ErrNetwork, http.StatusBadGateway},
		{"auth rejected", &adapter.AuthError{StatusCode: http.StatusBadRequest}, http.StatusUnauthorized},
		{"codec failure", &adapter.RequestError{StatusCode: http.StatusBadGateway}, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
