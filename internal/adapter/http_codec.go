// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/utils"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/go-resty/resty/v2"
)

const (
	encryptPath = "/encrypt"
	decryptPath = "/decrypt"

	traceIDHeader = "X-Trace-ID"
)

type httpCodecAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPCodecAdapter constructs the HTTP implementation of [CodecAdapter]
// bound to adapterCfg.CodecAddress. Requests are bounded by
// adapterCfg.RequestTimeout and never retried.
func NewHTTPCodecAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (CodecAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CodecAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid codec address: %w", err)
	}

	return &httpCodecAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

// Encrypt implements [CodecAdapter].
func (h *httpCodecAdapter) Encrypt(ctx context.Context, draft models.EncryptDraft) (models.EncryptResult, error) {
	var out models.EncryptResponse
	if err := h.submit(ctx, encryptPath, draft, &out); err != nil {
		return models.EncryptResult{}, err
	}

	return out.ToResult(), nil
}

// Decrypt implements [CodecAdapter].
func (h *httpCodecAdapter) Decrypt(ctx context.Context, draft models.DecryptDraft) (models.DecryptResult, error) {
	var out models.DecryptResponse
	if err := h.submit(ctx, decryptPath, draft, &out); err != nil {
		return models.DecryptResult{}, err
	}

	return models.DecryptResult{RecoveredMessage: out.DecryptedText}, nil
}

// submit assembles the multipart body of draft, posts it to path and decodes
// a 2xx JSON body into out.
func (h *httpCodecAdapter) submit(ctx context.Context, path string, draft models.Draft, out any) error {
	req, closeFiles, err := h.multipartRequest(ctx, draft)
	defer closeFiles()
	if err != nil {
		return &RequestError{err: err}
	}

	log := h.logger.WithTraceID(req.Header.Get(traceIDHeader))

	resp, err := req.Post(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("codec request failed")
		return networkRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Str("path", path).Int("status", resp.StatusCode()).Err(err).Msg("codec request rejected")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		log.Err(err).Str("path", path).Msg("codec response is not valid JSON")
		return &RequestError{StatusCode: resp.StatusCode(), err: fmt.Errorf("decode response: %w", err)}
	}

	log.Info().Str("path", path).Dur("took", resp.Time()).Msg("codec request completed")
	return nil
}

func (h *httpCodecAdapter) multipartRequest(ctx context.Context, draft models.Draft) (*resty.Request, func(), error) {
	textField, fileFields := validators.FieldNames(draft.Mode())

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.traceID(ctx)).
		SetMultipartFormData(map[string]string{textField: draft.Text()})

	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	files := draft.Files()
	for i, kind := range models.MediaKinds {
		f := files.Get(kind)
		if f == nil {
			return nil, closeAll, fmt.Errorf("%s: %w", fileFields[i], models.ErrMediaFileHasNoSource)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, closeAll, fmt.Errorf("open %s: %w", f.Name, err)
		}
		opened = append(opened, rc)

		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		req.SetMultipartField(fileFields[i], f.Name, contentType, rc)
	}

	return req, closeAll, nil
}

func (h *httpCodecAdapter) traceID(ctx context.Context) string {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return traceID
	}
	return h.ids.Generate()
}

// Download implements [CodecAdapter]. Data-URIs are decoded locally; any
// other reference is fetched with GET.
func (h *httpCodecAdapter) Download(ctx context.Context, ref string, w io.Writer) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNoArtifact
	}

	if utils.IsDataURI(ref) {
		mediaType, data, err := utils.DecodeDataURI(ref)
		if err != nil {
			return "", err
		}
		if _, err = w.Write(data); err != nil {
			return "", fmt.Errorf("write artifact: %w", err)
		}
		return mediaType, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.traceID(ctx)).
		SetDoNotParseResponse(true).
		Get(ref)
	if err != nil {
		return "", networkRequestError(err)
	}

	body := resp.RawBody()
	defer body.Close()

	if !isSuccess(resp) {
		data, _ := io.ReadAll(io.LimitReader(body, 4096))
		var errBody models.ErrorResponse
		_ = json.Unmarshal(data, &errBody)
		return "", &RequestError{StatusCode: resp.StatusCode(), Message: errBody.Error}
	}

	if _, err = io.Copy(w, body); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", networkRequestError(err)
		}
		return "", fmt.Errorf("write artifact: %w", err)
	}

	return resp.Header().Get("Content-Type"), nil
}
