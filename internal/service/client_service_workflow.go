// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/utils"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
)

// artifactNames are the file names an encoded artifact is saved under.
var artifactNames = map[models.MediaKind]string{
	models.MediaImage: "encoded_image.png",
	models.MediaVideo: "encoded_video.avi",
	models.MediaAudio: "encoded_audio.wav",
}

// ArtifactFileName returns the default file name of the encoded artifact of
// kind.
func ArtifactFileName(kind models.MediaKind) string {
	return artifactNames[kind]
}

// resultSetter stores a successful response in the state.
type resultSetter func(state *models.WorkflowSnapshot)

type clientWorkflowService struct {
	codec       adapter.CodecAdapter
	validator   validators.Validator
	downloadDir string
	ids         *utils.UUIDGenerator
	logger      *logger.Logger

	// notifyMu is held from taking a snapshot until every listener got it,
	// so listeners see snapshots in the order the state changed.
	notifyMu sync.Mutex

	mu     sync.Mutex
	state  models.WorkflowSnapshot
	closed bool

	listeners *listeners[models.WorkflowSnapshot]
}

// NewClientWorkflowService creates the workflow controller. Artifacts are
// saved to downloadDir unless a call names another directory.
func NewClientWorkflowService(codec adapter.CodecAdapter, downloadDir string, log *logger.Logger) ClientWorkflowService {
	return &clientWorkflowService{
		codec:       codec,
		validator:   validators.NewDraftValidator(),
		downloadDir: downloadDir,
		ids:         utils.NewUUIDGenerator(),
		logger:      log,
		listeners:   newListeners[models.WorkflowSnapshot](),
	}
}

// SubmitEncrypt implements [ClientWorkflowService].
func (s *clientWorkflowService) SubmitEncrypt(ctx context.Context, draft models.EncryptDraft) error {
	return s.submit(ctx, draft, func(ctx context.Context) (resultSetter, error) {
		result, err := s.codec.Encrypt(ctx, draft)
		if err != nil {
			return nil, err
		}
		return func(state *models.WorkflowSnapshot) { state.Encrypt = &result }, nil
	})
}

// SubmitDecrypt implements [ClientWorkflowService].
func (s *clientWorkflowService) SubmitDecrypt(ctx context.Context, draft models.DecryptDraft) error {
	return s.submit(ctx, draft, func(ctx context.Context) (resultSetter, error) {
		result, err := s.codec.Decrypt(ctx, draft)
		if err != nil {
			return nil, err
		}
		return func(state *models.WorkflowSnapshot) { state.Decrypt = &result }, nil
	})
}

// submit runs one attempt of the sub-workflow of draft: gate on the
// in-flight flag, validate, clear, send, record the outcome.
func (s *clientWorkflowService) submit(ctx context.Context, draft models.Draft, send func(context.Context) (resultSetter, error)) error {
	if err := s.begin(ctx, draft); err != nil {
		return err
	}

	setResult, err := send(ctx)
	return s.finish(draft.Mode(), setResult, err)
}

// begin gates and validates the attempt and marks the mode in flight.
func (s *clientWorkflowService) begin(ctx context.Context, draft models.Draft) error {
	mode := draft.Mode()
	log := s.logger.With().Str("mode", mode.String()).Logger()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrWorkflowClosed
	}
	if s.state.InFlight(mode) {
		s.mu.Unlock()
		log.Debug().Msg(app.MsgSubmissionInFlight)
		return ErrSubmissionInFlight
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		s.state.Err = &models.WorkflowError{Mode: mode, Message: UserMessage(err)}
		snapshot := s.snapshotLocked()
		s.mu.Unlock()

		log.Debug().Err(err).Msg("draft rejected")
		s.listeners.notify(snapshot)
		return err
	}

	s.state.Err = nil
	clearResult(&s.state, mode)
	setInFlight(&s.state, mode, true)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.notify(snapshot)
	return nil
}

// finish records the outcome of an attempt of mode.
func (s *clientWorkflowService) finish(mode models.Mode, setResult resultSetter, err error) error {
	log := s.logger.With().Str("mode", mode.String()).Logger()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Debug().Msg("controller closed, discarding response")
		if err != nil {
			return err
		}
		return ErrWorkflowClosed
	}

	setInFlight(&s.state, mode, false)
	if err != nil {
		s.state.Err = &models.WorkflowError{Mode: mode, Message: requestErrorMessage(mode, err)}
	} else {
		setResult(&s.state)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("submission failed")
	} else {
		log.Info().Msg("submission succeeded")
	}

	s.listeners.notify(snapshot)
	return err
}

func setInFlight(state *models.WorkflowSnapshot, mode models.Mode, v bool) {
	if mode == models.ModeDecode {
		state.DecryptInFlight = v
		return
	}
	state.EncryptInFlight = v
}

func clearResult(state *models.WorkflowSnapshot, mode models.Mode) {
	if mode == models.ModeDecode {
		state.Decrypt = nil
		return
	}
	state.Encrypt = nil
}

// Snapshot implements [ClientWorkflowService].
func (s *clientWorkflowService) Snapshot() models.WorkflowSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *clientWorkflowService) snapshotLocked() models.WorkflowSnapshot {
	snapshot := s.state
	if s.state.Encrypt != nil {
		encrypt := *s.state.Encrypt
		snapshot.Encrypt = &encrypt
	}
	if s.state.Decrypt != nil {
		decrypt := *s.state.Decrypt
		snapshot.Decrypt = &decrypt
	}
	if s.state.Err != nil {
		workflowErr := *s.state.Err
		snapshot.Err = &workflowErr
	}
	return snapshot
}

// Subscribe implements [ClientWorkflowService].
func (s *clientWorkflowService) Subscribe(fn func(models.WorkflowSnapshot)) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	id, unsubscribe := s.listeners.subscribe(fn)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.notifyOne(id, snapshot)
	return unsubscribe
}

// Reset implements [ClientWorkflowService].
func (s *clientWorkflowService) Reset(mode models.Mode) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	clearResult(&s.state, mode)
	s.state.Err = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.notify(snapshot)
}

// Close implements [ClientWorkflowService].
func (s *clientWorkflowService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.listeners.clear()
}

// DownloadArtifact implements [ClientWorkflowService]. An existing file is
// never overwritten; a short unique suffix is added to the name instead.
func (s *clientWorkflowService) DownloadArtifact(ctx context.Context, kind models.MediaKind, dir string) (string, error) {
	snapshot := s.Snapshot()
	if snapshot.Encrypt == nil {
		return "", adapter.ErrNoArtifact
	}
	ref := snapshot.Encrypt.Artifact(kind)
	if strings.TrimSpace(ref) == "" {
		return "", adapter.ErrNoArtifact
	}

	if dir == "" {
		dir = s.downloadDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	f, path, err := s.createArtifactFile(dir, ArtifactFileName(kind))
	if err != nil {
		return "", err
	}

	contentType, err := s.codec.Download(ctx, ref, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", path, closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		s.logger.Warn().Err(err).Str("kind", kind.String()).Msg("artifact download failed")
		return "", err
	}

	s.logger.Info().Str("path", path).Str("content_type", contentType).Msg("artifact saved")
	return path, nil
}

func (s *clientWorkflowService) createArtifactFile(dir, name string) (*os.File, string, error) {
	path := filepath.Join(dir, name)
	for attempt := 0; attempt < 3; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}

		ext := filepath.Ext(name)
		path = filepath.Join(dir, strings.TrimSuffix(name, ext)+"_"+s.ids.Short()+ext)
	}
	return nil, "", fmt.Errorf("create %s: %w", path, os.ErrExist)
}
