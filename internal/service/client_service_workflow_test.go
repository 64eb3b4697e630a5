// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/mock"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWorkflowSvc(t *testing.T, ctrl *gomock.Controller) (*clientWorkflowService, *mock.MockCodecAdapter) {
	t.Helper()
	codec := mock.NewMockCodecAdapter(ctrl)
	svc := NewClientWorkflowService(codec, t.TempDir(), logger.Nop()).(*clientWorkflowService)
	return svc, codec
}

func memFile(name, contentType string) *models.MediaFile {
	return models.NewMediaFile(name, 4, contentType, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("data")), nil
	})
}

func coverMedia() models.MediaSet {
	return models.MediaSet{
		Image: memFile("cover.png", "image/png"),
		Video: memFile("clip.avi", "video/x-msvideo"),
		Audio: memFile("track.wav", "audio/wav"),
	}
}

func validEncryptDraft() models.EncryptDraft {
	return models.EncryptDraft{Message: "hello", Media: coverMedia()}
}

func validDecryptDraft() models.DecryptDraft {
	return models.DecryptDraft{Ciphertext: "abc", Media: coverMedia()}
}

var testEncryptResult = models.EncryptResult{Ciphertext: "abc", EncodedImage: "X", EncodedVideo: "Y", EncodedAudio: "Z"}

// snapshotRecorder collects workflow notifications.
type snapshotRecorder struct {
	mu    sync.Mutex
	items []models.WorkflowSnapshot
}

func (r *snapshotRecorder) record(s models.WorkflowSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
}

func (r *snapshotRecorder) all() []models.WorkflowSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.WorkflowSnapshot(nil), r.items...)
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestClientWorkflowService_SubmitEncrypt_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		draft models.EncryptDraft
	}{
		{name: "empty message", draft: models.EncryptDraft{Media: coverMedia()}},
		{name: "no image", draft: models.EncryptDraft{Message: "m", Media: coverMedia().With(models.MediaImage, nil)}},
		{name: "no video", draft: models.EncryptDraft{Message: "m", Media: coverMedia().With(models.MediaVideo, nil)}},
		{name: "no audio", draft: models.EncryptDraft{Message: "m", Media: coverMedia().With(models.MediaAudio, nil)}},
		{name: "nothing", draft: models.EncryptDraft{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// кодек без ожиданий: любой сетевой вызов провалит тест
			svc, _ := newTestWorkflowSvc(t, ctrl)

			err := svc.SubmitEncrypt(context.Background(), tt.draft)

			var validationErr *validators.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, validators.ErrMissingField)

			snapshot := svc.Snapshot()
			assert.Equal(t, app.MsgMissingEncryptFields, snapshot.ErrorMessage())
			assert.Equal(t, models.ModeEncode, snapshot.Err.Mode)
			assert.False(t, snapshot.EncryptInFlight)
		})
	}
}

func TestClientWorkflowService_SubmitDecrypt_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestWorkflowSvc(t, ctrl)

	err := svc.SubmitDecrypt(context.Background(), models.DecryptDraft{Media: coverMedia()})

	assert.ErrorIs(t, err, validators.ErrMissingField)
	assert.Equal(t, app.MsgMissingDecryptFields, svc.Snapshot().ErrorMessage())
}

func TestClientWorkflowService_SubmitEncrypt_UnsupportedMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestWorkflowSvc(t, ctrl)

	draft := validEncryptDraft()
	draft.Media = draft.Media.With(models.MediaImage, memFile("cover.jpg", "image/jpeg"))

	err := svc.SubmitEncrypt(context.Background(), draft)

	assert.ErrorIs(t, err, validators.ErrUnsupportedMedia)
	assert.Contains(t, svc.Snapshot().ErrorMessage(), "cover.jpg")
}

// ── Success / failure ────────────────────────────────────────────────────────

func TestClientWorkflowService_SubmitEncrypt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	ctx := context.Background()
	draft := validEncryptDraft()

	// флаг in-flight поднят на всё время запроса
	codec.EXPECT().Encrypt(ctx, gomock.Any()).DoAndReturn(func(context.Context, models.EncryptDraft) (models.EncryptResult, error) {
		assert.True(t, svc.Snapshot().EncryptInFlight)
		assert.False(t, svc.Snapshot().DecryptInFlight)
		return testEncryptResult, nil
	}).Times(1)

	require.NoError(t, svc.SubmitEncrypt(ctx, draft))

	snapshot := svc.Snapshot()
	assert.False(t, snapshot.EncryptInFlight)
	require.NotNil(t, snapshot.Encrypt)
	assert.Equal(t, testEncryptResult, *snapshot.Encrypt)
	assert.Nil(t, snapshot.Err)
}

func TestClientWorkflowService_SubmitDecrypt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.DecryptDraft) (models.DecryptResult, error) {
		assert.True(t, svc.Snapshot().DecryptInFlight)
		return models.DecryptResult{RecoveredMessage: "hello"}, nil
	})

	require.NoError(t, svc.SubmitDecrypt(context.Background(), validDecryptDraft()))

	snapshot := svc.Snapshot()
	assert.False(t, snapshot.DecryptInFlight)
	require.NotNil(t, snapshot.Decrypt)
	assert.Equal(t, "hello", snapshot.Decrypt.RecoveredMessage)
}

func TestClientWorkflowService_SubmitEncrypt_ServerError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "server message", err: &adapter.RequestError{StatusCode: http.StatusBadRequest, Message: "bad image"}, wantMsg: "bad image"},
		{name: "server message verbatim", err: &adapter.RequestError{StatusCode: http.StatusBadRequest, Message: " Image too small "}, wantMsg: " Image too small "},
		{name: "no message", err: &adapter.RequestError{StatusCode: http.StatusInternalServerError}, wantMsg: app.MsgErrorEncrypting},
		{name: "blank message", err: &adapter.RequestError{StatusCode: http.StatusInternalServerError, Message: "  "}, wantMsg: app.MsgErrorEncrypting},
		{name: "network", err: adapter.ErrNetwork, wantMsg: app.MsgErrorEncrypting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, codec := newTestWorkflowSvc(t, ctrl)
			codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptResult{}, tt.err)

			err := svc.SubmitEncrypt(context.Background(), validEncryptDraft())

			assert.ErrorIs(t, err, tt.err)
			snapshot := svc.Snapshot()
			assert.Equal(t, tt.wantMsg, snapshot.ErrorMessage())
			assert.False(t, snapshot.EncryptInFlight)
			assert.Nil(t, snapshot.Encrypt)
		})
	}
}

func TestClientWorkflowService_SubmitDecrypt_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResult{}, &adapter.RequestError{StatusCode: http.StatusBadGateway})

	_ = svc.SubmitDecrypt(context.Background(), validDecryptDraft())

	assert.Equal(t, app.MsgErrorDecrypting, svc.Snapshot().ErrorMessage())
}

func TestClientWorkflowService_ClearsAtAttemptStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	ctx := context.Background()

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)
	require.NoError(t, svc.SubmitEncrypt(ctx, validEncryptDraft()))

	// ошибка другого режима тоже очищается в начале новой попытки
	svc.mu.Lock()
	svc.state.Err = &models.WorkflowError{Mode: models.ModeDecode, Message: "old"}
	svc.mu.Unlock()

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.EncryptDraft) (models.EncryptResult, error) {
		snapshot := svc.Snapshot()
		assert.Nil(t, snapshot.Encrypt, "result must be cleared when the attempt starts")
		assert.Nil(t, snapshot.Err, "error must be cleared when the attempt starts")
		return models.EncryptResult{}, &adapter.RequestError{StatusCode: http.StatusBadRequest, Message: "bad image"}
	})

	require.Error(t, svc.SubmitEncrypt(ctx, validEncryptDraft()))
	assert.Equal(t, "bad image", svc.Snapshot().ErrorMessage())
	assert.Nil(t, svc.Snapshot().Encrypt)
}

func TestClientWorkflowService_ModesKeepIndependentResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	ctx := context.Background()

	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResult{RecoveredMessage: "hello"}, nil)
	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)

	require.NoError(t, svc.SubmitDecrypt(ctx, validDecryptDraft()))
	require.NoError(t, svc.SubmitEncrypt(ctx, validEncryptDraft()))

	snapshot := svc.Snapshot()
	require.NotNil(t, snapshot.Decrypt)
	assert.Equal(t, "hello", snapshot.Decrypt.RecoveredMessage)
	require.NotNil(t, snapshot.Encrypt)
}

// ── In-flight ────────────────────────────────────────────────────────────────

func TestClientWorkflowService_SubmitWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.EncryptDraft) (models.EncryptResult, error) {
		close(started)
		<-release
		return testEncryptResult, nil
	}).Times(1)

	done := make(chan error, 1)
	go func() { done <- svc.SubmitEncrypt(context.Background(), validEncryptDraft()) }()
	<-started

	before := svc.Snapshot()

	// повторная отправка: no-op, даже с невалидным черновиком
	assert.ErrorIs(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()), ErrSubmissionInFlight)
	assert.ErrorIs(t, svc.SubmitEncrypt(context.Background(), models.EncryptDraft{}), ErrSubmissionInFlight)
	assert.Equal(t, before, svc.Snapshot())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.Snapshot().EncryptInFlight)
}

func TestClientWorkflowService_ModesRunConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	encryptStarted := make(chan struct{})
	release := make(chan struct{})

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.EncryptDraft) (models.EncryptResult, error) {
		close(encryptStarted)
		<-release
		return testEncryptResult, nil
	})
	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.DecryptDraft) (models.DecryptResult, error) {
		snapshot := svc.Snapshot()
		assert.True(t, snapshot.EncryptInFlight)
		assert.True(t, snapshot.DecryptInFlight)
		return models.DecryptResult{RecoveredMessage: "hello"}, nil
	})

	done := make(chan error, 1)
	go func() { done <- svc.SubmitEncrypt(context.Background(), validEncryptDraft()) }()
	<-encryptStarted

	require.NoError(t, svc.SubmitDecrypt(context.Background(), validDecryptDraft()))
	close(release)
	require.NoError(t, <-done)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestClientWorkflowService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)

	rec := &snapshotRecorder{}
	unsubscribe := svc.Subscribe(rec.record)

	require.NoError(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()))

	got := rec.all()
	require.Len(t, got, 3)
	assert.False(t, got[0].EncryptInFlight)
	assert.True(t, got[1].EncryptInFlight)
	assert.False(t, got[2].EncryptInFlight)
	require.NotNil(t, got[2].Encrypt)

	unsubscribe()
	svc.Reset(models.ModeEncode)
	assert.Len(t, rec.all(), 3)
}

// Медленный подписчик не должен приводить к доставке устаревшего снимка
// после более нового: последний полученный снимок совпадает с Snapshot().
func TestClientWorkflowService_NotificationsKeepOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	decryptStarted := make(chan struct{})
	releaseDecrypt := make(chan struct{})
	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.DecryptDraft) (models.DecryptResult, error) {
		close(decryptStarted)
		<-releaseDecrypt
		return models.DecryptResult{RecoveredMessage: "hello"}, nil
	})
	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)

	encryptDelivered := make(chan struct{})
	decryptReturned := make(chan struct{})
	var once sync.Once
	svc.Subscribe(func(s models.WorkflowSnapshot) {
		if s.Encrypt == nil || s.EncryptInFlight {
			return
		}
		once.Do(func() {
			close(encryptDelivered)
			// держим уведомление о шифровании, пока дешифрование не завершится
			select {
			case <-decryptReturned:
			case <-time.After(200 * time.Millisecond):
			}
		})
	})
	rec := &snapshotRecorder{}
	svc.Subscribe(rec.record)

	go func() {
		defer close(decryptReturned)
		assert.NoError(t, svc.SubmitDecrypt(context.Background(), validDecryptDraft()))
	}()
	<-decryptStarted

	encryptDone := make(chan struct{})
	go func() {
		defer close(encryptDone)
		assert.NoError(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()))
	}()
	<-encryptDelivered
	close(releaseDecrypt)

	<-encryptDone
	<-decryptReturned

	got := rec.all()
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, svc.Snapshot(), last)
	assert.False(t, last.DecryptInFlight)
	require.NotNil(t, last.Decrypt)
	require.NotNil(t, last.Encrypt)
}

func TestClientWorkflowService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)
	codec.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResult{RecoveredMessage: "m"}, nil)

	require.NoError(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()))
	require.NoError(t, svc.SubmitDecrypt(context.Background(), validDecryptDraft()))

	svc.Reset(models.ModeEncode)

	snapshot := svc.Snapshot()
	assert.Nil(t, snapshot.Encrypt)
	assert.NotNil(t, snapshot.Decrypt)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestClientWorkflowService_LateResponseAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.EncryptDraft) (models.EncryptResult, error) {
		close(started)
		<-release
		return testEncryptResult, nil
	})

	rec := &snapshotRecorder{}
	svc.Subscribe(rec.record)

	done := make(chan error, 1)
	go func() { done <- svc.SubmitEncrypt(context.Background(), validEncryptDraft()) }()
	<-started

	svc.Close()
	close(release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrWorkflowClosed)
	case <-time.After(time.Second):
		t.Fatal("submit did not return")
	}

	// после Close слушатели больше не получают уведомлений
	assert.Len(t, rec.all(), 2)
	assert.ErrorIs(t, svc.SubmitDecrypt(context.Background(), validDecryptDraft()), ErrWorkflowClosed)
}

// ── DownloadArtifact ─────────────────────────────────────────────────────────

func TestClientWorkflowService_DownloadArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)
	ctx := context.Background()

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)
	require.NoError(t, svc.SubmitEncrypt(ctx, validEncryptDraft()))

	codec.EXPECT().Download(gomock.Any(), "Z", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, w io.Writer) (string, error) {
		_, err := w.Write([]byte("RIFF"))
		return "audio/wav", err
	}).Times(2)

	dir := t.TempDir()
	path, err := svc.DownloadArtifact(ctx, models.MediaAudio, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "encoded_audio.wav"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data))

	// существующий файл не перезаписывается
	second, err := svc.DownloadArtifact(ctx, models.MediaAudio, dir)
	require.NoError(t, err)
	assert.NotEqual(t, path, second)
	assert.True(t, strings.HasPrefix(filepath.Base(second), "encoded_audio_"))
	assert.Equal(t, ".wav", filepath.Ext(second))
}

func TestClientWorkflowService_DownloadArtifact_DefaultDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)
	require.NoError(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()))
	codec.EXPECT().Download(gomock.Any(), "X", gomock.Any()).Return("image/png", nil)

	path, err := svc.DownloadArtifact(context.Background(), models.MediaImage, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(svc.downloadDir, "encoded_image.png"), path)
}

func TestClientWorkflowService_DownloadArtifact_NoResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestWorkflowSvc(t, ctrl)

	_, err := svc.DownloadArtifact(context.Background(), models.MediaImage, t.TempDir())
	assert.ErrorIs(t, err, adapter.ErrNoArtifact)
}

func TestClientWorkflowService_DownloadArtifact_FailureRemovesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, codec := newTestWorkflowSvc(t, ctrl)

	codec.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(testEncryptResult, nil)
	require.NoError(t, svc.SubmitEncrypt(context.Background(), validEncryptDraft()))
	codec.EXPECT().Download(gomock.Any(), "Y", gomock.Any()).Return("", &adapter.RequestError{StatusCode: http.StatusNotFound})

	dir := t.TempDir()
	_, err := svc.DownloadArtifact(context.Background(), models.MediaVideo, dir)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "encoded_video.avi"))
	assert.True(t, os.IsNotExist(statErr))
}
