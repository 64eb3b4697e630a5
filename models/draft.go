// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects one of the two sub-workflows of the submission controller.
type Mode int

const (
	// ModeEncode hides a message in the media ("encrypt").
	ModeEncode Mode = iota
	// ModeDecode recovers a message from encoded media ("decrypt").
	ModeDecode
)

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

// Draft is the common shape of both request drafts: one text field plus the
// three media files. The workflow controller and the validators only work
// through this interface.
type Draft interface {
	// Mode tells which sub-workflow the draft belongs to.
	Mode() Mode
	// Text returns the message (encode) or the ciphertext token (decode).
	Text() string
	// Files returns the selected media.
	Files() MediaSet
}

// EncryptDraft is the user input of the encode sub-workflow.
type EncryptDraft struct {
	// Message is the plaintext to hide.
	Message string
	// Media holds the cover image, video and audio.
	Media MediaSet
}

func (d EncryptDraft) Mode() Mode      { return ModeEncode }
func (d EncryptDraft) Text() string    { return d.Message }
func (d EncryptDraft) Files() MediaSet { return d.Media }

// DecryptDraft is the user input of the decode sub-workflow. Ciphertext is
// usually taken from a previous [EncryptResult].
type DecryptDraft struct {
	// Ciphertext is the token returned by the encode step.
	Ciphertext string
	// Media holds the encoded image, video and audio.
	Media MediaSet
}

func (d DecryptDraft) Mode() Mode      { return ModeDecode }
func (d DecryptDraft) Text() string    { return d.Ciphertext }
func (d DecryptDraft) Files() MediaSet { return d.Media }
