// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptResponse is the JSON body of a successful POST /encrypt.
type EncryptResponse struct {
	// Ciphertext is the token required by POST /decrypt.
	Ciphertext string `json:"ciphertext"`

	// EncodedImage is a data-URI or URL of the encoded PNG.
	EncodedImage string `json:"encoded_image"`

	// EncodedVideo is a data-URI or URL of the encoded video.
	EncodedVideo string `json:"encoded_video"`

	// EncodedAudio is a data-URI or URL of the encoded WAV.
	EncodedAudio string `json:"encoded_audio"`
}

// ToResult converts the wire response into the domain result.
func (r EncryptResponse) ToResult() EncryptResult {
	return EncryptResult{
		Ciphertext:   r.Ciphertext,
		EncodedImage: r.EncodedImage,
		EncodedVideo: r.EncodedVideo,
		EncodedAudio: r.EncodedAudio,
	}
}

// DecryptResponse is the JSON body of a successful POST /decrypt.
type DecryptResponse struct {
	// DecryptedText is the recovered message.
	DecryptedText string `json:"decrypted_text"`
}

// ErrorResponse is the JSON body the codec service sends with a non-2xx
// status.
type ErrorResponse struct {
	Error string `json:"error"`
}
