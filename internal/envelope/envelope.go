// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope implements the on-disk format of an encrypted vault.
//
// An [Envelope] carries three independent byte strings: the ciphertext (with
// its authentication tag), the key-derivation salt and the cipher nonce.
// Each field is base64-encoded (standard alphabet) and stored under its own
// JSON member, so the reader does not depend on member order:
//
//	{
//	  "cipher_text_b64": "...",
//	  "salt_b64": "...",
//	  "nonce_b64": "..."
//	}
//
// The codec knows nothing about the cipher: it round-trips any byte strings,
// including an empty ciphertext, and leaves length checks to its callers.
package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Envelope is the decoded form of a vault file.
type Envelope struct {
	Ciphertext []byte
	Salt       []byte
	Nonce      []byte
}

// fileEnvelope is the JSON wire form. Pointer fields tell a missing member
// apart from an empty one.
type fileEnvelope struct {
	CipherText *string `json:"cipher_text_b64"`
	Salt       *string `json:"salt_b64"`
	Nonce      *string `json:"nonce_b64"`
}

// Encode serializes env into the vault file document.
func Encode(env Envelope) ([]byte, error) {
	ct := base64.StdEncoding.EncodeToString(env.Ciphertext)
	salt := base64.StdEncoding.EncodeToString(env.Salt)
	nonce := base64.StdEncoding.EncodeToString(env.Nonce)

	data, err := json.MarshalIndent(fileEnvelope{
		CipherText: &ct,
		Salt:       &salt,
		Nonce:      &nonce,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	return data, nil
}

// Decode parses a vault file document. Every failure wraps [ErrFormat]:
// [ErrMalformedDocument] for broken JSON, [ErrMissingField] for an absent
// member and [ErrInvalidEncoding] for a member that is not valid base64.
func Decode(data []byte) (Envelope, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Envelope{}, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	var raw fileEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	ct, err := decodeField("cipher_text_b64", raw.CipherText)
	if err != nil {
		return Envelope{}, err
	}
	salt, err := decodeField("salt_b64", raw.Salt)
	if err != nil {
		return Envelope{}, err
	}
	nonce, err := decodeField("nonce_b64", raw.Nonce)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{Ciphertext: ct, Salt: salt, Nonce: nonce}, nil
}

func decodeField(name string, value *string) ([]byte, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	decoded, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEncoding, name, err)
	}
	return decoded, nil
}
