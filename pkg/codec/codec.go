// Package codec implements the transparent encryption applied to files
// under the secure extension. Payload layout on disk:
//
//	magic (4 bytes) || nonce (12 bytes) || AES-256-GCM ciphertext
//
// A fresh random nonce is drawn for every encryption and persisted in
// front of the ciphertext, so two encryptions of the same content never
// produce identical payloads. Decryption failures are explicit errors;
// ciphertext is never handed back as plaintext.
package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

var magic = []byte("QDC1")

const nonceSize = 12

// ErrNotEncrypted is returned when a payload lacks the magic header.
// This typically means the file was written before encryption was
// enabled, or under a different scheme.
var ErrNotEncrypted = errors.New("payload is not an encrypted document")

// Encrypt seals plaintext under key. It either succeeds completely or
// fails with an error; there is no partial output.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to draw nonce: %w", err)
	}

	out := make([]byte, 0, len(magic)+nonceSize+len(plaintext)+aead.Overhead())
	out = append(out, magic...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Decrypt opens a payload produced by Encrypt. Any failure (missing
// header, truncated payload, wrong key, tampered ciphertext) is
// reported; the caller decides how to recover.
func Decrypt(payload, key []byte) ([]byte, error) {
	if len(payload) < len(magic)+nonceSize {
		return nil, ErrNotEncrypted
	}
	for i := range magic {
		if payload[i] != magic[i] {
			return nil, ErrNotEncrypted
		}
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := payload[len(magic) : len(magic)+nonceSize]
	ciphertext := payload[len(magic)+nonceSize:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("ciphertext authentication failed: %w", err)
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
