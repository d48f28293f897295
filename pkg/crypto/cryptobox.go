package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

const (
	KeySize   = 32 // AES-256
	nonceSize = 12
	tagSize   = 16
)

// Envelope is the stored form of an encrypted message body: base64
// ciphertext with hex nonce and hex authentication tag. All three are
// present together or the message carries no content at all.
type Envelope struct {
	Ciphertext string
	IV         string
	Tag        string
}

// Empty reports whether the envelope carries no content.
func (e Envelope) Empty() bool {
	return e.Ciphertext == "" && e.IV == "" && e.Tag == ""
}

// Box seals and opens message bodies with AES-256-GCM. It holds the key for
// its lifetime but never persists or logs it.
type Box struct {
	aead cipher.AEAD
}

func NewBox(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, errors.InvalidArg("encryption key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "cipher init failed", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "gcm init failed", err)
	}
	return &Box{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random 96-bit nonce. Nonce reuse
// under the same key breaks GCM, so the nonce always comes from crypto/rand
// and is never derived from the message.
func (b *Box) Seal(plaintext []byte) (Envelope, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, errors.Wrap(errors.CodeInternal, "nonce generation failed", err)
	}

	sealed := b.aead.Seal(nil, nonce, plaintext, nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         hex.EncodeToString(nonce),
		Tag:        hex.EncodeToString(tag),
	}, nil
}

// Open authenticates and decrypts an envelope. Any malformed field or tag
// mismatch yields ErrDecryptionFail; callers must surface a visible
// placeholder, never plaintext-shaped garbage.
func (b *Box) Open(env Envelope) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, errors.ErrDecryptionFail
	}
	nonce, err := hex.DecodeString(env.IV)
	if err != nil || len(nonce) != nonceSize {
		return nil, errors.ErrDecryptionFail
	}
	tag, err := hex.DecodeString(env.Tag)
	if err != nil || len(tag) != tagSize {
		return nil, errors.ErrDecryptionFail
	}

	plaintext, err := b.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, errors.ErrDecryptionFail
	}
	return plaintext, nil
}
