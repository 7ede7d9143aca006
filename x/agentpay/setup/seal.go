package setup

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

var sealedMagic = []byte("APK1")

const sealSaltLength = 16

// KDFParams are the Argon2id cost parameters used to seal proving keys.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams: time=3, memory=64MB, threads=4
var DefaultKDFParams = KDFParams{Time: 3, Memory: 64 * 1024, Threads: 4}

// IsSealed reports whether data was produced by seal.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealedMagic)
}

// seal encrypts plaintext with a key derived from password and bound to label.
// Layout: magic | salt | nonce | ciphertext+tag.
func seal(plaintext, password []byte, label string, params KDFParams) ([]byte, error) {
	salt := make([]byte, sealSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	gcm, err := newGCM(password, salt, label, params)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, len(sealedMagic)+len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, sealedMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, []byte(label)), nil
}

func unseal(data, password []byte, label string, params KDFParams) ([]byte, error) {
	if !IsSealed(data) {
		return nil, errors.New("data is not sealed")
	}
	data = data[len(sealedMagic):]
	if len(data) < sealSaltLength {
		return nil, errors.New("sealed data truncated")
	}
	salt, rest := data[:sealSaltLength], data[sealSaltLength:]

	gcm, err := newGCM(password, salt, label, params)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, errors.New("sealed data truncated")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(label))
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return plaintext, nil
}

func newGCM(password, salt []byte, label string, params KDFParams) (cipher.AEAD, error) {
	master := argon2.IDKey(password, salt, params.Time, params.Memory, params.Threads, 32)
	defer wipe(master)

	key := make([]byte, 32)
	defer wipe(key)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, salt, []byte("agentpay/"+label)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func wipe(bz []byte) {
	for i := range bz {
		bz[i] = 0
	}
}
