package vaultfmt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// FormatEnv is the explicit, constructor-injected registry of
// crypto/compression primitives consumed by the envelope codec, in
// place of a process-wide singleton lookup keyed by strings like
// "compression/v1/compressText". Plain struct fields can be swapped
// per test or per deployment without touching a global.
type FormatEnv struct {
	CompressText   func([]byte) ([]byte, error)
	DecompressText func([]byte) ([]byte, error)
	EncryptText    func(plaintext []byte, password string) ([]byte, error)
	DecryptText    func(ciphertext []byte, password string) ([]byte, error)
}

// FormatEnvOption configures a FormatEnv being built with NewFormatEnv.
type FormatEnvOption func(*FormatEnv)

// WithCompression overrides the compression primitives.
func WithCompression(compress, decompress func([]byte) ([]byte, error)) FormatEnvOption {
	return func(env *FormatEnv) {
		env.CompressText = compress
		env.DecompressText = decompress
	}
}

// WithCrypto overrides the encryption primitives.
func WithCrypto(encrypt, decrypt func([]byte, string) ([]byte, error)) FormatEnvOption {
	return func(env *FormatEnv) {
		env.EncryptText = encrypt
		env.DecryptText = decrypt
	}
}

// NewFormatEnv builds a FormatEnv from the default primitives plus any
// overrides, panicking if the result is left with a nil primitive — a
// programmer error akin to jasontbradshaw-pass's cryptVersions registry
// panicking on a duplicate version number, not a runtime condition a
// caller could reasonably recover from.
func NewFormatEnv(opts ...FormatEnvOption) FormatEnv {
	env := DefaultFormatEnv()
	for _, opt := range opts {
		opt(&env)
	}
	if env.CompressText == nil || env.DecompressText == nil ||
		env.EncryptText == nil || env.DecryptText == nil {
		panic("vaultfmt: FormatEnv is missing a required primitive")
	}
	return env
}

// DefaultFormatEnv returns the standard primitives: AES-256-GCM with a
// PBKDF2-SHA256 derived key for encryption, and snappy for
// compression.
func DefaultFormatEnv() FormatEnv {
	return FormatEnv{
		CompressText:   snappyCompress,
		DecompressText: snappyDecompress,
		EncryptText:    defaultEncryptText,
		DecryptText:    defaultDecryptText,
	}
}

func snappyCompress(plaintext []byte) ([]byte, error) {
	return snappy.Encode(nil, plaintext), nil
}

func snappyDecompress(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, nil
	}
	out, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, newError(KindDecompressionFailed, errors.Wrap(err, "snappy decode failed"))
	}
	return out, nil
}

const (
	saltSize   = 32
	nonceSize  = 12
	pbkdf2Iter = 20000
	keySize    = 32
)

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iter, keySize, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aes cipher")
	}
	return cipher.NewGCM(block)
}

// defaultEncryptText derives a key from a fresh random salt and
// encrypts plaintext with AES-256-GCM under a fresh random nonce. The
// output is salt || nonce || ciphertext; the salt is regenerated on
// every call so the derived key never repeats across saves.
func defaultEncryptText(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "cannot generate salt")
	}
	gcm, err := newGCM(deriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "cannot generate nonce")
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// defaultDecryptText reverses defaultEncryptText. An empty plaintext
// after a successful GCM open is treated as failure, since a real
// history is never empty by the time it reaches the encryption step
// (Execute always appends at least a pad).
func defaultDecryptText(data []byte, password string) ([]byte, error) {
	if len(data) < saltSize+nonceSize {
		return nil, newError(KindDecryptionFailed, errors.New("ciphertext too short"))
	}
	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	gcm, err := newGCM(deriveKey(password, salt))
	if err != nil {
		return nil, newError(KindDecryptionFailed, err)
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, newError(KindDecryptionFailed, errors.Wrap(err, "gcm open failed"))
	}
	if len(plaintext) == 0 {
		return nil, newError(KindDecryptionFailed, errors.New("decrypted to empty plaintext"))
	}
	return plaintext, nil
}

// CredentialsSource is the external collaborator that resolves a
// credentials ID to the master password used to encrypt/decrypt an
// envelope. This package never implements it; callers supply their
// own.
type CredentialsSource interface {
	Password(credentialsID string) (string, error)
}
