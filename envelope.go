package vaultfmt

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// signaturePrefix declares the envelope version and format so legacy or
// foreign content is rejected cleanly rather than mis-decoded. "VLT1"
// is this package's own envelope tag; it intentionally does not
// attempt to recognise any prior binary framing.
const signaturePrefix = "VLT1:"

// hasValidSignature reports whether envelope begins with the current
// signature prefix.
func hasValidSignature(envelope string) bool {
	return strings.HasPrefix(envelope, signaturePrefix)
}

// stripSignature removes the signature prefix, returning the raw
// base64 ciphertext body. Callers must have already checked
// hasValidSignature.
func stripSignature(envelope string) string {
	return strings.TrimPrefix(envelope, signaturePrefix)
}

// EncodeEnvelope joins history with newlines, compresses, encrypts with
// the credentials resolved from credentialsID, and prepends the
// signature.
func EncodeEnvelope(env FormatEnv, creds CredentialsSource, credentialsID string, history []string) (string, error) {
	password, err := creds.Password(credentialsID)
	if err != nil {
		return "", errors.Wrap(err, "cannot resolve credentials")
	}

	plaintext := []byte(strings.Join(history, "\n"))

	compressed, err := env.CompressText(plaintext)
	if err != nil {
		// The pipeline has no dedicated encode-side kind, so this
		// reuses the decompression family; the wrapped message keeps
		// the direction unambiguous in logs.
		return "", newError(KindDecompressionFailed, errors.Wrap(err, "encode: compress failed"))
	}

	ciphertext, err := env.EncryptText(compressed, password)
	if err != nil {
		return "", newError(KindDecryptionFailed, errors.Wrap(err, "encode: encrypt failed"))
	}

	return signaturePrefix + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecodeEnvelope verifies the signature, decrypts, decompresses (unless
// the decrypted payload is empty), and splits on newlines.
func DecodeEnvelope(env FormatEnv, creds CredentialsSource, credentialsID string, envelope string) ([]string, error) {
	if !hasValidSignature(envelope) {
		return nil, newError(KindInvalidSignature, errors.New("missing or unrecognised signature prefix"))
	}
	body := stripSignature(envelope)

	ciphertext, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, newError(KindInvalidSignature, errors.Wrap(err, "malformed base64 body"))
	}

	password, err := creds.Password(credentialsID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot resolve credentials")
	}

	compressed, err := env.DecryptText(ciphertext, password)
	if err != nil {
		return nil, err
	}

	var plaintext []byte
	if len(compressed) > 0 {
		plaintext, err = env.DecompressText(compressed)
		if err != nil {
			return nil, err
		}
	}

	if len(plaintext) == 0 {
		return nil, nil
	}
	return strings.Split(string(plaintext), "\n"), nil
}
