package vaultfmt

import "encoding/base64"

// encodeArg wraps value in the encoded envelope: double quotes
// around the base64-transported interior. Any value can be encoded,
// including one with no whitespace or quotes in it — the encoding is
// unconditional whenever the manifest flags an argument as encoded.
func encodeArg(value string) string {
	return `"` + base64.StdEncoding.EncodeToString([]byte(value)) + `"`
}

// isEncodedArg reports whether token has the encoded envelope shape:
// surrounded by double quotes.
func isEncodedArg(token string) bool {
	return len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
}

// decodeArg reverses encodeArg. A token that carries the encoded
// envelope but fails to base64-decode is returned unchanged along with
// false, so that callers may fall back to treating it as literal:
// manifest-driven decoding comes first, with a heuristic fallback only
// for legacy lines that don't round-trip.
func decodeArg(token string) (string, bool) {
	if !isEncodedArg(token) {
		return token, false
	}
	interior := token[1 : len(token)-1]
	decoded, err := base64.StdEncoding.DecodeString(interior)
	if err != nil {
		return token, false
	}
	return string(decoded), true
}

// decodeManifestArg decodes one raw argument token. Whatever the
// manifest's encode flag says, a token carrying the quoted envelope is
// tried as base64 first and its decoded value returned on success; a
// token without the envelope, or one whose interior is not valid
// base64, is returned unchanged, which allows legacy unencoded values
// to replay without corruption.
func decodeManifestArg(token string, encoded bool) string {
	if !encoded {
		if decoded, ok := decodeArg(token); ok {
			return decoded
		}
		return token
	}
	if decoded, ok := decodeArg(token); ok {
		return decoded
	}
	return token
}
