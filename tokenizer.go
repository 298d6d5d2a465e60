package vaultfmt

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// validCommandExp matches "three lowercase letters, whitespace, at least
// one more character", applied to a line *after* any share prefix
// has been stripped.
var validCommandExp = regexp.MustCompile(`^[a-z]{3}\s.+$`)

// sharePrefixExp matches the "$<uuid> " prefix of a share-scoped line.
// The uuid production is the canonical 8-4-4-4-12 hex form.
var sharePrefixExp = regexp.MustCompile(`^\$([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}) (.*)$`)

// stripSharePrefix extracts the share ID and remainder from a
// share-prefixed line. ok is false if line carries no share prefix, in
// which case rest is line unchanged.
func stripSharePrefix(line string) (shareID ID, rest string, ok bool) {
	m := sharePrefixExp.FindStringSubmatch(line)
	if m == nil {
		return "", line, false
	}
	return ID(m[1]), m[2], true
}

// Tokenize splits a single command line (with any share prefix already
// stripped) into a lower-cased short key and ordered argument tokens,
// preserving quoted runs so encoded arguments remain intact.
func Tokenize(line string) (short string, args []string, err error) {
	if !validCommandExp.MatchString(line) {
		return "", nil, newError(KindInvalidCommand, errors.Errorf("malformed command line %q", line))
	}

	tokens := splitPreservingQuotes(line)
	short = strings.ToLower(tokens[0])
	args = tokens[1:]
	return short, args, nil
}

// splitPreservingQuotes splits on runs of whitespace, except inside a
// double-quoted run, which is kept as a single token including its
// surrounding quotes.
func splitPreservingQuotes(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case isSpace(r) && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
