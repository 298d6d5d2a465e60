package vaultfmt

import (
	"strings"

	"github.com/pkg/errors"
)

// BuildCommand constructs a syntactically valid command string from a
// short key and its ordered, decoded argument values. Arguments
// the manifest flags as encoded are wrapped in the encoded envelope;
// others are passed through literally. The result round-trips through
// Tokenize/decode back to (short, args).
func BuildCommand(short string, args ...string) (string, error) {
	spec, ok := lookupSpec(short)
	if !ok {
		return "", newError(KindUnknownCommand, errors.Errorf("unknown command %q", short))
	}
	if len(args) != len(spec.args) {
		return "", newError(KindInvalidCommand, errors.Errorf(
			"command %q expects %d argument(s), got %d", short, len(spec.args), len(args)))
	}

	var b strings.Builder
	b.WriteString(short)
	for i, a := range args {
		b.WriteByte(' ')
		if spec.args[i].encoded {
			b.WriteString(encodeArg(a))
		} else {
			b.WriteString(a)
		}
	}
	return b.String(), nil
}

// buildShareLine prefixes line with the share marker, used when
// re-emitting lines that came from a shared history.
func buildShareLine(shareID ID, line string) string {
	return "$" + string(shareID) + " " + line
}
