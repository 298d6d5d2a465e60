/*
Package vaultfmt implements a vault format engine: a hierarchical,
encrypted secrets database represented as an append-only log of textual
commands.

Command grammar

Each history line is a three-letter short key followed by whitespace
separated arguments, e.g. "cgr 0 11111111-1111-1111-1111-111111111111".
Arguments that may contain whitespace or quotes are wrapped in a
base64-transported encoded envelope; Tokenize preserves quoted runs so
these arguments survive splitting intact.

Replay

Replaying a history from an empty dataset with Replay reconstructs the
same nested groups, entries, properties, and attributes that produced
it. Engine wraps this with an execute/append/pad lifecycle, a dirty
flag, and change-signal subscribers.

Envelope

A vault's persistent form is a signed, compressed, encrypted envelope
wrapping the newline-joined history. EncodeEnvelope/DecodeEnvelope
implement the framing; the compression and encryption primitives
themselves are supplied through a FormatEnv, so callers can substitute
their own without touching this package.

Merging

Two divergent histories can be combined with Merge, which strips
destructive commands from the incoming history before concatenation, so
that a delete made on one branch does not resurrect a create made on
the other by being replayed out of order.

Limitations

This package does not manage storage, UI, or the credentials object
itself — those are external collaborators. It also assumes a single
writer per Engine; concurrent Execute calls block on an internal mutex
rather than racing, but there is no multi-writer coordination beyond
that.
*/
package vaultfmt
