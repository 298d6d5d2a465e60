package vaultfmt

// StripDestructive returns a new history with every destructive command
// (den, dgr, dea, dep, dem, dga, daa) removed. Share-prefixed
// lines are classified by their inner short key; the prefix, when
// present, is preserved on lines that survive. The result is used prior
// to concatenating two divergent histories for merge-style replay.
func StripDestructive(history []string) []string {
	out := make([]string, 0, len(history))
	for _, line := range history {
		_, rest, _ := stripSharePrefix(line)
		short, _, err := Tokenize(rest)
		if err != nil {
			// a line that doesn't even parse as a command can't be
			// classified as destructive; keep it and let replay surface
			// the error where it belongs.
			out = append(out, line)
			continue
		}
		if isDestructive(short) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Merge concatenates two histories after stripping destructive commands
// from the second (the "incoming" history), yielding a combined history
// suitable for re-replay from empty. Concatenation order matters for
// mgr/men, which is why only destructive commands are stripped and
// order-sensitive moves are preserved.
func Merge(base, incoming []string) []string {
	stripped := StripDestructive(incoming)
	merged := make([]string, 0, len(base)+len(stripped))
	merged = append(merged, base...)
	merged = append(merged, stripped...)
	return merged
}

// MergeEngines merges two engines' histories and returns a new
// Engine whose dataset is the replay of the merged history. Neither
// input engine is modified.
func MergeEngines(base, incoming *Engine, opts ...EngineOption) (*Engine, error) {
	merged := Merge(base.GetHistory(), incoming.GetHistory())
	e := NewEngine(opts...)
	dataset, err := Replay(merged)
	if err != nil {
		e.log.Errorf("merge failed to replay history: %s", err)
		return nil, err
	}
	e.dataset = dataset
	e.history = merged
	e.dirty = false
	e.log.Infof("merged histories into %d command(s)", len(merged))
	return e, nil
}
