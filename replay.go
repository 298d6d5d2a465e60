package vaultfmt

// Replay folds history into a fresh dataset, applying the same
// single-command pipeline Execute uses (share prefix extraction,
// validation, tokenizing, manifest-driven argument decoding, executor
// dispatch) without touching an Engine's own history or dirty flag.
// Replaying a history produced by describing a dataset from empty
// reproduces that dataset, except for each entry's rev attribute,
// which DescribeGroup never re-emits and replay recounts.
func Replay(history []string) (*Dataset, error) {
	d := NewDataset()
	for _, line := range history {
		if err := replayLine(d, line); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func replayLine(d *Dataset, line string) error {
	shareID, rest, hasShare := stripSharePrefix(line)

	short, rawArgs, err := Tokenize(rest)
	if err != nil {
		return err
	}

	spec, ok := lookupSpec(short)
	if !ok {
		return wrapf(KindUnknownCommand, "unknown command %q", short)
	}
	if len(rawArgs) != len(spec.args) {
		return newCommandError(short, wrapf(KindInvalidCommand,
			"command %q expects %d argument(s), got %d", short, len(spec.args), len(rawArgs)))
	}

	decoded := make([]string, len(rawArgs))
	for i, tok := range rawArgs {
		decoded[i] = decodeManifestArg(tok, spec.args[i].encoded)
	}

	fn, ok := executors[short]
	if !ok {
		return wrapf(KindUnknownCommand, "unknown command %q", short)
	}

	opts := ExecOptions{}
	if hasShare {
		opts.ShareID = shareID
		opts.HasShare = true
	}

	if err := fn(d, opts, decoded); err != nil {
		return newCommandError(short, err)
	}
	return nil
}
