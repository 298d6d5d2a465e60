package vaultfmt

// Load decodes envelope, replays the resulting history into a fresh
// dataset, and replaces the engine's dataset and history with it. The
// dirty flag is cleared, since the engine now reflects exactly what's
// on disk.
func (e *Engine) Load(env FormatEnv, creds CredentialsSource, credentialsID, envelope string) error {
	lines, err := DecodeEnvelope(env, creds, credentialsID, envelope)
	if err != nil {
		e.mu.Lock()
		e.log.Errorf("load failed: %s", err)
		e.mu.Unlock()
		return err
	}

	dataset, err := Replay(lines)
	if err != nil {
		e.mu.Lock()
		e.log.Errorf("load failed to replay history: %s", err)
		e.mu.Unlock()
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataset = dataset
	e.history = lines
	e.dirty = false
	e.log.Infof("loaded history of %d command(s)", len(lines))
	return nil
}

// Save encodes the engine's current history into an envelope. It does
// not touch the dirty flag; only Clear and Load reset it, and both also
// replace the dataset and history.
func (e *Engine) Save(env FormatEnv, creds CredentialsSource, credentialsID string) (string, error) {
	e.mu.Lock()
	history := make([]string, len(e.history))
	copy(history, e.history)
	e.mu.Unlock()

	envelope, err := EncodeEnvelope(env, creds, credentialsID, history)
	if err != nil {
		e.log.Errorf("save failed: %s", err)
		return "", err
	}
	e.log.Infof("saved history of %d command(s)", len(history))
	return envelope, nil
}
