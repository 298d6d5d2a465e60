package main

import (
	"os"

	"github.com/pkg/errors"
)

func readEnvelope(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %q", path)
	}
	return string(data), nil
}

func writeEnvelope(path, envelope string) error {
	if err := os.WriteFile(path, []byte(envelope), 0600); err != nil {
		return errors.Wrapf(err, "cannot write %q", path)
	}
	return nil
}
