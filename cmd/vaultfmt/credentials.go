package main

import (
	"fmt"

	"github.com/howeyc/gopass"
)

// promptCredentials implements vaultfmt.CredentialsSource by asking the
// terminal once and caching the answer for the lifetime of the
// process.
type promptCredentials struct {
	cached map[string]string
}

func newPromptCredentials() *promptCredentials {
	return &promptCredentials{cached: make(map[string]string)}
}

func (p *promptCredentials) Password(credentialsID string) (string, error) {
	if pw, ok := p.cached[credentialsID]; ok {
		return pw, nil
	}
	fmt.Printf("Passphrase [%s]: ", credentialsID)
	pw, err := gopass.GetPasswd()
	if err != nil {
		return "", err
	}
	p.cached[credentialsID] = string(pw)
	return string(pw), nil
}
