package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

func runFlatten(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: vaultfmt flatten PATH", 1)
	}
	path := c.Args().Get(0)
	m := metadataOf(c)

	envelope, err := readEnvelope(path)
	if err != nil {
		return err
	}

	engine := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engine.Load(m.env, m.creds, m.config.CredentialsID, envelope); err != nil {
		return err
	}

	if !engine.CanBeFlattened() {
		fmt.Println("vaultfmt: history too short to flatten, nothing to do")
		return nil
	}
	engine.Flatten()

	newEnvelope, err := engine.Save(m.env, m.creds, m.config.CredentialsID)
	if err != nil {
		return err
	}
	return writeEnvelope(path, newEnvelope)
}
