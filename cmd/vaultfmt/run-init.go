package main

import (
	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

func runInit(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: vaultfmt init PATH", 1)
	}
	path := c.Args().Get(0)
	m := metadataOf(c)

	fmtLine, err := vaultfmt.BuildCommand("fmt", m.config.Format)
	if err != nil {
		return err
	}

	engine := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engine.Execute(fmtLine); err != nil {
		return err
	}

	envelope, err := engine.Save(m.env, m.creds, m.config.CredentialsID)
	if err != nil {
		return err
	}
	return writeEnvelope(path, envelope)
}
