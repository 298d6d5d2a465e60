package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

func runExec(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("usage: vaultfmt exec PATH COMMAND [ARGS...]", 1)
	}
	path := c.Args().Get(0)
	commandLine := strings.Join(c.Args()[1:], " ")
	m := metadataOf(c)

	envelope, err := readEnvelope(path)
	if err != nil {
		return err
	}

	engine := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engine.Load(m.env, m.creds, m.config.CredentialsID, envelope); err != nil {
		return err
	}

	if err := engine.Execute(commandLine); err != nil {
		return err
	}

	newEnvelope, err := engine.Save(m.env, m.creds, m.config.CredentialsID)
	if err != nil {
		return err
	}
	return writeEnvelope(path, newEnvelope)
}
