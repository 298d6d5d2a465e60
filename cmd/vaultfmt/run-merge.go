package main

import (
	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

func runMerge(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.NewExitError("usage: vaultfmt merge PATH_A PATH_B OUT_PATH", 1)
	}
	pathA, pathB, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	m := metadataOf(c)

	envelopeA, err := readEnvelope(pathA)
	if err != nil {
		return err
	}
	envelopeB, err := readEnvelope(pathB)
	if err != nil {
		return err
	}

	engineA := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engineA.Load(m.env, m.creds, m.config.CredentialsID, envelopeA); err != nil {
		return err
	}
	engineB := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engineB.Load(m.env, m.creds, m.config.CredentialsID, envelopeB); err != nil {
		return err
	}

	merged, err := vaultfmt.MergeEngines(engineA, engineB, m.engineOptions()...)
	if err != nil {
		return err
	}

	envelope, err := merged.Save(m.env, m.creds, m.config.CredentialsID)
	if err != nil {
		return err
	}
	return writeEnvelope(outPath, envelope)
}
