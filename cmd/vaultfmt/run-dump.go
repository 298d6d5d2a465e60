package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

func runDump(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: vaultfmt dump PATH", 1)
	}
	path := c.Args().Get(0)
	m := metadataOf(c)
	m.reveal = c.Bool("reveal")

	envelope, err := readEnvelope(path)
	if err != nil {
		return err
	}

	engine := vaultfmt.NewEngine(m.engineOptions()...)
	if err := engine.Load(m.env, m.creds, m.config.CredentialsID, envelope); err != nil {
		return err
	}

	dumpDataset(engine.GetDataset(), m.reveal)
	return nil
}

func dumpDataset(d *vaultfmt.Dataset, reveal bool) {
	fmt.Printf("vault %s (format %q)\n", d.ID, d.Format)
	for _, g := range d.Groups {
		dumpGroup(g, 1, reveal)
	}
}

func dumpGroup(g *vaultfmt.Group, depth int, reveal bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%sgroup %s %q\n", indent, g.ID, g.Title)
	for _, e := range g.Entries {
		dumpEntry(e, depth+1, reveal)
	}
	for _, child := range g.Groups {
		dumpGroup(child, depth+1, reveal)
	}
}

func dumpEntry(e *vaultfmt.Entry, depth int, reveal bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%sentry %s\n", indent, e.ID)
	if !reveal {
		return
	}
	for k, v := range e.Properties {
		fmt.Printf("%s  %s = %s\n", indent, k, v)
	}
	for k, v := range e.Attributes {
		fmt.Printf("%s  @%s = %s\n", indent, k, v)
	}
}
