package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/e-XpertSolutions/vaultfmt"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

// metadata bundles the state every subcommand action needs, mirroring
// the shared metadata struct threaded through bitmark-cli's run-*.go
// files via app.Metadata.
type metadata struct {
	config vaultfmt.Config
	creds  *promptCredentials
	env    vaultfmt.FormatEnv
	log    *logger.L
	reveal bool
}

// engineOptions is the EngineOption slice every subcommand should pass
// to vaultfmt.NewEngine, combining the config-derived padding range
// with this run's logger.
func (m *metadata) engineOptions() []vaultfmt.EngineOption {
	return append(m.config.EngineOptions(), vaultfmt.WithLogger(m.log))
}

func main() {
	app := cli.NewApp()
	app.Name = "vaultfmt"
	app.Usage = "inspect and mutate vaultfmt encrypted history vaults"
	app.Version = version
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "vaultfmt.yaml",
			Usage: "path to the YAML config `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log engine activity to the console",
		},
	}

	app.Before = func(c *cli.Context) error {
		cfg, err := vaultfmt.LoadConfig(c.GlobalString("config"))
		if err != nil {
			return err
		}

		level := "critical"
		if c.GlobalBool("verbose") {
			level = "debug"
		}
		if err := logger.Initialise(logger.Configuration{
			Directory: os.TempDir(),
			File:      "vaultfmt.log",
			Size:      1048576,
			Count:     5,
			Console:   c.GlobalBool("verbose"),
			Levels:    map[string]string{logger.DefaultTag: level},
		}); err != nil {
			return err
		}

		c.App.Metadata["m"] = &metadata{
			config: cfg,
			creds:  newPromptCredentials(),
			env:    vaultfmt.DefaultFormatEnv(),
			log:    logger.New("vaultfmt"),
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "create an empty envelope file",
			ArgsUsage: "PATH",
			Action:    runInit,
		},
		{
			Name:      "exec",
			Usage:     "apply one command line to an existing vault",
			ArgsUsage: "PATH COMMAND [ARGS...]",
			Action:    runExec,
		},
		{
			Name:      "dump",
			Usage:     "print the dataset held by a vault",
			ArgsUsage: "PATH",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "reveal", Usage: "print entry properties and attributes"},
			},
			Action: runDump,
		},
		{
			Name:      "merge",
			Usage:     "merge two vaults into a new one",
			ArgsUsage: "PATH_A PATH_B OUT_PATH",
			Action:    runMerge,
		},
		{
			Name:      "flatten",
			Usage:     "optimise a vault's history in place",
			ArgsUsage: "PATH",
			Action:    runFlatten,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vaultfmt:", err)
		os.Exit(1)
	}
}

func metadataOf(c *cli.Context) *metadata {
	return c.App.Metadata["m"].(*metadata)
}
