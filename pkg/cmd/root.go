package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

var currentConfig = config.Default()

type (
	// Params collects everything Run needs from the fx graph.
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	// Version carries build metadata set by the release pipeline.
	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main sqlfmt CLI application with the given
// version and command-line arguments. This function serves as the main
// entry point for all CLI operations and handles global configuration.
//
// The application looks for a .sqlfmt.yaml configuration file (or the file
// named by --config / SQLFMT_CONFIG) before dispatching to subcommands; if
// none exists, built-in defaults apply.
//
// Global Flags:
//   - --config, -c: the sqlfmt config file (default .sqlfmt.yaml)
//
// Example usage:
//
//	# Format a file to stdout with defaults
//	sqlfmt fmt query.sql
//
//	# Format a tree in place using a project config
//	sqlfmt --config ci/sqlfmt.yaml fmt -w sql/
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlfmt",
		Usage: "A tool for formatting SQL files",
		Description: `sqlfmt is a CLI tool that reformats SQL into a consistently indented,
human-readable rendering. It normalizes whitespace, breaks statements at
clause boundaries, and indents nested expressions, without validating or
rewriting the SQL itself.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfmt config file",
				Sources: cli.EnvVars("SQLFMT_CONFIG"),
				Value:   consts.ConfigFile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")

			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					// No project config; built-in defaults apply.
					return ctx, nil
				}
				return ctx, err
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}

			currentConfig = cfg
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
