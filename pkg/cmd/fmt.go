package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting SQL files. This command
// provides gofmt-like functionality for SQL, allowing users to format
// individual files, entire directory trees recursively, or stdin.
//
// The command supports three output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place
//   - List mode (-l flag): Only the names of files whose formatting
//     differs are printed
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//   - "-": Read SQL from standard input, write to standard output
//
// Formatting is best-effort: input that is not valid SQL is still
// re-flowed as a token stream, so the command only fails on file I/O
// problems, never on malformed statements.
//
// Examples:
//
//	# Format single file to stdout
//	sqlfmt fmt query.sql
//
//	# Format all SQL files in a directory tree in-place
//	sqlfmt fmt -w sql/
//
//	# List files that are not formatted
//	sqlfmt fmt -l sql/
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			mode := outputMode{write: cmd.Bool("write"), list: cmd.Bool("list")}
			if mode.write && mode.list {
				return errors.New("-w and -l are mutually exclusive")
			}

			path := cmd.Args().First()
			if path == "-" {
				return formatStdin(cmd.Reader, cmd.Writer)
			}

			return formatPath(path, mode, cmd.Writer)
		},
	}
}

type outputMode struct {
	write bool
	list  bool
}

func formatStdin(reader io.Reader, writer io.Writer) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	formatted := format.Format(string(content), currentConfig.FormatOptions())
	_, err = fmt.Fprintln(writer, formatted)
	return errors.Wrap(err, "failed to write formatted content to output")
}

// formatPath handles formatting of either a single file or directory
// recursively.
func formatPath(path string, mode outputMode, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, mode, writer)
	}

	return formatFile(path, mode, writer)
}

// formatDirectory recursively walks through a directory and formats all
// .sql files in lexicographical order for consistent behavior across
// platforms.
func formatDirectory(dir string, mode outputMode, writer io.Writer) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := formatFile(sqlFile, mode, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and handles output according to
// the selected mode.
func formatFile(path string, mode outputMode, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted := format.Format(string(content), currentConfig.FormatOptions()) + "\n"

	switch {
	case mode.list:
		if formatted != string(content) {
			if _, err := fmt.Fprintln(writer, color.YellowString(path)); err != nil {
				return errors.Wrap(err, "failed to write file name to output")
			}
		}
	case mode.write:
		if formatted == string(content) {
			return nil
		}
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	default:
		if _, err := fmt.Fprint(writer, formatted); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}
