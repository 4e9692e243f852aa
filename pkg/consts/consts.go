package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultDialect is the dialect used when none is configured
	DefaultDialect = "hive"

	// DefaultIndent is the indentation unit used when none is configured
	DefaultIndent = "  "

	// ConfigFile is the default project configuration file name
	ConfigFile = ".sqlfmt.yaml"
)
