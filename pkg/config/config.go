package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Params carries the placeholder values applied while formatting.
	Params struct {
		// Named maps placeholder names (:name) to replacement values
		Named map[string]string `yaml:"named,omitempty"`

		// Positional lists replacement values for ? placeholders, in order
		Positional []string `yaml:"positional,omitempty"`
	}

	// Config represents the project configuration for SQL formatting.
	Config struct {
		// Dialect names the SQL dialect to format with
		Dialect string `yaml:"dialect"`

		// Indent is the indentation unit, e.g. two spaces or a tab
		Indent string `yaml:"indent"`

		// Params supplies placeholder replacement values
		Params Params `yaml:"params,omitempty"`
	}
)

// LoadConfig parses a formatting configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing fields
// fall back to the defaults in the consts package.
//
// Example:
//
//	yamlData := `
//	dialect: hive
//	indent: "    "
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal formatting config")
	}

	if cfg.Dialect == "" {
		cfg.Dialect = consts.DefaultDialect
	}
	if cfg.Indent == "" {
		cfg.Indent = consts.DefaultIndent
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. This
// is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Dialect: consts.DefaultDialect,
		Indent:  consts.DefaultIndent,
	}
}

// FormatOptions converts the configuration into formatter options.
func (c *Config) FormatOptions() *format.Options {
	return &format.Options{
		Indent:           c.Indent,
		Dialect:          c.Dialect,
		NamedParams:      c.Params.Named,
		PositionalParams: c.Params.Positional,
	}
}
