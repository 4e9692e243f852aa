package config_test

import (
	_ "embed"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal formatting config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal formatting config")

		// Valid YAML with no formatting fields
		config, err = LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.NotNil(t, config)
		require.Equal(t, consts.DefaultDialect, config.Dialect)
		require.Equal(t, consts.DefaultIndent, config.Indent)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfigFile("testdata/sqlfmt.yaml")
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("missing file", func(t *testing.T) {
		config, err := LoadConfigFile("testdata/nope.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.True(t, os.IsNotExist(errors.Cause(err)))
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	require.Equal(t, consts.DefaultDialect, config.Dialect)
	require.Equal(t, consts.DefaultIndent, config.Indent)
	require.Empty(t, config.Params.Named)
	require.Empty(t, config.Params.Positional)
}

func TestFormatOptions(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	opts := config.FormatOptions()
	require.Equal(t, "standard", opts.Dialect)
	require.Equal(t, "    ", opts.Indent)
	require.Equal(t, map[string]string{"name": "'Ada'"}, opts.NamedParams)
	require.Equal(t, []string{"42", "18"}, opts.PositionalParams)
}

func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()

	require.Equal(t, "standard", config.Dialect)
	require.Equal(t, "    ", config.Indent)
	require.Equal(t, map[string]string{"name": "'Ada'"}, config.Params.Named)
	require.Equal(t, []string{"42", "18"}, config.Params.Positional)
}
