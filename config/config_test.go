package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr-parser/lexer"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, UnknownSkip, cfg.Scanner.Unknown)
	assert.Equal(t, FormatArray, cfg.Output.Format)
	assert.False(t, cfg.Parser.Strict)
	assert.False(t, cfg.Log.Verbose)

	opts := cfg.ParserOptions()
	assert.False(t, opts.Strict)
	assert.Equal(t, lexer.SkipUnknown, opts.Lexer.Unknown)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "sexpr.toml", `
[scanner]
unknown = "reject"

[parser]
strict = true

[output]
format = "tree"

[log]
verbose = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, UnknownReject, cfg.Scanner.Unknown)
	assert.True(t, cfg.Parser.Strict)
	assert.Equal(t, FormatTree, cfg.Output.Format)
	assert.True(t, cfg.Log.Verbose)

	opts := cfg.ParserOptions()
	assert.True(t, opts.Strict)
	assert.Equal(t, lexer.RejectUnknown, opts.Lexer.Unknown)
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"sexpr.yaml", "sexpr.yml"} {
		path := writeConfig(t, name, `
parser:
  strict: true
output:
  format: sexpr
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.True(t, cfg.Parser.Strict)
		assert.Equal(t, FormatSexpr, cfg.Output.Format)
		// missing keys keep their defaults
		assert.Equal(t, UnknownSkip, cfg.Scanner.Unknown)
	}
}

func TestLoadEnvPath(t *testing.T) {
	path := writeConfig(t, "sexpr.toml", "[parser]\nstrict = true\n")
	t.Setenv("SEXPR_TEST_CONFIG_DIR", filepath.Dir(path))

	cfg, err := Load("$SEXPR_TEST_CONFIG_DIR/sexpr.toml")
	require.NoError(t, err)
	assert.True(t, cfg.Parser.Strict)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "sexpr.json", `{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeConfig(t, "bad.toml", `[parser`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "bad.yaml", "parser: [1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "policy.toml", "[scanner]\nunknown = \"ignore\"\n"))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Load(writeConfig(t, "format.yaml", "output:\n  format: json\n"))
	assert.ErrorIs(t, err, ErrInvalidValue)
}
