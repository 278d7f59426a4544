package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/mython/internal/config"
	"github.com/opal-lang/mython/internal/token"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.my")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunFileEvaluatesProgram(t *testing.T) {
	path := writeSource(t, "x = 1 + 2\nprint x\n")
	require.NoError(t, runFile(path, config.Default()))
}

func TestRunFileReportsParseError(t *testing.T) {
	path := writeSource(t, "class\n")
	err := runFile(path, config.Default())
	require.Error(t, err)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ExitParseError, ee.code)
}

func TestRunFileReportsMissingFile(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "missing.my"), config.Default())
	require.Error(t, err)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ExitIOError, ee.code)
}

func TestLexAllEndsWithEof(t *testing.T) {
	tokens, err := lexAll([]byte("print 1\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}

func TestLexAllReportsIllegalInput(t *testing.T) {
	_, err := lexAll([]byte("x = \"unterminated\n"))
	require.Error(t, err)
}

func TestLoadConfigDefaultsWhenNoPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
