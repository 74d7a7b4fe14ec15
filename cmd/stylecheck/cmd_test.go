package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-checker/internal/codefile"
	"style-checker/internal/reporter"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return ExitPassed
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFatal
}

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCmd_FlagsExist(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "output", "no-color", "verbose", "list-rules"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
	for short, long := range map[string]string{"c": "config", "o": "output", "v": "verbose"} {
		flag := cmd.Flags().ShorthandLookup(short)
		require.NotNil(t, flag, "missing short flag -%s", short)
		assert.Equal(t, long, flag.Name)
	}
	assert.Equal(t, "console", cmd.Flags().Lookup("output").DefValue)
}

func TestRootCmd_NoArgs(t *testing.T) {
	stdout, _, err := execute(t)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, ExitFatal, exitCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_MissingFile(t *testing.T) {
	stdout, _, err := execute(t, filepath.Join(t.TempDir(), "missing.py"))

	require.Error(t, err)
	assert.ErrorIs(t, err, codefile.ErrLoad)
	assert.Equal(t, ExitFatal, exitCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_UnknownOutputFormat(t *testing.T) {
	stdout, _, err := execute(t, writeTarget(t, "x"), "--output", "html")

	assert.ErrorIs(t, err, reporter.ErrUnsupportedFormat)
	assert.Equal(t, ExitFatal, exitCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_DefaultRulesFail(t *testing.T) {
	path := writeTarget(t, strings.Repeat("a", 50)+"\nb\nc")

	stdout, stderr, err := execute(t, path)

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stdout, "Lines should not be too wide")
	assert.Contains(t, stdout, "Failed 1 out of 3 tests.")
	assert.Contains(t, stdout, "0.67/1.00")
	assert.Empty(t, stderr)
}

func TestRootCmd_EmptyFile(t *testing.T) {
	stdout, _, err := execute(t, writeTarget(t, ""))

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stdout, "line count : 1")
	assert.Contains(t, stdout, "max line length : 0")
}

func TestRootCmd_ExtraArgsIgnored(t *testing.T) {
	path := writeTarget(t, "x")

	stdout, _, err := execute(t, path, "ignored.py")

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stdout, "Failed 1 out of 3 tests.")
}

func TestRootCmd_ConfigFallback(t *testing.T) {
	stdout, stderr, err := execute(t, writeTarget(t, "x"), "--config", "rules.yaml")

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stderr, "could not read rules.yaml. Falling back to default.")
	assert.Contains(t, stdout, "Failed 1 out of 3 tests.")
}

func TestRootCmd_JSONOutput(t *testing.T) {
	stdout, _, err := execute(t, writeTarget(t, "x\n"), "-o", "json")
	assert.Equal(t, ExitFailed, exitCode(err))

	var got struct {
		File    string `json:"file"`
		Summary struct {
			Passed int `json:"passed"`
			Total  int `json:"total"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 2, got.Summary.Passed)
	assert.Equal(t, 3, got.Summary.Total)
}

func TestRootCmd_EnvOverride(t *testing.T) {
	t.Setenv("STYLECHECK_OUTPUT", "yaml")

	stdout, _, err := execute(t, writeTarget(t, "x"))

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stdout, "passed_all: false")
}

func TestRootCmd_Verbose(t *testing.T) {
	_, stderr, err := execute(t, writeTarget(t, "x"), "--verbose")

	assert.Equal(t, ExitFailed, exitCode(err))
	assert.Contains(t, stderr, "stylecheck: ")
	assert.Contains(t, stderr, "requireHeaderComment: result=false threshold=true passed=false")
}

func TestRootCmd_ListRules(t *testing.T) {
	stdout, _, err := execute(t, "--list-rules")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "lineLength"))
	assert.Contains(t, lines[0], "default=80")
	assert.Contains(t, lines[1], "default=250")
	assert.Contains(t, lines[2], "default=true")
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}

func TestRootCmd_Idempotent(t *testing.T) {
	path := writeTarget(t, "print(1)\n")

	first, _, err1 := execute(t, path)
	second, _, err2 := execute(t, path)

	assert.Equal(t, exitCode(err1), exitCode(err2))
	assert.Equal(t, first, second)
}
