package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goerz/fmtlatex/internal/types"
)

// runCommand executes the root command with the given stdin and arguments,
// pointing --config at a temp path so the user's real configuration is
// never touched.
func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", cfgPath))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatStdinToStdout(t *testing.T) {
	stdout, _, err := runCommand(t, "This is a short sentence. And another one.\n")
	require.NoError(t, err)
	assert.Equal(t, "This is a short sentence.\nAnd another one.", stdout)
}

func TestFormatStdinDashArgument(t *testing.T) {
	stdout, _, err := runCommand(t, "Hello world.\n", "-")
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", stdout)
}

func TestWidthFlag(t *testing.T) {
	stdout, _, err := runCommand(t,
		"aa bb cc dd\n",
		"--width", "5",
	)
	require.NoError(t, err)
	assert.Equal(t, "aa bb\ncc dd", stdout)
}

func TestFormatFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tex")
	out := filepath.Join(dir, "out.tex")
	require.NoError(t, os.WriteFile(in, []byte("One sentence. Two sentences.\n"), 0644))

	stdout, _, err := runCommand(t, "", in, out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "One sentence.\nTwo sentences.", string(data))
}

func TestFormatInPlaceCreatesBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.tex")
	require.NoError(t, os.WriteFile(path, []byte("First point. Second point.\n"), 0644))

	_, _, err := runCommand(t, "", "--in-place", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "First point.\nSecond point.", string(data))

	backups, err := filepath.Glob(path + ".backup_*")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	original, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "First point. Second point.\n", string(original))
}

func TestFormatInPlaceNoBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.tex")
	require.NoError(t, os.WriteFile(path, []byte("Only line.\n"), 0644))

	_, _, err := runCommand(t, "", "--in-place", "--no-backup", path)
	require.NoError(t, err)

	backups, err := filepath.Glob(path + ".backup_*")
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestInPlaceRequiresInputFile(t *testing.T) {
	_, _, err := runCommand(t, "some input\n", "--in-place")
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrInvalidInput, appErr.Code)
}

func TestInPlaceRejectsOutputArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.tex")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	_, _, err := runCommand(t, "", "--in-place", path, filepath.Join(dir, "out.tex"))
	require.Error(t, err)
}

func TestMissingInputFile(t *testing.T) {
	_, _, err := runCommand(t, "", filepath.Join(t.TempDir(), "missing.tex"))
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrFileNotFound, appErr.Code)
}

func TestConfigWidthUsedWhenFlagAbsent(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"width": 5}`), 0600))

	cmd := NewRootCommand()
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader("aa bb cc dd\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "aa bb\ncc dd", stdout.String())
}
