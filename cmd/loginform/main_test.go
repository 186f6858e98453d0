package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOGINFORM_TEST_ENV=loaded\n"), 0o644))
	t.Setenv("LOGINFORM_TEST_ENV", "")
	require.NoError(t, os.Unsetenv("LOGINFORM_TEST_ENV"))

	require.NoError(t, loadEnv(path))
	require.Equal(t, "loaded", os.Getenv("LOGINFORM_TEST_ENV"))
}

func TestLoadEnvMissingExplicitFile(t *testing.T) {
	require.Error(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadEnvDefaultIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, loadEnv(""))
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	closeLog, err := setupLogging(path)
	require.NoError(t, err)
	closeLog()

	_, err = os.Stat(path)
	require.NoError(t, err)

	closeLog, err = setupLogging("")
	require.NoError(t, err)
	closeLog()
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.Error(t, cmd.Execute())
}
