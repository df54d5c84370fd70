package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI in-process with a clean flag state and returns
// stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeCommandEnv(t, nil, stdin, args...)
}

// executeCommandEnv is executeCommand with the given environment overrides.
func executeCommandEnv(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	for _, key := range []string{"PORT", "LOG_MODE", "CALORIE_STRATEGY", "RATE_LIMIT_ENABLED"} {
		t.Setenv(key, env[key])
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
