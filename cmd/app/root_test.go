package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "health-service dev")
	assert.Contains(t, out.String(), "Commit:")
}

func TestRunServerInvalidConfig(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	err := runServer(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
