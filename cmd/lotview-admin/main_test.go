package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandsTableIsConsistent(t *testing.T) {
	for name, c := range commands() {
		require.Equal(t, name, c.name, "command key and name must match")
		require.NotEmpty(t, c.description, "command %s needs a description", name)
		require.NotNil(t, c.run, "command %s needs a run func", name)
	}
}

func TestPrintUsageListsEveryCommand(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer func() {
		os.Stdout = oldStdout
	}()

	os.Stdout = w
	err = printUsage()
	require.NoError(t, err)

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	outStr := string(output)
	for name := range commands() {
		require.Contains(t, outStr, name)
	}
}
