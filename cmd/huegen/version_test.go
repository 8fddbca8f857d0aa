package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmarchand/huegen/internal/logger"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	root := newRootCmd(log)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	execErr := root.Execute()
	return buf.String(), execErr
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-28"

	output, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "huegen 1.2.3")
	require.Contains(t, output, "commit: abcdef1")
	require.Contains(t, output, "built: 2026-08-28")
}
