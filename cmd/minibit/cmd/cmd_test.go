package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEncodeDecodeCommands(t *testing.T) {
	out, err := execute(t, "encode", "trade",
		"--seq", "42",
		"--ts-ns", "1700000000000000000",
		"--price", "50000000",
		"--qty", "100",
		"--symbol", "AAPL")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	frame := lines[0]
	assert.Contains(t, lines[1], "47 bytes")

	out, err = execute(t, "decode", frame)
	require.NoError(t, err)
	assert.Contains(t, out, "Trade seq=42")
	assert.Contains(t, out, "price: 50000000")
	assert.Contains(t, out, "symbol: AAPL")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "encode", "quote",
		"--seq", "7",
		"--bid", "1",
		"--ask", "2")
	require.NoError(t, err)
	frame := strings.Split(strings.TrimSpace(out), "\n")[0]

	out, err = execute(t, "inspect", frame)
	require.NoError(t, err)
	assert.Contains(t, out, "Header: valid")
	assert.Contains(t, out, "msg_type: 2")
	assert.Contains(t, out, "Checksum: ok")
}

func TestInspectCommandRejectsGarbage(t *testing.T) {
	out, err := execute(t, "inspect", "AAAA")
	assert.Error(t, err)
	assert.Contains(t, out, "Header: invalid")
}

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	out, err := execute(t, "init",
		"--config", configPath,
		"--data-dir", filepath.Join(tmpDir, "data"))
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized MiniBit configuration")

	// Second run without --force refuses to overwrite.
	_, err = execute(t, "init", "--config", configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
