package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/anyof/report"
)

func TestResolveConfigFlagOverrides(t *testing.T) {
	opts := &rootOptions{n: 5000, seed: 42, runs: 2, output: "out.txt"}

	cfg, err := resolveConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.N)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.RunsPerK)
	assert.Equal(t, "out.txt", cfg.Output)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(&rootOptions{seed: -1})
	require.NoError(t, err)

	assert.Equal(t, 50_000_000, cfg.N)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, "results.txt", cfg.Output)
}

func TestResolveConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anyof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 777\nseed: 9\n"), 0o644))

	opts := &rootOptions{configPath: path, n: 1234, seed: -1}

	cfg, err := resolveConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.N, "flag beats file")
	assert.Equal(t, int64(9), cfg.Seed, "file beats default")
}

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.txt")
	raw := filepath.Join(dir, "samples.json.gz")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"-n", "2000", "--seed", "1", "--runs", "1", "--out", out, "--raw", raw})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Worst Case, N=2000")
	assert.Contains(t, text, "Best Case, N=2000")
	assert.Contains(t, text, "Average Case, N=2000")
	assert.Contains(t, text, "Best K found:")

	f, err := os.Open(raw)
	require.NoError(t, err)
	defer f.Close()

	reports, err := report.ReadRaw(f)
	require.NoError(t, err)
	assert.Len(t, reports, 3)
}

func TestRunCommandBadOutputPath(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"-n", "100", "--runs", "1", "--out", filepath.Join(t.TempDir(), "missing", "results.txt")})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	require.Error(t, cmd.Execute())
}
