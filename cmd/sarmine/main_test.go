package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/config"
)

const pairCSV = `id,fitness,1,2
wt,10,A,K
A,20,G,K
B,15,A,R
C,31.5,G,R
D,5,W,K
`

const pairYAML = `additivity:
  tolerance: 0.05
strategies:
  clique:
    min_size: 2
wild_types: [wt]
log_level: error
`

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "pairs.csv", pairCSV)
	cfg := write(t, dir, "sarmine.yaml", pairYAML)
	db := filepath.Join(dir, "runs.db")

	out, err := execute(t, "run", data, "--config", cfg, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1=G,2=R")
	assert.Contains(t, out, "28.5")
	assert.Contains(t, out, "31.5 (C)")
	assert.Contains(t, out, "validated 1  hits 1")

	out, err = execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "RUN")
	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, 2, lines)
}

func TestRunCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "pairs.csv", pairCSV)
	cfg := write(t, dir, "sarmine.yaml", pairYAML)

	out, err := execute(t, "run", data, "-c", cfg, "--json", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"key": "1=G,2=R"`)
	assert.Contains(t, out, `"rule_usage_rate"`)
}

func TestRulesCommand(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "pairs.csv", pairCSV)
	cfg := write(t, dir, "sarmine.yaml", pairYAML)

	out, err := execute(t, "rules", data, "wt", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "1:A>G")
	assert.Contains(t, out, "1:A>G;2:K>R")
	assert.Contains(t, out, "REL.ERR")
	assert.Contains(t, out, "3 rules, 2 components (largest 2)")
	assert.NotContains(t, out, "1:A>W")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "pairs.csv", pairCSV)

	_, err := execute(t, "run", filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	bad := write(t, dir, "bad.yaml", "additivity:\n  tolerance: 2\n")
	_, err = execute(t, "run", data, "--config", bad)
	assert.ErrorIs(t, err, config.ErrConfiguration)

	_, err = execute(t, "run", data, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "runs")
	assert.Error(t, err)

	_, err = execute(t, "rules", data, "nope")
	assert.Error(t, err)
}
