package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tinysteps/internal/config"
	"github.com/verte-zerg/tinysteps/internal/model"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPulseCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "pulse", "--age", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Age: 4 Months")
	assert.Contains(t, out, "NEW THIS MONTH")
	assert.Contains(t, out, "ESSENTIALS TOOLKIT")
	assert.Contains(t, out, "ACTIVE HISTORY")

	_, err = run(t, "pulse", "--age", "100")
	require.Error(t, err)
}

func TestPulseCommandUsesConfigUnlessFlagSet(t *testing.T) {
	isolate(t)
	writeConfig(t, "[browse]\nage = 12\n")

	out, err := run(t, "pulse")
	require.NoError(t, err)
	assert.Contains(t, out, "Age: 1 Year")

	out, err = run(t, "pulse", "--age", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Age: Newborn")
}

func TestLibraryCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "library")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: Books")

	out, err = run(t, "library", "--category", "Growth Jumps")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: Growth Jumps")
	assert.Contains(t, out, "No toolkit items added yet.")
}

func TestCategoriesCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "categories")
	require.NoError(t, err)
	for _, name := range []string{"Books", "Food", "Growth Jumps", "Sleep", "Toys"} {
		assert.Contains(t, out, name)
	}
}

func TestShowCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "show", "f2")
	require.NoError(t, err)
	assert.Contains(t, out, "First Purees")
	assert.Contains(t, out, "Medical Disclaimer")

	_, err = run(t, "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown record "nope"`)
}

func TestExportThenValidate(t *testing.T) {
	dir := isolate(t)
	for _, name := range []string{"cat.toml", "cat.yaml", "cat.json", "cat.db"} {
		path := filepath.Join(dir, name)
		_, err := run(t, "catalogue", "export", "--out", path)
		require.NoError(t, err, name)

		out, err := run(t, "catalogue", "validate", "--catalogue", path)
		require.NoError(t, err, name)
		assert.Contains(t, out, "33 records", name)
	}

	path := filepath.Join(dir, "forced.out")
	_, err := run(t, "catalogue", "export", "--out", path, "--format", "json")
	require.NoError(t, err)
	_, err = run(t, "catalogue", "export", "--out", filepath.Join(dir, "x.txt"))
	require.Error(t, err)
	_, err = run(t, "catalogue", "export")
	require.Error(t, err)
}

func TestValidateRejectsBrokenCatalogue(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.toml")
	content := `[[record]]
id = "x1"
category = "Sleep"
start-age-months = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := run(t, "catalogue", "validate", "--catalogue", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalogue")
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	isolate(t)
	writeConfig(t, defaultConfigTemplate())
	_, err := config.LoadConfig(config.DefaultConfigPath())
	require.NoError(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := model.BrowseConfig{Age: 6, Mode: model.ModePulse, LogLevel: "info"}
	require.NoError(t, validateConfig(valid))

	cases := map[string]model.BrowseConfig{
		"negative age": {Age: -1, Mode: model.ModePulse},
		"age too high": {Age: 73, Mode: model.ModePulse},
		"bad mode":     {Age: 6, Mode: "timeline"},
		"bad level":    {Age: 6, Mode: model.ModeLibrary, LogLevel: "loud"},
	}
	for name, cfg := range cases {
		assert.Error(t, validateConfig(cfg), name)
	}
}
