package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/chaprep/corpus"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  log_level: debug
  workers: 2
corpus:
  name: enni
  root: /data
  groups: [SLI, TD]
  subgroups: [A, 5m]
split:
  train: 0.7
  val: 0.15
  test: 0.15
  seed: 7
  merge:
    - from: TD-11
      to: TD-10
extract:
  speakers: [CHI, MOT]
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, corpus.ErrInvalidSubgroup)

	path = writeConfig(t, `
pipeline:
  log_level: debug
  workers: 2
corpus:
  name: enni
  root: /data
  subgroups: [5m]
split:
  train: 0.7
  val: 0.15
  test: 0.15
  seed: 7
  merge:
    - from: TD-11
      to: TD-10
extract:
  speakers: [CHI, MOT]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "debug", cfg.Pipeline.LogLvl)
	assert.Equal(t, "text", cfg.Pipeline.LogFormat)
	assert.Equal(t, 2, cfg.Pipeline.Workers)
	assert.Equal(t, "enni", cfg.Corpus.Name)
	assert.Equal(t, []string{"SLI", "TD"}, cfg.Corpus.Groups)
	assert.Equal(t, []string{"5m"}, cfg.Corpus.Subgroups)
	assert.Equal(t, int64(7), cfg.Split.Seed)
	assert.Equal(t, []corpus.Merge{{From: "TD-11", To: "TD-10"}}, cfg.Split.Merge)
	assert.Equal(t, []string{"CHI", "MOT"}, cfg.Extract.Speakers)
	assert.Equal(t, "outputs", cfg.Paths.Outputs)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHAPREP_PIPELINE_LOG_LEVEL", "warn")
	t.Setenv("CHAPREP_PATHS_OUTPUTS", "/tmp/out")

	cfg, err := Load(writeConfig(t, "pipeline:\n  log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Pipeline.LogLvl)
	assert.Equal(t, "/tmp/out", cfg.Paths.Outputs)
}

func TestLoadRejectsBadRatios(t *testing.T) {
	_, err := Load(writeConfig(t, "split:\n  train: 0.9\n  val: 0.1\n  test: 0.1\n"))
	assert.ErrorIs(t, err, corpus.ErrInvalidRatios)
}

func TestYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "corpus:\n  name: gillam\n"))
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var back Root
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg.Split, back.Split)
	assert.Equal(t, cfg.Corpus, back.Corpus)
	assert.Empty(t, back.Source)
}
