package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{`{\an8}`, `{=0}`}, cfg.Tags)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srtmerge.yaml")
	content := `tags:
  - "<i>"
  - "</i>"
until_stable: true
concurrency: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"<i>", "</i>"}, cfg.Tags)
	assert.True(t, cfg.UntilStable)
	assert.Equal(t, 8, cfg.Concurrency)

	// untouched keys keep their defaults
	assert.Equal(t, ".merged", cfg.OutputSuffix)
	assert.True(t, cfg.ContinueOnError)
	assert.False(t, cfg.FlushTrailing)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero concurrency", "concurrency: 0\n"},
		{"empty tag", "tags: [\"\"]\n"},
		{"empty suffix", "output_suffix: \"\"\n"},
		{"malformed yaml", "tags: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.FlushTrailing = true
	cfg.SimplifiedDir = "simplified"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	assert.Error(t, cfg.Save(path), "existing file must not be overwritten")
}
