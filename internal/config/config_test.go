package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 32767, cfg.Engine.StackCapacity)
	assert.Equal(t, 666, cfg.Engine.DictCapacity)
	assert.Equal(t, "go-forth> ", cfg.REPL.Prompt)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goforth.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[engine]
stack_capacity = 16
trace = true

[repl]
history_file = "/tmp/hist"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Engine: Engine{StackCapacity: 16, DictCapacity: DefaultDictCapacity, Trace: true},
		REPL:   REPL{Prompt: DefaultPrompt, HistoryFile: "/tmp/hist"},
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, tc := range []struct {
		name string
		data string
		err  string
	}{
		{"syntax", "[engine\n", "parse error"},
		{"unknown key", "[engine]\nheap = 3\n", `unknown key "engine.heap"`},
		{"negative stack", "[engine]\nstack_capacity = -1\n", "stack_capacity must not be negative"},
		{"negative dict", "[engine]\ndict_capacity = -5\n", "dict_capacity must not be negative"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}
