package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, pointing --config at a missing
// file so the host's real configuration never leaks into tests.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	// Flag variables are package globals; reset them so runs stay isolated.
	verbosity = 0
	installGame, installReplace, installYes = "", false, false
	checkGame = ""
	args = append(args, "--config", filepath.Join(t.TempDir(), "none.toml"))
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestVersionCommand(t *testing.T) {
	require.NoError(t, execute(t, "version"))
}

func TestCheckCommand(t *testing.T) {
	mapDir := t.TempDir()
	gameDir := t.TempDir()
	writeTree(t, mapDir, map[string]string{"czero/maps/a.bsp": "a"})
	require.NoError(t, os.MkdirAll(filepath.Join(gameDir, "czero"), 0o755))

	require.NoError(t, execute(t, "check", mapDir, gameDir, "--game", "czero"))
}

func TestCheckCommandRequiresGameType(t *testing.T) {
	mapDir := t.TempDir()
	gameDir := t.TempDir()
	writeTree(t, mapDir, map[string]string{"czero/maps/a.bsp": "a"})

	err := execute(t, "check", mapDir, gameDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game type")
}

func TestInstallCommandEndToEnd(t *testing.T) {
	mapDir := t.TempDir()
	gameDir := t.TempDir()
	writeTree(t, mapDir, map[string]string{"czero/maps/de_dust2_cz.bsp": "level"})
	require.NoError(t, os.MkdirAll(filepath.Join(gameDir, "czero"), 0o755))

	require.NoError(t, execute(t, "install", mapDir, gameDir, "--game", "czero", "--yes"))

	data, err := os.ReadFile(filepath.Join(gameDir, "czero", "maps", "de_dust2_cz.bsp"))
	require.NoError(t, err)
	assert.Equal(t, "level", string(data))
}

func TestInstallCommandInvalidGame(t *testing.T) {
	mapDir := t.TempDir()
	err := execute(t, "install", mapDir, t.TempDir(), "--game", "quake")
	require.Error(t, err)
}
