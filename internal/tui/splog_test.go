package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes messages without decoration", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var out bytes.Buffer
		splog := NewSplogWithWriter(&out)

		splog.Info("added %s", "r0")
		splog.Debug("hidden")
		splog.Page("r0\nr1\n")
		splog.Newline()
		splog.Warn("careful")
		splog.Error("failed: %v", "boom")

		require.Equal(t, "added r0\nr0\nr1\n\n⚠️  careful\n❌ failed: boom\n", out.String())
	})

	t.Run("debug output is enabled by DEBUG", func(t *testing.T) {
		t.Setenv("DEBUG", "1")
		var out bytes.Buffer
		splog := NewSplogWithWriter(&out)

		splog.Debug("opened %d revisions", 3)
		require.Equal(t, "opened 3 revisions\n", out.String())
	})

	t.Run("messages without arguments are not formatted", func(t *testing.T) {
		var out bytes.Buffer
		splog := NewSplogWithWriter(&out)

		splog.Info("100%")
		require.Equal(t, "100%\n", out.String())
	})
}

func TestSplogLogFile(t *testing.T) {
	t.Setenv("DEBUG", "")
	path := filepath.Join(t.TempDir(), "logs", "squill.log")

	var out bytes.Buffer
	splog, err := NewSplogWithConfig(&out, LogFileOptions{Path: path})
	require.NoError(t, err)

	splog.Info("visible")
	splog.Debug("file only")
	require.NoError(t, splog.Close())

	require.Equal(t, "visible\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "level=INFO msg=visible")
	require.Contains(t, string(data), `level=DEBUG msg="file only"`)
}

func TestResolveLogFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Empty(t, ResolveLogFilePath("", "/base"))
	require.Equal(t, filepath.Join("/base", "squill.log"), ResolveLogFilePath("squill.log", "/base"))
	require.Equal(t, "/var/log/squill.log", ResolveLogFilePath("/var/log/squill.log", "/base"))
	require.Equal(t, filepath.Join(home, "squill.log"), ResolveLogFilePath("~/squill.log", "/base"))
}
