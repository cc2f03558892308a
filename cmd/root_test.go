package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapterDump = `<?xml version="1.0" encoding="UTF-8"?>
<hierarchy>
<node class="android.widget.TextView" text="Chapter 1: Start"/>
<node class="android.widget.TextView" text="First line."/>
</hierarchy>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rArgs = rootArgs{}
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func novelDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Novel")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chapter1.xml"), []byte(chapterDump), 0644))
	return dir
}

func TestRootBuildsEpub(t *testing.T) {
	dir := novelDir(t)

	_, err := execute(t, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "Novel.epub"))
}

func TestRootUsesConfigTitle(t *testing.T) {
	dir := novelDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte("[SETTINGS]\nTitle = Renamed\n"), 0644))

	_, err := execute(t, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "Renamed.epub"))
}

func TestRootMissingFolder(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "input folder does not exist")
}

func TestRootNoXML(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir)
	assert.ErrorContains(t, err, "no XML files found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRootInvalidPattern(t *testing.T) {
	dir := novelDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte("[SETTINGS]\nChapterPattern = Chapter (\\d+\n"), 0644))

	_, err := execute(t, dir)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", novelDir(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Chapter 1: Start")
}

func TestHTMLAndTextCommands(t *testing.T) {
	dir := novelDir(t)

	_, err := execute(t, "html", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Novel.html"))

	_, err = execute(t, "text", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Novel", "001-Chapter 1_ Start.txt"))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
