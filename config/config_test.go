package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	assert.Equal(t, Standard, cfg.PatternType)
	assert.Empty(t, cfg.ChapterPattern)
	assert.Empty(t, cfg.Title)
	assert.Equal(t, DefaultNodeClasses, cfg.TitleClasses)
	assert.Equal(t, DefaultNodeClasses, cfg.BodyClasses)
}

func TestLoad_Settings(t *testing.T) {
	path := writeConfig(t, `[SETTINGS]
PatternType = VolumeAfter
ChapterPattern = Chapter (\d+) #Vol (\d+)
Title = The Long Road
Author = A. Writer
Description = A story.
Publisher = Yonder
CoverImage = art.png
BodyClasses = android.widget.TextView
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, VolumeAfter, cfg.PatternType)
	assert.Equal(t, `Chapter (\d+) #Vol (\d+)`, cfg.ChapterPattern)
	assert.Equal(t, "The Long Road", cfg.Title)
	assert.Equal(t, "A. Writer", cfg.Author)
	assert.Equal(t, "A story.", cfg.Description)
	assert.Equal(t, "Yonder", cfg.Publisher)
	assert.Equal(t, "art.png", cfg.CoverImage)
	assert.Equal(t, []string{"android.widget.TextView"}, cfg.BodyClasses)
	assert.Equal(t, DefaultNodeClasses, cfg.TitleClasses)
}

func TestLoad_UnknownPatternType(t *testing.T) {
	path := writeConfig(t, "[SETTINGS]\nPatternType = Season\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvironmentFallback(t *testing.T) {
	t.Setenv("YONDER_AUTHOR", "From Env")
	t.Setenv("YONDER_TITLE", "Ignored")
	path := writeConfig(t, "[SETTINGS]\nTitle = From File\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, "From Env", cfg.Author)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YONDER_PUBLISHER=from_file\n"), 0644))
	t.Setenv("YONDER_PUBLISHER", "from_env")

	cfg, err := Load(filepath.Join(dir, FileName))
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Publisher)
}

func TestParsePatternType(t *testing.T) {
	tests := []struct {
		in   string
		want PatternType
	}{
		{"", Standard},
		{"Standard", Standard},
		{"volume", Volume},
		{"VolumeAfter", VolumeAfter},
	}
	for _, tt := range tests {
		got, err := ParsePatternType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
