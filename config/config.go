package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

const (
	FileName    = "config.ini"
	SectionName = "SETTINGS"
	envPrefix   = "YONDER_"
)

// PatternType selects which capture groups of a chapter pattern carry the
// chapter number and which carry the act (volume) number.
type PatternType int

const (
	Standard PatternType = iota
	Volume
	VolumeAfter
)

func (p PatternType) String() string {
	switch p {
	case Volume:
		return "Volume"
	case VolumeAfter:
		return "VolumeAfter"
	default:
		return "Standard"
	}
}

func ParsePatternType(s string) (PatternType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return Standard, nil
	case "volume":
		return Volume, nil
	case "volumeafter":
		return VolumeAfter, nil
	}
	return Standard, fmt.Errorf("unknown pattern type %q", s)
}

var DefaultNodeClasses = []string{"android.widget.TextView", "android.view.View"}

type Config struct {
	PatternType    PatternType
	ChapterPattern string
	Title          string
	Author         string
	Description    string
	Publisher      string
	CoverImage     string
	TitleClasses   []string
	BodyClasses    []string
}

func Default() *Config {
	return &Config{
		PatternType:  Standard,
		TitleClasses: append([]string(nil), DefaultNodeClasses...),
		BodyClasses:  append([]string(nil), DefaultNodeClasses...),
	}
}

// Load reads the SETTINGS section of path. A missing file yields the default
// configuration. Keys absent from the file fall back to YONDER_<KEY>
// environment variables, which may be seeded from a .env file next to it.
func Load(path string) (*Config, error) {
	// Do not override environment provided by the caller.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	values := map[string]string{}
	_, err := os.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	if err == nil {
		file, err := ini.LoadSources(ini.LoadOptions{
			Insensitive:         true,
			IgnoreInlineComment: true,
		}, path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		section, err := file.GetSection(SectionName)
		if err == nil {
			for _, key := range section.Keys() {
				values[key.Name()] = key.String()
			}
		}
	}
	return fromValues(values)
}

func fromValues(values map[string]string) (*Config, error) {
	get := func(key string) string {
		if v, ok := values[strings.ToLower(key)]; ok {
			return v
		}
		return os.Getenv(envPrefix + strings.ToUpper(key))
	}

	cfg := Default()
	patternType, err := ParsePatternType(get("PatternType"))
	if err != nil {
		return nil, err
	}
	cfg.PatternType = patternType
	cfg.ChapterPattern = get("ChapterPattern")
	cfg.Title = strings.TrimSpace(get("Title"))
	cfg.Author = strings.TrimSpace(get("Author"))
	cfg.Description = strings.TrimSpace(get("Description"))
	cfg.Publisher = strings.TrimSpace(get("Publisher"))
	cfg.CoverImage = strings.TrimSpace(get("CoverImage"))
	if classes := splitList(get("TitleClasses")); len(classes) > 0 {
		cfg.TitleClasses = classes
	}
	if classes := splitList(get("BodyClasses")); len(classes) > 0 {
		cfg.BodyClasses = classes
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
