package extract

import (
	"fmt"
	"regexp"
	"strconv"

	"yonder-parse/config"
)

// DefaultPatterns are tried in order when no ChapterPattern is configured.
var DefaultPatterns = []string{
	`Chapter (\d+): (.+)`,
	`Chapter (\d+) [-–] (.+)`,
	`Chapter (\d+)`,
}

var prologuePattern = regexp.MustCompile(`^Prologue`)

// numbering turns the submatches of a boundary pattern into (act, chapter).
type numbering func(groups []string) (act int, chapter int, err error)

func standardNumbering(groups []string) (int, int, error) {
	chapter, err := group(groups, 1)
	return 0, chapter, err
}

func volumeNumbering(groups []string) (int, int, error) {
	act, err := group(groups, 1)
	if err != nil {
		return 0, 0, err
	}
	chapter, err := group(groups, 2)
	return act, chapter, err
}

func volumeAfterNumbering(groups []string) (int, int, error) {
	chapter, err := group(groups, 1)
	if err != nil {
		return 0, 0, err
	}
	act, err := group(groups, 2)
	return act, chapter, err
}

var numberings = map[config.PatternType]numbering{
	config.Standard:    standardNumbering,
	config.Volume:      volumeNumbering,
	config.VolumeAfter: volumeAfterNumbering,
}

func group(groups []string, i int) (int, error) {
	if i >= len(groups) {
		return 0, fmt.Errorf("pattern has no group %d", i)
	}
	n, err := strconv.Atoi(groups[i])
	if err != nil {
		return 0, fmt.Errorf("group %d is not a number: %q", i, groups[i])
	}
	return n, nil
}

type boundary struct {
	re     *regexp.Regexp
	number numbering
}

// PatternSet holds the boundary patterns of one run in priority order.
type PatternSet struct {
	boundaries []boundary
}

// NewPatternSet compiles the configured chapter pattern, or the defaults when
// none is configured. Patterns are anchored at the start of the text only.
func NewPatternSet(cfg *config.Config) (*PatternSet, error) {
	if cfg.ChapterPattern != "" {
		number, ok := numberings[cfg.PatternType]
		if !ok {
			return nil, fmt.Errorf("unsupported pattern type %v", cfg.PatternType)
		}
		re, err := compileAnchored(cfg.ChapterPattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile chapter pattern: %w", err)
		}
		return &PatternSet{boundaries: []boundary{{re: re, number: number}}}, nil
	}

	set := &PatternSet{}
	for _, p := range DefaultPatterns {
		re, err := compileAnchored(p)
		if err != nil {
			return nil, err
		}
		// Defaults only capture a chapter number.
		set.boundaries = append(set.boundaries, boundary{re: re, number: standardNumbering})
	}
	return set, nil
}

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)`)
}

// Match reports whether text opens a chapter. The first pattern that matches
// decides; a match whose groups are not numbers is reported as an error.
func (s *PatternSet) Match(text string) (*Match, error) {
	for _, b := range s.boundaries {
		groups := b.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		act, chapter, err := b.number(groups)
		if err != nil {
			return nil, fmt.Errorf("%q matched %q: %w", text, b.re.String(), err)
		}
		return &Match{Act: act, Chapter: chapter}, nil
	}
	return nil, nil
}

type Match struct {
	Act     int
	Chapter int
}
