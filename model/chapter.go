package model

import (
	"fmt"
	"sort"
)

// Chapter is one titled section of the book. Act is zero unless the pattern
// type carries a volume number.
type Chapter struct {
	Title      string
	Number     int
	Act        int
	Paragraphs []string
}

func NewChapter(title string, number, act int) *Chapter {
	return &Chapter{
		Title:  title,
		Number: number,
		Act:    act,
	}
}

func (c *Chapter) AddParagraph(text string) {
	c.Paragraphs = append(c.Paragraphs, text)
}

// Less orders chapters by act, then chapter number.
func (c *Chapter) Less(other *Chapter) bool {
	if c.Act != other.Act {
		return c.Act < other.Act
	}
	return c.Number < other.Number
}

func (c *Chapter) String() string {
	return fmt.Sprintf("%s (act %d, chapter %d, %d paragraphs)", c.Title, c.Act, c.Number, len(c.Paragraphs))
}

// SortChapters sorts in place by (Act, Number), keeping the input order of
// chapters that share a key.
func SortChapters(chapters []*Chapter) {
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Less(chapters[j])
	})
}
