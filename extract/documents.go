package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var documentNumberPattern = regexp.MustCompile(`(?i)chapter(\d+)`)

type Document struct {
	Path string
	// Number is the n of a "chapterN.xml" style name, or -1.
	Number int
}

// ListDocuments returns the XML dumps in dir ordered by the chapter number in
// their file names. Files without a number follow, in lexical order.
func ListDocuments(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	docs := make([]Document, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		docs = append(docs, Document{
			Path:   filepath.Join(dir, entry.Name()),
			Number: documentNumber(entry.Name()),
		})
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if (a.Number < 0) != (b.Number < 0) {
			return a.Number >= 0
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.Path < b.Path
	})
	return docs, nil
}

func documentNumber(name string) int {
	m := documentNumberPattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
