package text

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"yonder-parse/model"
	"yonder-parse/template"
	"yonder-parse/utils"
)

// PackBookToText writes one plain-text file per chapter into
// outputPath/<title>, replacing anything already there.
func PackBookToText(book *model.Book, outputPath string) (string, error) {
	outputPath = filepath.Join(outputPath, utils.CleanFileName(book.Title))
	_, err := os.Stat(outputPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to get output directory: %w", err)
		}
	} else {
		err = os.RemoveAll(outputPath)
		if err != nil {
			return "", fmt.Errorf("failed to remove output directory: %w", err)
		}
	}
	err = os.MkdirAll(outputPath, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, chapter := range book.Chapters {
		text, err := ChapterText(chapter)
		if err != nil {
			return "", fmt.Errorf("failed to convert chapter %q: %w", chapter.Title, err)
		}
		chapterPath := filepath.Join(outputPath, fmt.Sprintf("%03d-%s.txt", i+1, utils.CleanFileName(chapter.Title)))
		err = os.WriteFile(chapterPath, []byte(text), 0644)
		if err != nil {
			return "", fmt.Errorf("failed to write chapter file: %w", err)
		}
	}
	return outputPath, nil
}

// ChapterText renders a chapter and strips the markup again, one line per
// heading or paragraph.
func ChapterText(chapter *model.Chapter) (string, error) {
	body, err := template.RenderString(template.ChapterBody(chapter))
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(chapter.Paragraphs)+1)
	doc.Find("h1, p").Each(func(i int, s *goquery.Selection) {
		lines = append(lines, strings.TrimSpace(s.Text()))
	})
	return strings.Join(lines, "\n\n") + "\n", nil
}

// PackBookToHTML writes every chapter into a single HTML page.
func PackBookToHTML(book *model.Book, savePath string) error {
	file, err := os.Create(savePath)
	if err != nil {
		return fmt.Errorf("failed to create html file: %w", err)
	}
	defer file.Close()
	err = template.BookHTML(book.Title, book.Chapters).Render(context.Background(), file)
	if err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}
