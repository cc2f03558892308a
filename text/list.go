package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yonder-parse/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	numberStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().PaddingLeft(2)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// ChapterList renders title, act and chapter number of every chapter, one per
// line, in book order.
func ChapterList(book *model.Book) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(book.Title))
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render(fmt.Sprintf("%d chapters", len(book.Chapters))))
	sb.WriteString("\n")
	for _, c := range book.Chapters {
		sb.WriteString(numberStyle.Render(fmt.Sprintf("%d.%d", c.Act, c.Number)))
		sb.WriteString(titleStyle.Render(c.Title))
		sb.WriteString(faintStyle.Render(fmt.Sprintf(" (%d)", len(c.Paragraphs))))
		sb.WriteString("\n")
	}
	return sb.String()
}
