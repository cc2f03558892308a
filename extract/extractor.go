package extract

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"yonder-parse/config"
	"yonder-parse/model"
)

// Node is one text-bearing element of a UI dump.
type Node struct {
	Class string
	Text  string
}

// Nodes flattens every <node> element of doc in document order.
func Nodes(doc *etree.Document) []Node {
	var nodes []Node
	for _, el := range doc.FindElements("//node") {
		nodes = append(nodes, Node{
			Class: el.SelectAttrValue("class", ""),
			Text:  strings.TrimSpace(norm.NFC.String(el.SelectAttrValue("text", ""))),
		})
	}
	return nodes
}

type Extractor struct {
	patterns     *PatternSet
	titleClasses map[string]bool
	bodyClasses  map[string]bool
	logger       *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) (*Extractor, error) {
	patterns, err := NewPatternSet(cfg)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		patterns:     patterns,
		titleClasses: toSet(cfg.TitleClasses),
		bodyClasses:  toSet(cfg.BodyClasses),
		logger:       logger,
	}, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// ExtractFile parses one XML dump. first marks the document that may open
// with a prologue.
func (e *Extractor) ExtractFile(path string, first bool) ([]*model.Chapter, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return e.Extract(Nodes(doc), first), nil
}

// state is the fold accumulator: the chapter currently receiving paragraphs
// and the chapters already closed.
type state struct {
	open *model.Chapter
	done []*model.Chapter
}

func (s state) openChapter(c *model.Chapter) state {
	if s.open != nil {
		s.done = append(s.done, s.open)
	}
	s.open = c
	return s
}

func (s state) flush() []*model.Chapter {
	if s.open != nil {
		return append(s.done, s.open)
	}
	return s.done
}

// Extract splits nodes into chapters. Text seen before the first boundary is
// dropped.
func (e *Extractor) Extract(nodes []Node, first bool) []*model.Chapter {
	var s state
	for _, n := range nodes {
		s = e.step(s, n, first)
	}
	return s.flush()
}

func (e *Extractor) step(s state, n Node, first bool) state {
	if n.Text == "" {
		return s
	}
	isTitle, isBody := e.titleClasses[n.Class], e.bodyClasses[n.Class]
	if !isTitle && !isBody {
		return s
	}

	m, err := e.patterns.Match(n.Text)
	if err != nil {
		e.logger.Warn("Ignoring unusable chapter match", zap.Error(err))
	}
	if m != nil {
		return s.openChapter(model.NewChapter(n.Text, m.Chapter, m.Act))
	}
	if first && prologuePattern.MatchString(n.Text) {
		return s.openChapter(model.NewChapter(n.Text, 0, 0))
	}

	if isBody && s.open != nil {
		s.open.AddParagraph(n.Text)
	}
	return s
}
