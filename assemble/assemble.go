package assemble

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yonder-parse/config"
	"yonder-parse/epub"
	"yonder-parse/extract"
	"yonder-parse/model"
	"yonder-parse/utils"
)

var (
	ErrFolderNotFound = errors.New("input folder does not exist")
	ErrNoDocuments    = errors.New("no XML files found")
)

// identifierNamespace keeps identifiers stable across regenerations of the
// same title.
var identifierNamespace = uuid.MustParse("0192ed6b-1c84-70fe-a8a2-f498827a3a53")

func Identifier(title string) string {
	return uuid.NewSHA1(identifierNamespace, []byte(title)).String()
}

// Title is the configured title, or the base name of the input folder.
// Relative folders such as "." are resolved first.
func Title(cfg *config.Config, dir string) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Base(filepath.Clean(dir))
}

type Assembler struct {
	cfg       *config.Config
	extractor *extract.Extractor
	client    *utils.RestyClient
	logger    *zap.Logger
	now       func() time.Time
}

func New(cfg *config.Config, logger *zap.Logger) (*Assembler, error) {
	extractor, err := extract.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Assembler{
		cfg:       cfg,
		extractor: extractor,
		client:    utils.NewRestyClient(3),
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Collect extracts every document in order. Documents that fail to parse or
// contain no chapter are logged and skipped.
func (a *Assembler) Collect(docs []extract.Document) []*model.Chapter {
	chapters := make([]*model.Chapter, 0)
	for i, doc := range docs {
		found, err := a.extractor.ExtractFile(doc.Path, i == 0)
		if err != nil {
			a.logger.Warn("Skipping unreadable document", zap.String("path", doc.Path), zap.Error(err))
			continue
		}
		if len(found) == 0 {
			a.logger.Warn("No chapters found in document", zap.String("path", doc.Path))
			continue
		}
		a.logger.Debug("Extracted document", zap.String("path", doc.Path), zap.Int("chapters", len(found)))
		chapters = append(chapters, found...)
	}
	return chapters
}

// Assemble orders chapters and resolves the book metadata.
func (a *Assembler) Assemble(dir string, chapters []*model.Chapter) *model.Book {
	model.SortChapters(chapters)
	title := Title(a.cfg, dir)
	return &model.Book{
		Identifier:  Identifier(title),
		Title:       title,
		Language:    "en",
		Author:      a.cfg.Author,
		Description: a.cfg.Description,
		Publisher:   a.cfg.Publisher,
		Cover:       a.ResolveCover(dir),
		Chapters:    chapters,
		Modified:    a.now(),
	}
}

// LoadFolder runs extraction over every XML dump in dir and returns the
// assembled book.
func (a *Assembler) LoadFolder(dir string) (*model.Book, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, dir)
	}
	docs, err := extract.ListDocuments(dir)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}
	a.logger.Info("Parsing documents", zap.String("dir", dir), zap.Int("documents", len(docs)))

	book := a.Assemble(dir, a.Collect(docs))
	a.logger.Info("Assembled book", zap.String("title", book.Title), zap.Int("chapters", len(book.Chapters)), zap.Bool("cover", book.Cover != nil))
	return book, nil
}

// OutputPath is where a book named title is written inside dir.
func OutputPath(dir, title, ext string) string {
	return filepath.Join(dir, utils.CleanFileName(title)+ext)
}

// BuildEpub assembles dir and writes <title>.epub into it.
func (a *Assembler) BuildEpub(dir string) (string, error) {
	book, err := a.LoadFolder(dir)
	if err != nil {
		return "", err
	}
	savePath := OutputPath(dir, book.Title, ".epub")
	err = epub.PackBookToEpub(book, savePath)
	if err != nil {
		return "", fmt.Errorf("failed to pack epub: %w", err)
	}
	return savePath, nil
}
