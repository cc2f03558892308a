package epub

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goreader "github.com/taylorskalyo/goreader/epub"

	"yonder-parse/model"
)

func testBook(withCover bool) *model.Book {
	first := model.NewChapter("Chapter 1: Dawn", 1, 0)
	first.AddParagraph("The sun rose.")
	first.AddParagraph("Birds & bells <rang>.")
	second := model.NewChapter("Chapter 2: Dusk", 2, 0)
	second.AddParagraph("It set.")

	book := &model.Book{
		Identifier:  "9b2f8c1e-0d4a-5c3e-9f1a-2b3c4d5e6f70",
		Title:       "Day & Night",
		Language:    "en",
		Author:      "A. Writer",
		Description: "Two chapters.",
		Publisher:   "Yonder",
		Chapters:    []*model.Chapter{first, second},
		Modified:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if withCover {
		book.Cover = &model.Cover{FileName: "cover.png", Data: []byte("png")}
	}
	return book
}

func readEntry(t *testing.T, zr *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			r, err := f.Open()
			require.NoError(t, err)
			defer r.Close()
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestPackBookToEpub_Layout(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "book.epub")
	require.NoError(t, PackBookToEpub(testBook(true), savePath))

	zr, err := zip.OpenReader(savePath)
	require.NoError(t, err)
	defer zr.Close()

	require.NotEmpty(t, zr.File)
	assert.Equal(t, "mimetype", zr.File[0].Name)
	assert.Equal(t, zip.Store, zr.File[0].Method)
	assert.Equal(t, "application/epub+zip", readEntry(t, zr, "mimetype"))

	opf := readEntry(t, zr, "OEBPS/content.opf")
	assert.Contains(t, opf, "urn:uuid:9b2f8c1e-0d4a-5c3e-9f1a-2b3c4d5e6f70")
	assert.Contains(t, opf, "<dc:title>Day &amp; Night</dc:title>")
	assert.Contains(t, opf, "<dc:language>en</dc:language>")
	assert.Contains(t, opf, "<dc:creator>A. Writer</dc:creator>")
	assert.Contains(t, opf, "<dc:publisher>Yonder</dc:publisher>")
	assert.Contains(t, opf, "2024-01-02T03:04:05Z")
	assert.Contains(t, opf, `properties="cover-image"`)

	chapter := readEntry(t, zr, "OEBPS/Text/chapter-001.xhtml")
	assert.Contains(t, chapter, "<h1>Chapter 1: Dawn</h1><p>The sun rose.</p><p>Birds &amp; bells &lt;rang&gt;.</p>")

	ncx := readEntry(t, zr, "OEBPS/toc.ncx")
	assert.Contains(t, ncx, `<content src="Text/chapter-002.xhtml">`)

	nav := readEntry(t, zr, "OEBPS/Text/nav.xhtml")
	assert.Contains(t, nav, `<a href="chapter-001.xhtml">Chapter 1: Dawn</a>`)
	assert.Equal(t, "png", readEntry(t, zr, "OEBPS/Images/cover.png"))
}

func TestPackBookToEpub_ReadBack(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "book.epub")
	require.NoError(t, PackBookToEpub(testBook(true), savePath))

	rc, err := goreader.OpenReader(savePath)
	require.NoError(t, err)
	defer rc.Close()

	require.Len(t, rc.Rootfiles, 1)
	book := rc.Rootfiles[0]
	assert.Equal(t, "Day & Night", book.Title)

	var spine []string
	for _, ref := range book.Spine.Itemrefs {
		require.NotNil(t, ref.Item)
		spine = append(spine, ref.Item.HREF)
	}
	assert.Equal(t, []string{
		"Text/cover.xhtml",
		"Text/nav.xhtml",
		"Text/chapter-001.xhtml",
		"Text/chapter-002.xhtml",
	}, spine)

	r, err := book.Spine.Itemrefs[3].Item.Open()
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<p>It set.</p>")
}

func TestPackBookToEpub_WithoutCover(t *testing.T) {
	book := testBook(false)
	book.Description = ""
	book.Publisher = ""
	book.Author = ""
	savePath := filepath.Join(t.TempDir(), "book.epub")
	require.NoError(t, PackBookToEpub(book, savePath))

	zr, err := zip.OpenReader(savePath)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		assert.False(t, strings.Contains(f.Name, "cover"), f.Name)
	}
	opf := readEntry(t, zr, "OEBPS/content.opf")
	assert.NotContains(t, opf, "dc:description")
	assert.NotContains(t, opf, "dc:publisher")
	assert.NotContains(t, opf, "dc:creator")
	assert.True(t, strings.Index(opf, `idref="nav"`) < strings.Index(opf, `idref="chapter-001"`))
}

func TestPackBookToEpub_BadPath(t *testing.T) {
	err := PackBookToEpub(testBook(false), filepath.Join(t.TempDir(), "missing", "book.epub"))
	assert.Error(t, err)
}
