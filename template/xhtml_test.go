package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yonder-parse/model"
)

func TestChapterBody(t *testing.T) {
	chapter := model.NewChapter(`Chapter 3: "The Storm"`, 3, 0)
	chapter.AddParagraph("Rain & wind.")
	chapter.AddParagraph("<loud>")

	out, err := RenderString(ChapterBody(chapter))
	require.NoError(t, err)

	assert.Equal(t, "<h1>Chapter 3: &#34;The Storm&#34;</h1><p>Rain &amp; wind.</p><p>&lt;loud&gt;</p>", out)
}

func TestChapterBody_NoParagraphs(t *testing.T) {
	out, err := RenderString(ChapterBody(model.NewChapter("Chapter 1", 1, 0)))
	require.NoError(t, err)

	assert.Equal(t, "<h1>Chapter 1</h1>", out)
}

func TestChapterXHTML(t *testing.T) {
	chapter := model.NewChapter("Chapter 2 & More", 2, 0)
	chapter.AddParagraph("Body.")

	out, err := RenderString(ChapterXHTML(chapter))
	require.NoError(t, err)

	assert.True(t, len(out) > 0 && out[:5] == "<?xml", out)
	assert.Contains(t, out, "<title>Chapter 2 &amp; More</title>")
	assert.Contains(t, out, `<link href="../Styles/style.css" rel="stylesheet" type="text/css"/>`)
	assert.Contains(t, out, "<div><h1>Chapter 2 &amp; More</h1><p>Body.</p></div>")
}

func TestBookHTML(t *testing.T) {
	first := model.NewChapter("One", 1, 0)
	first.AddParagraph("a")
	second := model.NewChapter("Two", 2, 0)

	out, err := RenderString(BookHTML("Book", []*model.Chapter{first, second}))
	require.NoError(t, err)

	assert.Contains(t, out, "<div><h1>One</h1><p>a</p><h1>Two</h1></div>")
}

func TestCoverXHTML(t *testing.T) {
	out, err := RenderString(CoverXHTML("../Images/cover.png"))
	require.NoError(t, err)

	assert.Contains(t, out, `xlink:href="../Images/cover.png"></image>`)
	assert.Contains(t, out, "<title>Cover</title>")
}

func TestNavXHTML(t *testing.T) {
	out, err := RenderString(NavXHTML("Contents", []NavEntry{
		{Title: "Chapter 1", Link: "chapter-001.xhtml"},
		{Title: "Chapter 2", Link: "chapter-002.xhtml"},
	}))
	require.NoError(t, err)

	assert.Contains(t, out, `<nav epub:type="toc" id="toc">`)
	assert.Contains(t, out, `xmlns:epub="http://www.idpf.org/2007/ops"`)
	assert.Contains(t, out, `<li><a href="chapter-001.xhtml">Chapter 1</a></li><li><a href="chapter-002.xhtml">Chapter 2</a></li>`)
}

func TestContentOPF(t *testing.T) {
	dc := &model.DublinCoreMetadata{
		Titles:      []model.DCTitle{{Value: "Book"}},
		Identifiers: []model.DCIdentifier{{Value: "urn:uuid:x", ID: "book-id"}},
		Languages:   []model.DCLanguage{{Value: "en"}},
	}
	manifest := &model.Manifest{Items: []model.ManifestItem{{ID: "nav", Link: "Text/nav.xhtml", Media: "application/xhtml+xml", Properties: "nav"}}}
	spine := &model.Spine{Toc: "ncx", Items: []model.SpineItem{{IDref: "nav"}}}

	out, err := RenderString(ContentOPF("book-id", dc, manifest, spine, nil))
	require.NoError(t, err)

	assert.Contains(t, out, `unique-identifier="book-id"`)
	assert.Contains(t, out, `<dc:identifier id="book-id">urn:uuid:x</dc:identifier>`)
	assert.Contains(t, out, `<spine toc="ncx"><itemref idref="nav"></itemref></spine></package>`)
	assert.NotContains(t, out, "<guide>")

	guide := &model.Guide{Items: []model.GuideItem{{Title: "Contents", Type: "toc", Link: "Text/nav.xhtml"}}}
	out, err = RenderString(ContentOPF("book-id", dc, manifest, spine, guide))
	require.NoError(t, err)
	assert.Contains(t, out, `<guide><reference title="Contents" type="toc" href="Text/nav.xhtml"></reference></guide>`)
}

func TestTocNCX(t *testing.T) {
	head := &model.TocNCXHead{Meta: []model.TocNCXHeadMeta{{Name: "dtb:uid", Content: "urn:uuid:x"}}}
	navMap := &model.NavMap{Points: []*model.NavPoint{{Id: "chapter-001", PlayOrder: 1, Label: "One", Content: model.NavPointContent{Src: "Text/chapter-001.xhtml"}}}}

	out, err := RenderString(TocNCX("A & B", head, navMap))
	require.NoError(t, err)

	assert.Contains(t, out, "<docTitle><text>A &amp; B</text></docTitle>")
	assert.Contains(t, out, `<navLabel><text>One</text></navLabel>`)
}

func TestContainerXML(t *testing.T) {
	out, err := RenderString(ContainerXML("OEBPS/content.opf"))
	require.NoError(t, err)

	assert.Contains(t, out, `<rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"></rootfile>`)
}
