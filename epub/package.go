package epub

import (
	"fmt"
	"time"

	"yonder-parse/model"
)

func buildPackage(book *model.Book) (*model.DublinCoreMetadata, *model.Manifest, *model.Spine, *model.Guide) {
	modified := book.Modified
	if modified.IsZero() {
		modified = time.Now()
	}
	dc := &model.DublinCoreMetadata{
		Titles: []model.DCTitle{
			{
				Value: book.Title,
			},
		},
		Identifiers: []model.DCIdentifier{
			{
				Value: fmt.Sprintf("urn:uuid:%s", book.Identifier),
				ID:    "book-id",
			},
		},
		Languages: []model.DCLanguage{
			{
				Value: book.Language,
			},
		},
		Metas: []model.DublinCoreMeta{
			{
				Property: "dcterms:modified",
				Value:    modified.UTC().Format("2006-01-02T15:04:05Z"),
			},
		},
	}
	if book.Author != "" {
		dc.Creators = append(dc.Creators, model.DCCreator{Value: book.Author})
	}
	if book.Description != "" {
		dc.Descriptions = append(dc.Descriptions, model.DCDescription{Value: book.Description})
	}
	if book.Publisher != "" {
		dc.Publishers = append(dc.Publishers, model.DCPublisher{Value: book.Publisher})
	}

	manifest := &model.Manifest{
		Items: make([]model.ManifestItem, 0),
	}
	spine := &model.Spine{
		Toc:   "ncx",
		Items: make([]model.SpineItem, 0),
	}
	guide := &model.Guide{
		Items: make([]model.GuideItem, 0),
	}

	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "ncx",
		Link:  "toc.ncx",
		Media: "application/x-dtbncx+xml",
	})
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "style",
		Link:  stylePath,
		Media: "text/css",
	})
	if book.Cover != nil {
		dc.Metas = append(dc.Metas, model.DublinCoreMeta{
			Name:    "cover",
			Content: "cover-image",
		})
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:         "cover-image",
			Link:       coverImagePath(book.Cover),
			Media:      book.Cover.MediaType(),
			Properties: "cover-image",
		})
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    "cover",
			Link:  coverXHTMLPath,
			Media: "application/xhtml+xml",
		})
		spine.Items = append(spine.Items, model.SpineItem{IDref: "cover"})
		guide.Items = append(guide.Items, model.GuideItem{
			Title: "Cover",
			Type:  "cover",
			Link:  coverXHTMLPath,
		})
	}

	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:         "nav",
		Link:       navPath,
		Media:      "application/xhtml+xml",
		Properties: "nav",
	})
	spine.Items = append(spine.Items, model.SpineItem{IDref: "nav"})
	guide.Items = append(guide.Items, model.GuideItem{
		Title: "Contents",
		Type:  "toc",
		Link:  navPath,
	})

	for i := range book.Chapters {
		id := fmt.Sprintf("chapter-%03v", i+1)
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    id,
			Link:  "Text/" + ChapterFileName(i),
			Media: "application/xhtml+xml",
		})
		spine.Items = append(spine.Items, model.SpineItem{IDref: id})
	}

	return dc, manifest, spine, guide
}

func buildTocNCX(book *model.Book) (*model.TocNCXHead, *model.NavMap) {
	navMap := &model.NavMap{Points: make([]*model.NavPoint, 0)}
	for idx, chapter := range book.Chapters {
		navMap.Add(fmt.Sprintf("chapter-%03v", idx+1), chapter.Title, "Text/"+ChapterFileName(idx))
	}
	return model.NewTocNCXHead(fmt.Sprintf("urn:uuid:%s", book.Identifier)), navMap
}
