package epub

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/a-h/templ"

	"yonder-parse/model"
	"yonder-parse/template"
)

const (
	opfPath = "OEBPS/content.opf"
	ncxPath = "OEBPS/toc.ncx"
	navPath = "Text/nav.xhtml"

	coverXHTMLPath = "Text/cover.xhtml"
	stylePath      = "Styles/style.css"
)

func ChapterFileName(idx int) string {
	return fmt.Sprintf("chapter-%03v.xhtml", idx+1)
}

// PackBookToEpub writes book as a single EPUB container at savePath.
func PackBookToEpub(book *model.Book, savePath string) error {
	zipFile, err := os.Create(savePath)
	if err != nil {
		return fmt.Errorf("failed to create epub file: %w", err)
	}

	zipWriter := zip.NewWriter(zipFile)
	err = writeBook(zipWriter, book)
	if err == nil {
		err = zipWriter.Close()
	}
	if closeErr := zipFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(savePath)
		return err
	}
	return nil
}

func writeBook(zipWriter *zip.Writer, book *model.Book) error {
	// mimetype must be the first entry and stored uncompressed.
	err := addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return fmt.Errorf("failed to write mimetype: %w", err)
	}

	err = addComponentToZip(zipWriter, "META-INF/container.xml", template.ContainerXML(opfPath))
	if err != nil {
		return fmt.Errorf("failed to render container: %w", err)
	}

	if book.Cover != nil {
		err = addBytesToZip(zipWriter, path.Join("OEBPS", coverImagePath(book.Cover)), book.Cover.Data, zip.Deflate)
		if err != nil {
			return fmt.Errorf("failed to write cover: %w", err)
		}
		err = addComponentToZip(zipWriter, path.Join("OEBPS", coverXHTMLPath), template.CoverXHTML("../"+coverImagePath(book.Cover)))
		if err != nil {
			return fmt.Errorf("failed to render cover XHTML: %w", err)
		}
	}

	entries := make([]template.NavEntry, 0, len(book.Chapters))
	for i, chapter := range book.Chapters {
		entries = append(entries, template.NavEntry{Title: chapter.Title, Link: ChapterFileName(i)})
	}
	err = addComponentToZip(zipWriter, path.Join("OEBPS", navPath), template.NavXHTML("Contents", entries))
	if err != nil {
		return fmt.Errorf("failed to render contents XHTML: %w", err)
	}

	for i, chapter := range book.Chapters {
		err = addComponentToZip(zipWriter, path.Join("OEBPS/Text", ChapterFileName(i)), template.ChapterXHTML(chapter))
		if err != nil {
			return fmt.Errorf("failed to write chapter %q: %w", chapter.Title, err)
		}
	}

	err = addStringToZip(zipWriter, path.Join("OEBPS", stylePath), template.StyleCSS, zip.Deflate)
	if err != nil {
		return fmt.Errorf("failed to write CSS: %w", err)
	}

	dc, manifest, spine, guide := buildPackage(book)
	err = addComponentToZip(zipWriter, opfPath, template.ContentOPF("book-id", dc, manifest, spine, guide))
	if err != nil {
		return fmt.Errorf("failed to render content OPF: %w", err)
	}

	head, navMap := buildTocNCX(book)
	err = addComponentToZip(zipWriter, ncxPath, template.TocNCX(book.Title, head, navMap))
	if err != nil {
		return fmt.Errorf("failed to render toc NCX: %w", err)
	}

	return nil
}

func coverImagePath(cover *model.Cover) string {
	return "Images/cover" + cover.Ext()
}

func addComponentToZip(zipWriter *zip.Writer, relPath string, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		return err
	}
	return addBytesToZip(zipWriter, relPath, buf.Bytes(), zip.Deflate)
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	return addBytesToZip(zipWriter, relPath, []byte(content), method)
}

func addBytesToZip(zipWriter *zip.Writer, relPath string, content []byte, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = writer.Write(content)
	return err
}
