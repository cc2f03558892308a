package model

import "encoding/xml"

type TocNCXHead struct {
	XMLName xml.Name         `xml:"head"`
	Meta    []TocNCXHeadMeta `xml:"meta"`
}

type TocNCXHeadMeta struct {
	XMLName xml.Name `xml:"meta"`
	Content string   `xml:"content,attr"`
	Name    string   `xml:"name,attr"`
}

// NewTocNCXHead describes a flat, unpaginated table of contents for the book
// with the given unique identifier.
func NewTocNCXHead(uid string) *TocNCXHead {
	return &TocNCXHead{
		Meta: []TocNCXHeadMeta{
			{Name: "dtb:uid", Content: uid},
			{Name: "dtb:depth", Content: "1"},
			{Name: "dtb:totalPageCount", Content: "0"},
			{Name: "dtb:maxPageNumber", Content: "0"},
		},
	}
}

func (h *TocNCXHead) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(h)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}

// NavPoint is a single toc.ncx entry. Entries are never nested.
type NavPoint struct {
	Id        string          `xml:"id,attr"`
	PlayOrder int             `xml:"playOrder,attr"`
	Label     string          `xml:"navLabel>text"`
	Content   NavPointContent `xml:"content"`
}

type NavPointContent struct {
	Src string `xml:"src,attr"`
}

type NavMap struct {
	XMLName xml.Name    `xml:"navMap"`
	Points  []*NavPoint `xml:"navPoint"`
}

// Add appends an entry, numbering play order from 1.
func (n *NavMap) Add(id, label, src string) {
	n.Points = append(n.Points, &NavPoint{
		Id:        id,
		PlayOrder: len(n.Points) + 1,
		Label:     label,
		Content:   NavPointContent{Src: src},
	})
}

func (n *NavMap) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}
