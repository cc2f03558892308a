package model

import (
	"path"
	"strings"
	"time"
)

type Cover struct {
	FileName string
	Data     []byte
}

func (c *Cover) Ext() string {
	return strings.ToLower(path.Ext(c.FileName))
}

func (c *Cover) MediaType() string {
	switch c.Ext() {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

type Book struct {
	Identifier  string
	Title       string
	Language    string
	Author      string
	Description string
	Publisher   string
	Cover       *Cover
	Chapters    []*Chapter
	Modified    time.Time
}
