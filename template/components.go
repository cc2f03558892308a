package template

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// XHTML needs the self-closed form, which templ does not emit for void
// elements.
const stylesheetLink = `<link href="../Styles/style.css" rel="stylesheet" type="text/css"/>`

type NavEntry struct {
	Title string
	Link  string
}

type marshaler interface {
	Marshal() (string, error)
}

// marshalled writes the XML form of an OPF or NCX model struct.
func marshalled(m marshaler) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := m.Marshal()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	})
}

func RenderString(c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
