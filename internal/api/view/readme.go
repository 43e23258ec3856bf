package view

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// MaxReadmeLength is a number of characters of README shown in detail view.
const MaxReadmeLength = 2000

// Raw html in READMEs is not rendered, goldmark escapes it by default.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Readme is a displayable README excerpt.
type Readme struct {
	Title     string
	Excerpt   string
	HTML      string
	Truncated bool
}

// NewReadme truncates README to MaxReadmeLength characters and renders the excerpt.
func NewReadme(source string) Readme {
	excerpt, truncated := truncate(source, MaxReadmeLength)
	r := Readme{
		Excerpt:   excerpt,
		Truncated: truncated,
	}
	if excerpt == "" {
		return r
	}

	src := []byte(excerpt)
	root := markdown.Parser().Parse(text.NewReader(src))
	r.Title = firstHeading(root, src)

	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, src, root); err == nil {
		r.HTML = buf.String()
	}

	return r
}

func truncate(s string, n int) (string, bool) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}

	return s, false
}

func firstHeading(root ast.Node, src []byte) string {
	var title string
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(nodeText(h, src))
		return ast.WalkStop, nil
	})

	return title
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			continue
		}
		b.WriteString(nodeText(c, src))
	}

	return b.String()
}
