package spec

import (
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/deckforge/deckforge/pkg/errors"
)

// ParseMarkdown builds an outline from a markdown document.
//
// Mapping: the first level-1 heading becomes the deck title, each level-2
// heading starts a slide, and list items under a heading become that slide's
// bullet items. Other block content is ignored.
func ParseMarkdown(source []byte) (Outline, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var outline Outline
	var current *Slide

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(source))
			if node.Level == 1 && outline.Title == "" {
				outline.Title = title
				return ast.WalkSkipChildren, nil
			}
			outline.Slides = append(outline.Slides, Slide{Title: title, Kind: KindContent})
			current = &outline.Slides[len(outline.Slides)-1]
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if current == nil {
				return ast.WalkContinue, nil
			}
			item := string(node.Text(source))
			if item != "" {
				current.Items = append(current.Items, item)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeInvalidOutline, err, "walk markdown")
	}

	outline = outline.Normalized()
	if len(outline.Slides) == 0 {
		return Outline{}, errors.New(errors.ErrCodeInvalidOutline, "markdown contains no slide headings")
	}
	return outline, nil
}

// LoadMarkdown reads an outline from a markdown file.
func LoadMarkdown(path string) (Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open markdown %s", path)
	}
	return ParseMarkdown(data)
}
