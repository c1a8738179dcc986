package pptx

import (
	"bytes"
	"io"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/spec"
	"github.com/deckforge/deckforge/pkg/themes"
)

const emuPerInch = 914400

// Write serializes the deck to PowerPoint format.
func Write(deck spec.Deck, w io.Writer) error {
	th := themes.Get(deck.Theme)

	p := ppt.New()
	p.GetDocumentProperties().Title = deck.Title
	if deck.Author != "" {
		p.GetDocumentProperties().Creator = deck.Author
	}

	for i, rs := range deck.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		for _, el := range rs.Elements {
			writeElement(slide, el, th)
		}
	}

	writer, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "creating document writer")
	}
	if err := writer.(*ppt.PPTXWriter).WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "serializing deck")
	}
	return nil
}

// WriteBytes serializes the deck to an in-memory document.
func WriteBytes(deck spec.Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(deck, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the deck to the given path.
func WriteFile(deck spec.Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "creating output file")
	}
	defer f.Close()

	if err := Write(deck, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "flushing output file")
	}
	return nil
}

// writeElement maps one placed element onto a document shape.
func writeElement(slide *ppt.Slide, el spec.Element, th themes.Theme) {
	switch el.Type {
	case spec.ElementImage:
		shape := slide.CreateDrawingShape()
		shape.SetImageData(el.ImageData, el.ImageMIME)
		shape.SetOffsetX(emu(el.Rect.X)).SetOffsetY(emu(el.Rect.Y))
		shape.SetWidth(emu(el.Rect.W)).SetHeight(emu(el.Rect.H))

	case spec.ElementBox, spec.ElementPlaceholder:
		shape := slide.CreateRichTextShape()
		shape.SetOffsetX(emu(el.Rect.X)).SetOffsetY(emu(el.Rect.Y))
		shape.SetWidth(emu(el.Rect.W)).SetHeight(emu(el.Rect.H))
		shape.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(argb(el.FillColor))))

	case spec.ElementText:
		shape := slide.CreateRichTextShape()
		shape.SetOffsetX(emu(el.Rect.X)).SetOffsetY(emu(el.Rect.Y))
		shape.SetWidth(emu(el.Rect.W)).SetHeight(emu(el.Rect.H))

		run := shape.CreateTextRun(el.Text)
		font := run.GetFont()
		font.SetSize(fontSize(el, th)).SetColor(ppt.NewColor(argb(textColor(el, th))))
		font.Name = fontFamily(el, th)
		if el.Bold {
			font.SetBold(true)
		}
		if el.Italic {
			font.Italic = true
		}
		if el.Centered {
			shape.GetActiveParagraph().SetAlignment(
				ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		}
	}
}

// fontSize resolves an element's font size, falling back to the theme table
// by role when placement left it unset.
func fontSize(el spec.Element, th themes.Theme) int {
	if el.FontSize > 0 {
		return el.FontSize
	}
	switch el.Role {
	case spec.RoleTitle:
		return th.Fonts.Title.Size
	case spec.RoleSubtitle:
		return th.Fonts.Subtitle.Size
	case spec.RoleCaption, spec.RoleOverflow:
		return th.Fonts.Caption.Size
	default:
		return th.Fonts.Content.Size
	}
}

// fontFamily resolves the theme font family for an element by role.
func fontFamily(el spec.Element, th themes.Theme) string {
	switch el.Role {
	case spec.RoleTitle:
		return th.Fonts.Title.Family
	case spec.RoleSubtitle:
		return th.Fonts.Subtitle.Family
	case spec.RoleCaption, spec.RoleOverflow:
		return th.Fonts.Caption.Family
	default:
		return th.Fonts.Content.Family
	}
}

func textColor(el spec.Element, th themes.Theme) string {
	if el.Color != "" {
		return el.Color
	}
	return th.Colors.Text
}

// argb converts a "#RRGGBB" hex string to the opaque "AARRGGBB" form the
// document format expects. Malformed input renders black.
func argb(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return "FF000000"
	}
	return "FF" + strings.ToUpper(hex)
}

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}
