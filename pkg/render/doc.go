// Package render contains the deterministic slide rendering pipeline.
//
// # Overview
//
// The subpackages transform an outline into a finished document in four
// steps, each pure and independently testable:
//
//   - [fit]: fits bullet text into an area, degrading font size before
//     dropping and summarizing overflow
//   - [layout]: picks a slide template (content/image arrangement) from the
//     content volume
//   - [place]: turns one slide plus a template and theme into positioned
//     elements, including image scaling and placeholders
//   - [pptx]: assembles the deck and serializes it to PowerPoint format
//
// # Data Flow
//
//	spec.Outline
//	     ↓
//	[layout] template selection per slide
//	     ↓
//	[place] (runs [fit] for content areas) → []spec.Element
//	     ↓
//	[pptx] deck assembly → .pptx bytes
//
// Everything up to serialization is free of I/O except for reading image
// files referenced by slides; the same outline, theme, and images always
// produce the same elements.
//
// [fit]: github.com/deckforge/deckforge/pkg/render/fit
// [layout]: github.com/deckforge/deckforge/pkg/render/layout
// [place]: github.com/deckforge/deckforge/pkg/render/place
// [pptx]: github.com/deckforge/deckforge/pkg/render/pptx
package render
