package fit

import (
	"strings"
	"unicode/utf8"
)

// compressionDelims mark the end of an item's lead clause, in priority order.
var compressionDelims = []string{";", ":", " - ", ","}

// maxCompressedRunes bounds a compressed item when no delimiter is present.
const maxCompressedRunes = 80

// Compress shortens a single item that is too long to place on its own.
//
// The lead clause (text before the first delimiter) is kept and a short
// semantic tag inferred from keyword matches is appended, so the compressed
// item still says what it was about.
func Compress(text string) string {
	trimmed := strings.TrimSpace(text)

	cut := -1
	for _, d := range compressionDelims {
		if i := strings.Index(trimmed, d); i > 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut > 0 {
		trimmed = strings.TrimSpace(trimmed[:cut])
	} else if utf8.RuneCountInString(trimmed) > maxCompressedRunes {
		trimmed = truncateAtWord(trimmed, maxCompressedRunes) + "…"
	}

	// Append a category tag only when the kept clause no longer signals it.
	if tag := semanticTag(text); tag != "" && semanticTag(trimmed) != tag {
		trimmed += " (" + tag + ")"
	}
	return trimmed
}

// truncateAtWord cuts text to at most maxRunes, backing up to the last word
// boundary when one exists in the second half of the cut.
func truncateAtWord(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	cut := string(runes[:maxRunes])
	if i := strings.LastIndexByte(cut, ' '); i > maxRunes/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}

// semanticTag infers a category tag for an item from the shared probe table.
// Returns "" when no category matches.
func semanticTag(text string) string {
	lower := strings.ToLower(text)
	for _, cat := range categories {
		for _, probe := range cat.probes {
			if strings.Contains(lower, probe) {
				return cat.tag
			}
		}
	}
	return ""
}
