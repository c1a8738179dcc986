// Package fit implements the content fitting algorithm: choosing the largest
// font size at which a list of text items fits a rectangle, degrading
// gracefully when it cannot.
//
// The measurement model is character-count based, not true glyph metrics: a
// character is assumed to advance charWidthRatio of the point size, and a
// line occupies the point size inflated by lineSpacing. The no-overflow
// guarantee is defined relative to this model; the renderer's wrapping must
// stay consistent with it.
package fit

import (
	"unicode/utf8"
)

// FontCandidates are the sizes tried, largest first. Tunable, not a contract.
var FontCandidates = []int{14, 13, 12, 11, 10, 9, 8}

const (
	// charWidthRatio is the assumed glyph advance as a fraction of point size.
	charWidthRatio = 0.55

	// lineSpacing inflates line height over the raw point size.
	lineSpacing = 1.35

	pointsPerInch = 72
)

// Result is the outcome of one Fit call.
//
// If OverflowSummary is empty every input item was placed; otherwise
// PlacedItems is a strict prefix of the input, in order, and the summary
// describes the dropped remainder.
type Result struct {
	PlacedItems     []string `json:"placed_items"`
	OverflowSummary string   `json:"overflow_summary,omitempty"`
	FontSize        int      `json:"font_size"`
}

// CharsPerLine estimates how many characters fit on one line of the given
// width at the given font size. Never less than 1.
func CharsPerLine(width float64, size int) int {
	n := int(width * pointsPerInch / (charWidthRatio * float64(size)))
	if n < 1 {
		n = 1
	}
	return n
}

// LineCapacity estimates how many item lines fit in the given height at the
// given font size, reserving one line for a potential overflow summary.
func LineCapacity(height float64, size int) int {
	n := int(height*pointsPerInch/(float64(size)*lineSpacing)) - 1
	if n < 0 {
		n = 0
	}
	return n
}

// linesFor estimates how many lines an item occupies at the given
// chars-per-line. An empty item still occupies its bullet line.
func linesFor(text string, charsPerLine int) int {
	count := utf8.RuneCountInString(text)
	if count == 0 {
		return 1
	}
	return (count + charsPerLine - 1) / charsPerLine
}

// Fit computes the largest candidate font size at which items fit the
// areaWidth x areaHeight rectangle (in inches), greedily placing a prefix
// and summarizing the remainder when full fit is impossible. A size is
// accepted once it places at least min(3, len(items)) items.
//
// Pure and deterministic: identical inputs always produce identical results.
//
// The chosen size shrinks monotonically with the area. The placed count does
// too while the accepted size holds; at the boundary where a smaller area
// pushes acceptance down one size, the smaller text can hold more items than
// the larger area placed, and the count steps up by at most what that one
// size step adds. With multi-line items this trades a few large bullets for
// more small ones; it never exceeds the area's line capacity.
func Fit(items []string, areaWidth, areaHeight float64) Result {
	if len(items) == 0 {
		return Result{FontSize: FontCandidates[0]}
	}

	minAccept := min(3, len(items))
	smallest := FontCandidates[len(FontCandidates)-1]

	for _, size := range FontCandidates {
		placed := placePrefix(items, areaWidth, areaHeight, size)

		if len(placed) == len(items) {
			return Result{PlacedItems: placed, FontSize: size}
		}
		if len(placed) >= minAccept {
			return Result{
				PlacedItems:     placed,
				OverflowSummary: summarize(items[len(placed):]),
				FontSize:        size,
			}
		}
		if size != smallest {
			continue
		}

		// Smallest size reached. If nothing fits at all, compress items and
		// retry the greedy placement before giving up.
		if len(placed) == 0 {
			compressed := make([]string, len(items))
			for i, item := range items {
				compressed[i] = Compress(item)
			}
			placed = placePrefix(compressed, areaWidth, areaHeight, size)
			if len(placed) == len(items) {
				return Result{PlacedItems: placed, FontSize: size}
			}
			return Result{
				PlacedItems:     placed,
				OverflowSummary: summarize(items[len(placed):]),
				FontSize:        size,
			}
		}
		return Result{
			PlacedItems:     placed,
			OverflowSummary: summarize(items[len(placed):]),
			FontSize:        size,
		}
	}

	// Unreachable while FontCandidates is non-empty.
	return Result{FontSize: smallest}
}

// placePrefix walks items in order, accumulating line cost, and returns the
// prefix that fits the area's line capacity at the given size.
func placePrefix(items []string, width, height float64, size int) []string {
	cpl := CharsPerLine(width, size)
	capacity := LineCapacity(height, size)

	used := 0
	var placed []string
	for _, item := range items {
		cost := linesFor(item, cpl)
		if used+cost > capacity {
			break
		}
		used += cost
		placed = append(placed, item)
	}
	return placed
}

// Lines reports the total line cost of the given items at a font size and
// width, using the same model as Fit. Exposed for the no-overflow checks.
func Lines(items []string, width float64, size int) int {
	cpl := CharsPerLine(width, size)
	total := 0
	for _, item := range items {
		total += linesFor(item, cpl)
	}
	return total
}
