package fit

import (
	"reflect"
	"strings"
	"testing"
)

func TestFitAllItemsAtLargestSize(t *testing.T) {
	items := []string{"Point one", "Point two", "Point three"}
	res := Fit(items, 9, 5.5)

	if res.FontSize != 14 {
		t.Errorf("FontSize = %d, want 14", res.FontSize)
	}
	if len(res.PlacedItems) != 3 {
		t.Errorf("placed = %d, want 3", len(res.PlacedItems))
	}
	if res.OverflowSummary != "" {
		t.Errorf("OverflowSummary = %q, want empty", res.OverflowSummary)
	}
}

func TestFitLongContentDegradesToSmallestSize(t *testing.T) {
	// 15 paragraph-length items (350 runes each) in a small area force the
	// smallest candidate with a partial placement.
	para := strings.TrimSpace(strings.Repeat("data analysis ", 25)) // 349 runes
	items := make([]string, 15)
	for i := range items {
		items[i] = para
	}

	res := Fit(items, 4.5, 3.0)

	if res.FontSize != 8 {
		t.Errorf("FontSize = %d, want 8", res.FontSize)
	}
	if len(res.PlacedItems) >= 15 || len(res.PlacedItems) == 0 {
		t.Errorf("placed = %d, want partial placement", len(res.PlacedItems))
	}
	if res.OverflowSummary == "" {
		t.Fatal("expected non-empty overflow summary")
	}
	if !strings.Contains(res.OverflowSummary, "data") {
		t.Errorf("summary should name the detected topic: %q", res.OverflowSummary)
	}
	if !strings.Contains(res.OverflowSummary, "12") {
		t.Errorf("summary should include the dropped count: %q", res.OverflowSummary)
	}
}

func TestFitEmptyItems(t *testing.T) {
	res := Fit(nil, 9, 5)
	if len(res.PlacedItems) != 0 || res.OverflowSummary != "" {
		t.Errorf("empty input should be trivial success: %+v", res)
	}
}

func TestFitPrefixProperty(t *testing.T) {
	items := []string{
		"First topic with some text",
		"Second topic with rather more text than the first one had",
		strings.Repeat("long item ", 40),
		"Fourth",
		strings.Repeat("another long item ", 30),
		"Sixth and final",
	}

	areas := []struct{ w, h float64 }{
		{9, 5.5}, {4.5, 3.0}, {2.7, 4.5}, {9, 1.0}, {1.0, 0.5},
	}
	for _, a := range areas {
		res := Fit(items, a.w, a.h)
		if len(res.PlacedItems) > len(items) {
			t.Fatalf("placed more items than given at %vx%v", a.w, a.h)
		}
		// Placed items must be the input prefix, in order, unless compression
		// rewrote them (compression preserves order and count semantics).
		for i, placed := range res.PlacedItems {
			if placed != items[i] && placed != Compress(items[i]) {
				t.Errorf("area %vx%v: item %d is neither original nor compressed form: %q",
					a.w, a.h, i, placed)
			}
		}
		if res.OverflowSummary == "" && len(res.PlacedItems) != len(items) {
			t.Errorf("area %vx%v: empty summary but only %d/%d items placed",
				a.w, a.h, len(res.PlacedItems), len(items))
		}
	}
}

func TestFitNoOverflowInvariant(t *testing.T) {
	items := []string{
		"Short",
		strings.Repeat("medium length item text ", 5),
		strings.Repeat("very long item ", 30),
		"Another short one",
		strings.Repeat("word ", 60),
	}

	areas := []struct{ w, h float64 }{
		{9, 5.5}, {4.5, 5.5}, {4.2, 2.8}, {6, 2.8}, {2, 1}, {0.8, 0.6},
	}
	for _, a := range areas {
		res := Fit(items, a.w, a.h)
		used := Lines(res.PlacedItems, a.w, res.FontSize)
		if capacity := LineCapacity(a.h, res.FontSize); used > capacity {
			t.Errorf("area %vx%v: placed items use %d lines, capacity %d",
				a.w, a.h, used, capacity)
		}
	}
}

func TestFitMonotonicDegradation(t *testing.T) {
	// Uniform one-line items: shrinking the area must never place more items
	// or pick a larger font.
	items := make([]string, 8)
	for i := range items {
		items[i] = strings.Repeat("ab cd ", 10) // 60 runes, no category keywords
	}

	heights := []float64{5.5, 4, 3, 2, 1.5, 1}
	prevCount := len(items) + 1
	prevSize := FontCandidates[0] + 1
	for _, h := range heights {
		res := Fit(items, 9, h)
		if len(res.PlacedItems) > prevCount {
			t.Errorf("height %v: placed %d > previous %d", h, len(res.PlacedItems), prevCount)
		}
		if res.FontSize > prevSize {
			t.Errorf("height %v: font %d > previous %d", h, res.FontSize, prevSize)
		}
		prevCount = len(res.PlacedItems)
		prevSize = res.FontSize
	}
}

func TestFitAcceptanceBoundaryCountStep(t *testing.T) {
	// Multi-line items around the size-acceptance boundary. At h=2.94 size 12
	// is the first candidate placing the minimum three items (four lines
	// each). At h=2.92 size 12 only places two, so acceptance falls to size
	// 11, where the items cost three lines and four of them fit: the count
	// steps up as the area shrinks, while the size still shrinks with it.
	item := strings.Repeat("insight ", 15)[:118]
	items := make([]string, 8)
	for i := range items {
		items[i] = item
	}

	larger := Fit(items, 3.5, 2.94)
	if larger.FontSize != 12 || len(larger.PlacedItems) != 3 {
		t.Fatalf("larger area: size %d count %d, want size 12 count 3",
			larger.FontSize, len(larger.PlacedItems))
	}

	smaller := Fit(items, 3.5, 2.92)
	if smaller.FontSize != 11 || len(smaller.PlacedItems) != 4 {
		t.Fatalf("smaller area: size %d count %d, want size 11 count 4",
			smaller.FontSize, len(smaller.PlacedItems))
	}

	if smaller.FontSize > larger.FontSize {
		t.Errorf("font size grew as the area shrank: %d > %d",
			smaller.FontSize, larger.FontSize)
	}
	for _, tc := range []struct {
		res    Result
		height float64
	}{{larger, 2.94}, {smaller, 2.92}} {
		if tc.res.OverflowSummary == "" {
			t.Error("partial placement must carry an overflow summary")
		}
		used := Lines(tc.res.PlacedItems, 3.5, tc.res.FontSize)
		if capacity := LineCapacity(tc.height, tc.res.FontSize); used > capacity {
			t.Errorf("height %v: placed items use %d lines, capacity %d", tc.height, used, capacity)
		}
	}
}

func TestFitIdempotent(t *testing.T) {
	items := []string{"One point", strings.Repeat("two ", 50), "Three"}
	first := Fit(items, 4.5, 3.0)
	for range 5 {
		if again := Fit(items, 4.5, 3.0); !reflect.DeepEqual(first, again) {
			t.Fatalf("Fit not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestFitCompressionMode(t *testing.T) {
	// A tiny area where no raw item fits even at the smallest size, but a
	// compressed lead clause does.
	items := []string{
		"Key framework concepts; detailed explanation follows with many supporting words",
		"Data pipelines in production: ingestion, validation, storage and serving layers",
	}

	res := Fit(items, 1.0, 0.5)

	if res.FontSize != 8 {
		t.Errorf("FontSize = %d, want smallest candidate 8", res.FontSize)
	}
	if len(res.PlacedItems) != 1 {
		t.Fatalf("placed = %v, want 1 compressed item", res.PlacedItems)
	}
	if res.PlacedItems[0] != "Key framework concepts" {
		t.Errorf("placed[0] = %q, want compressed lead clause", res.PlacedItems[0])
	}
	if res.OverflowSummary == "" {
		t.Error("expected overflow summary for the dropped item")
	}
}

func TestFitNothingFits(t *testing.T) {
	// Area so small even compressed items cannot be placed: everything is
	// dropped but still accounted for in the summary, never silently lost.
	items := []string{
		strings.Repeat("benefit words here ", 10),
		strings.Repeat("more benefit text ", 10),
	}
	res := Fit(items, 0.4, 0.3)

	if len(res.PlacedItems) != 0 {
		t.Errorf("expected no placed items, got %v", res.PlacedItems)
	}
	if !strings.Contains(res.OverflowSummary, "2") {
		t.Errorf("summary should account for both dropped items: %q", res.OverflowSummary)
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"semicolon lead clause keeps its own signal",
			"Install the toolchain; then configure your environment and editor",
			"Install the toolchain",
		},
		{
			"tag appended when lead clause loses the signal",
			"Getting started quickly; use a proper tool and editor setup",
			"Getting started quickly (tools)",
		},
		{
			"colon lead clause",
			"Performance tuning: profile first, optimize later",
			"Performance tuning",
		},
		{
			"short text unchanged",
			"Just a short item",
			"Just a short item",
		},
		{
			"tag not duplicated",
			"Framework overview; the framework handles routing",
			"Framework overview",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compress(tt.in); got != tt.want {
				t.Errorf("Compress(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompressLongTextWithoutDelimiter(t *testing.T) {
	in := strings.Repeat("word ", 40) // 200 runes, no delimiter
	got := Compress(in)
	if len([]rune(got)) > maxCompressedRunes+1 { // +1 for the ellipsis
		t.Errorf("compressed text too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated text should end with ellipsis: %q", got)
	}
}

func TestSummarize(t *testing.T) {
	t.Run("detects topics", func(t *testing.T) {
		got := summarize([]string{
			"Security considerations for the deployment",
			"Database schema details",
		})
		if !strings.Contains(got, "security") && !strings.Contains(got, "data") {
			t.Errorf("summary should name a detected topic: %q", got)
		}
		if !strings.Contains(got, "2") {
			t.Errorf("summary should include the count: %q", got)
		}
	})

	t.Run("falls back to leading words", func(t *testing.T) {
		got := summarize([]string{"Quarterly review meeting notes from March"})
		if !strings.Contains(got, "Quarterly review meeting notes") {
			t.Errorf("fallback should quote leading words: %q", got)
		}
	})

	t.Run("never a bare count", func(t *testing.T) {
		got := summarize([]string{"alpha beta gamma"})
		if got == "1 more items" || got == "1 more" {
			t.Errorf("bare count summary: %q", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := summarize(nil); got != "" {
			t.Errorf("summarize(nil) = %q, want empty", got)
		}
	})
}
