package fit

import (
	"fmt"
	"strings"
)

// categories is the closed, domain-agnostic probe set used for overflow
// summaries and compression tags.
var categories = []struct {
	tag    string
	probes []string
}{
	{"frameworks", []string{"framework", "library", "thư viện"}},
	{"data", []string{"data", "dataset", "database", "dữ liệu"}},
	{"performance", []string{"performance", "speed", "latency", "hiệu năng", "tốc độ"}},
	{"security", []string{"security", "bảo mật", "encryption"}},
	{"tools", []string{"tool", "công cụ", "ide", "editor"}},
	{"processes", []string{"process", "workflow", "pipeline", "quy trình"}},
	{"examples", []string{"example", "case study", "ví dụ"}},
	{"benefits", []string{"benefit", "advantage", "lợi ích"}},
	{"history", []string{"history", "origin", "lịch sử"}},
	{"applications", []string{"application", "use case", "ứng dụng"}},
}

// maxSummaryTopics caps how many detected topics the summary names.
const maxSummaryTopics = 2

// summarize builds the overflow summary for dropped items. It names detected
// topics plus the count; with no detectable topic it falls back to the first
// dropped item's leading words. Never a bare count.
func summarize(dropped []string) string {
	if len(dropped) == 0 {
		return ""
	}

	combined := strings.ToLower(strings.Join(dropped, " "))
	var topics []string
	for _, cat := range categories {
		for _, probe := range cat.probes {
			if strings.Contains(combined, probe) {
				topics = append(topics, cat.tag)
				break
			}
		}
		if len(topics) == maxSummaryTopics {
			break
		}
	}

	if len(topics) > 0 {
		return fmt.Sprintf("… plus %d more on %s", len(dropped), strings.Join(topics, " and "))
	}

	lead := leadingWords(dropped[0], 4)
	return fmt.Sprintf("… plus %d more, starting with “%s”", len(dropped), lead)
}

// leadingWords returns the first n whitespace-separated words of text.
func leadingWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
