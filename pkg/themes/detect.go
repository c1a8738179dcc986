package themes

import "strings"

// detection probe sets, checked in order. The first set with a match decides
// the theme; no match falls back to the default.
var detectRules = []struct {
	theme  string
	probes []string
}{
	{"python_modern", []string{"python", "programming", "code", "lập trình"}},
	{"business_elegant", []string{"business", "doanh nghiệp", "marketing", "kinh doanh"}},
	{"education_pro", []string{"học", "giáo dục", "bài giảng", "sinh viên", "education", "lecture"}},
	{"creative_vibrant", []string{"sáng tạo", "creative", "design", "nghệ thuật", "art"}},
}

// Detect picks a theme name from free request text. Deterministic: the same
// text always yields the same theme.
func Detect(content string) string {
	lower := strings.ToLower(content)
	for _, rule := range detectRules {
		for _, probe := range rule.probes {
			if strings.Contains(lower, probe) {
				return rule.theme
			}
		}
	}
	return DefaultTheme
}
