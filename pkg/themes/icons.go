package themes

import "strings"

// icons is the closed icon table. Keys are canonical concept names.
var icons = map[string]string{
	// Education
	"education": "🎓",
	"book":      "📚",
	"study":     "📖",
	"learn":     "🧠",
	"school":    "🏫",
	"knowledge": "💡",

	// Technology
	"python":      "🐍",
	"code":        "💻",
	"programming": "⌨️",
	"ai":          "🤖",
	"data":        "📊",
	"analysis":    "📈",
	"algorithm":   "⚙️",
	"tech":        "🔧",

	// Business
	"business":     "💼",
	"presentation": "📋",
	"meeting":      "🤝",
	"strategy":     "🎯",
	"growth":       "📈",
	"success":      "🏆",
	"team":         "👥",
	"project":      "📂",

	// Science
	"biology":    "🧬",
	"chemistry":  "⚗️",
	"physics":    "⚛️",
	"math":       "📐",
	"lab":        "🔬",
	"experiment": "🧪",
	"research":   "🔍",
	"discovery":  "🌟",

	// General
	"idea":   "💡",
	"rocket": "🚀",
	"star":   "⭐",
	"check":  "✅",
}

// defaultIcon is returned for unknown icon names.
const defaultIcon = "📄"

// defaultBullets is the round-robin fallback set for content items whose text
// matches no icon keyword.
var defaultBullets = []string{"🔹", "🔸", "▪️", "▫️"}

// Icon returns the icon registered for name, or a generic document icon.
func Icon(name string) string {
	if icon, ok := icons[name]; ok {
		return icon
	}
	return defaultIcon
}

// iconKeywords maps lowercase text probes to icon table keys. Checked in
// order so more specific probes win.
var iconKeywords = []struct {
	probe string
	icon  string
}{
	{"python", "python"},
	{"thuật toán", "algorithm"},
	{"algorithm", "algorithm"},
	{"code", "code"},
	{"lập trình", "programming"},
	{"programming", "programming"},
	{"ai ", "ai"},
	{"machine learning", "ai"},
	{"data", "data"},
	{"dữ liệu", "data"},
	{"analysis", "analysis"},
	{"phân tích", "analysis"},
	{"business", "business"},
	{"kinh doanh", "business"},
	{"marketing", "strategy"},
	{"chiến lược", "strategy"},
	{"strategy", "strategy"},
	{"team", "team"},
	{"growth", "growth"},
	{"tăng trưởng", "growth"},
	{"học", "education"},
	{"education", "education"},
	{"student", "education"},
	{"teach", "education"},
	{"book", "book"},
	{"dna", "biology"},
	{"tế bào", "biology"},
	{"cell", "biology"},
	{"biology", "biology"},
	{"sinh học", "biology"},
	{"chemistry", "chemistry"},
	{"hóa học", "chemistry"},
	{"physics", "physics"},
	{"vật lý", "physics"},
	{"math", "math"},
	{"toán", "math"},
	{"geometry", "math"},
	{"experiment", "experiment"},
	{"thí nghiệm", "experiment"},
	{"research", "research"},
	{"nghiên cứu", "research"},
	{"idea", "idea"},
	{"ý tưởng", "idea"},
}

// BulletIcon picks an icon for one content item. Keyword match wins; the
// index drives the round-robin fallback so adjacent plain items still get
// visually distinct bullets.
func BulletIcon(text string, index int) string {
	lower := strings.ToLower(text)
	for _, kw := range iconKeywords {
		if strings.Contains(lower, kw.probe) {
			return icons[kw.icon]
		}
	}
	if index < 0 {
		index = 0
	}
	return defaultBullets[index%len(defaultBullets)]
}
