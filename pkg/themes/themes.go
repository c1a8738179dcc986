// Package themes provides the style registry for generated decks.
//
// A theme maps a name to a color palette, a font table, and gradient hints.
// Themes are static data; the only logic here is hex parsing, shade
// derivation, and keyword-based auto-detection from the request text.
package themes

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colors is a theme's palette. All values are "#RRGGBB" hex strings.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

// Font describes one font role within a theme.
type Font struct {
	Size   int    `json:"size"` // points
	Weight string `json:"weight"`
	Family string `json:"family"`
}

// Fonts is a theme's font table.
type Fonts struct {
	Title    Font `json:"title"`
	Subtitle Font `json:"subtitle"`
	Content  Font `json:"content"`
	Caption  Font `json:"caption"`
}

// Theme is one named visual style.
type Theme struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Colors      Colors `json:"colors"`
	Fonts       Fonts  `json:"fonts"`
}

// DefaultTheme is used when no theme is requested and detection finds nothing.
const DefaultTheme = "tech_gradient"

var registry = map[string]Theme{
	"python_modern": {
		Name:        "python_modern",
		DisplayName: "Python Modern",
		Description: "Modern theme for Python programming content",
		Colors: Colors{
			Primary:    "#3776AB",
			Secondary:  "#FFD43B",
			Accent:     "#306998",
			Background: "#F8F9FA",
			Text:       "#2C3E50",
			Success:    "#27AE60",
			Warning:    "#F39C12",
			Error:      "#E74C3C",
		},
		Fonts: Fonts{
			Title:    Font{Size: 36, Weight: "bold", Family: "Segoe UI"},
			Subtitle: Font{Size: 24, Weight: "semibold", Family: "Segoe UI"},
			Content:  Font{Size: 18, Weight: "normal", Family: "Segoe UI"},
			Caption:  Font{Size: 14, Weight: "light", Family: "Segoe UI"},
		},
	},
	"tech_gradient": {
		Name:        "tech_gradient",
		DisplayName: "Tech Gradient",
		Description: "Modern gradient theme for technology content",
		Colors: Colors{
			Primary:    "#667EEA",
			Secondary:  "#764BA2",
			Accent:     "#F093FB",
			Background: "#FFFFFF",
			Text:       "#2D3748",
			Success:    "#48BB78",
			Warning:    "#ED8936",
			Error:      "#F56565",
		},
		Fonts: Fonts{
			Title:    Font{Size: 38, Weight: "bold", Family: "Arial"},
			Subtitle: Font{Size: 26, Weight: "semibold", Family: "Arial"},
			Content:  Font{Size: 20, Weight: "normal", Family: "Arial"},
			Caption:  Font{Size: 16, Weight: "light", Family: "Arial"},
		},
	},
	"education_pro": {
		Name:        "education_pro",
		DisplayName: "Education Pro",
		Description: "Professional theme for education content",
		Colors: Colors{
			Primary:    "#2E86AB",
			Secondary:  "#A23B72",
			Accent:     "#F18F01",
			Background: "#FAFAFA",
			Text:       "#1A202C",
			Success:    "#38A169",
			Warning:    "#D69E2E",
			Error:      "#E53E3E",
		},
		Fonts: Fonts{
			Title:    Font{Size: 34, Weight: "bold", Family: "Calibri"},
			Subtitle: Font{Size: 24, Weight: "semibold", Family: "Calibri"},
			Content:  Font{Size: 18, Weight: "normal", Family: "Calibri"},
			Caption:  Font{Size: 14, Weight: "light", Family: "Calibri"},
		},
	},
	"business_elegant": {
		Name:        "business_elegant",
		DisplayName: "Business Elegant",
		Description: "Elegant theme for business content",
		Colors: Colors{
			Primary:    "#1565C0",
			Secondary:  "#FF7043",
			Accent:     "#26A69A",
			Background: "#FFFFFF",
			Text:       "#263238",
			Success:    "#4CAF50",
			Warning:    "#FF9800",
			Error:      "#F44336",
		},
		Fonts: Fonts{
			Title:    Font{Size: 36, Weight: "bold", Family: "Times New Roman"},
			Subtitle: Font{Size: 26, Weight: "semibold", Family: "Times New Roman"},
			Content:  Font{Size: 20, Weight: "normal", Family: "Times New Roman"},
			Caption:  Font{Size: 16, Weight: "light", Family: "Times New Roman"},
		},
	},
	"creative_vibrant": {
		Name:        "creative_vibrant",
		DisplayName: "Creative Vibrant",
		Description: "Creative theme with vivid colors",
		Colors: Colors{
			Primary:    "#E91E63",
			Secondary:  "#9C27B0",
			Accent:     "#00BCD4",
			Background: "#FAFAFA",
			Text:       "#212121",
			Success:    "#4CAF50",
			Warning:    "#FF9800",
			Error:      "#F44336",
		},
		Fonts: Fonts{
			Title:    Font{Size: 40, Weight: "bold", Family: "Comic Sans MS"},
			Subtitle: Font{Size: 28, Weight: "semibold", Family: "Comic Sans MS"},
			Content:  Font{Size: 22, Weight: "normal", Family: "Comic Sans MS"},
			Caption:  Font{Size: 18, Weight: "light", Family: "Comic Sans MS"},
		},
	},
}

// Get returns the named theme, falling back to the default for unknown names.
func Get(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return registry[DefaultTheme]
}

// Exists reports whether a theme with the given name is registered.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered themes sorted by name.
func All() []Theme {
	names := Names()
	out := make([]Theme, 0, len(names))
	for _, n := range names {
		out = append(out, registry[n])
	}
	return out
}

// Parse converts a "#RRGGBB" hex string to a color, returning black for
// malformed input rather than failing a render.
func Parse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Lighten blends a hex color toward white by amount (0..1) and returns the
// result as "#RRGGBB". Used for image frame backgrounds and placeholder fills
// so they read as part of the palette without competing with text.
func Lighten(hex string, amount float64) string {
	c := Parse(hex)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendRgb(white, amount).Clamped().Hex()
}
