package themes

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		wantName string
	}{
		{"known theme", "education_pro", "education_pro"},
		{"another known theme", "python_modern", "python_modern"},
		{"unknown falls back to default", "neon_dreams", DefaultTheme},
		{"empty falls back to default", "", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.theme)
			if got.Name != tt.wantName {
				t.Errorf("Get(%q).Name = %q, want %q", tt.theme, got.Name, tt.wantName)
			}
		})
	}
}

func TestRegistryComplete(t *testing.T) {
	names := Names()
	if len(names) != 5 {
		t.Fatalf("expected 5 themes, got %d: %v", len(names), names)
	}

	for _, name := range names {
		th := Get(name)
		if th.Colors.Primary == "" || th.Colors.Text == "" || th.Colors.Background == "" {
			t.Errorf("theme %q has incomplete palette", name)
		}
		if th.Fonts.Title.Size <= th.Fonts.Caption.Size {
			t.Errorf("theme %q: title font (%d) should be larger than caption (%d)",
				name, th.Fonts.Title.Size, th.Fonts.Caption.Size)
		}
		if th.Fonts.Content.Family == "" {
			t.Errorf("theme %q missing content font family", name)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"Introduction to Python programming", "python_modern"},
		{"Digital marketing strategy for Q3", "business_elegant"},
		{"Bài giảng sinh học lớp 10", "education_pro"},
		{"Creative design portfolio", "creative_vibrant"},
		{"Quarterly weather report", DefaultTheme},
		{"", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			if got := Detect(tt.content); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	content := "machine learning with python for business"
	first := Detect(content)
	for range 10 {
		if got := Detect(content); got != first {
			t.Fatalf("Detect is not deterministic: %q then %q", first, got)
		}
	}
}

func TestIcon(t *testing.T) {
	if Icon("python") != "🐍" {
		t.Errorf("Icon(python) = %q", Icon("python"))
	}
	if Icon("nonexistent") != defaultIcon {
		t.Errorf("unknown icon should fall back to %q", defaultIcon)
	}
}

func TestBulletIcon(t *testing.T) {
	// Keyword match wins
	if got := BulletIcon("Python basics and syntax", 0); got != "🐍" {
		t.Errorf("BulletIcon keyword match = %q, want 🐍", got)
	}
	if got := BulletIcon("Tế bào và cấu trúc", 0); got != "🧬" {
		t.Errorf("BulletIcon biology match = %q, want 🧬", got)
	}

	// No match: round-robin over the default set
	seen := map[string]bool{}
	for i := range 4 {
		seen[BulletIcon("plain item with no keywords", i)] = true
	}
	if len(seen) != 4 {
		t.Errorf("round-robin should cycle through %d bullets, got %d", 4, len(seen))
	}

	// Same text and index always yields the same icon
	a := BulletIcon("plain item", 2)
	b := BulletIcon("plain item", 2)
	if a != b {
		t.Error("BulletIcon should be deterministic")
	}
}

func TestLighten(t *testing.T) {
	got := Lighten("#000000", 1.0)
	if got != "#ffffff" {
		t.Errorf("Lighten(black, 1.0) = %q, want #ffffff", got)
	}

	// Partial lighten stays a valid hex and differs from the source
	mid := Lighten("#3776AB", 0.5)
	if len(mid) != 7 || mid[0] != '#' {
		t.Errorf("Lighten returned malformed hex: %q", mid)
	}
	if mid == "#3776ab" {
		t.Error("Lighten(0.5) should change the color")
	}

	// Malformed input degrades to a valid color instead of failing
	if got := Lighten("notahex", 0.5); len(got) != 7 {
		t.Errorf("Lighten on bad input should still return hex, got %q", got)
	}
}
