package cli

import "testing"

func TestSetVersion(t *testing.T) {
	SetVersion("v0.3.0", "abc123", "2026-08-30")

	if version != "v0.3.0" || commit != "abc123" || date != "2026-08-30" {
		t.Errorf("got %q/%q/%q, want the injected values", version, commit, date)
	}

	SetVersion("", "", "")
	if version != "" || commit != "" || date != "" {
		t.Errorf("got %q/%q/%q, want empty values", version, commit, date)
	}
}
