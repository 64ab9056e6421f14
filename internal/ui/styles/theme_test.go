// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
}

func TestTheme_SetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) = %dx%d", theme.Width, theme.Height)
	}
}

func TestTheme_DangerStyle(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		name     string
		fraction float64
		want     string
	}{
		{"fresh edit", 0.0, "safe"},
		{"below warn", 0.39, "safe"},
		{"warn boundary", 0.4, "warn"},
		{"mid warn", 0.6, "warn"},
		{"critical boundary", 0.75, "critical"},
		{"about to erase", 0.99, "critical"},
		{"past limit", 1.5, "critical"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := theme.DangerStyle(tc.fraction)
			var want string
			switch {
			case got.GetBold() && got.GetForeground() == Rose:
				want = "critical"
			case got.GetBold() && got.GetForeground() == Amber:
				want = "warn"
			default:
				want = "safe"
			}
			if want != tc.want {
				t.Errorf("DangerStyle(%v) = %s, want %s", tc.fraction, want, tc.want)
			}
		})
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	if s := RenderSuccess("saved"); !strings.Contains(s, "[OK]") || !strings.Contains(s, "saved") {
		t.Errorf("RenderSuccess output missing indicator or message: %q", s)
	}
	if s := RenderError("failed"); !strings.Contains(s, "[X]") {
		t.Errorf("RenderError output missing indicator: %q", s)
	}
	if s := RenderWarning("careful"); !strings.Contains(s, "[!]") {
		t.Errorf("RenderWarning output missing indicator: %q", s)
	}
	if s := RenderInfo("note"); !strings.Contains(s, "[i]") {
		t.Errorf("RenderInfo output missing indicator: %q", s)
	}
}
