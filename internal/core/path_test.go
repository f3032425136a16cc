package core

import "testing"

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/":            "/",
		"":             "/",
		"docs/intro":   "/docs/intro",
		"/docs/intro/": "/docs/intro",
	}

	for input, expected := range cases {
		if got := NormalizePath(input); got != expected {
			t.Errorf("NormalizePath(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestValidateRoutePath(t *testing.T) {
	valid := []string{"/", "/docs/intro", "/about"}
	for _, p := range valid {
		if err := ValidateRoutePath(p); err != nil {
			t.Errorf("ValidateRoutePath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "docs/intro", "/a?b=1", "/a#frag", "/../etc"}
	for _, p := range invalid {
		if err := ValidateRoutePath(p); err == nil {
			t.Errorf("ValidateRoutePath(%q) = nil, want error", p)
		}
	}
}

func TestSlugForSource(t *testing.T) {
	cases := map[string]string{
		"docs/01-intro.md":          "intro",
		"docs/02-project-setup.md":  "project-setup",
		"docs/advanced-queries.md":  "advanced-queries",
		"docs/10-Wiring-Things.md":  "wiring-things",
		"README.md":                 "readme",
		"docs/3rd-party-plugins.md": "3rd-party-plugins",
	}

	for input, expected := range cases {
		if got := SlugForSource(input); got != expected {
			t.Errorf("SlugForSource(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestOutputPathForRoute(t *testing.T) {
	cases := map[string]string{
		"/":            "index.html",
		"/docs/intro":  "docs/intro/index.html",
		"/docs/intro/": "docs/intro/index.html",
	}

	for input, expected := range cases {
		if got := OutputPathForRoute(input); got != expected {
			t.Errorf("OutputPathForRoute(%q) = %q, want %q", input, got, expected)
		}
	}
}
