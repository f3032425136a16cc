package core

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// SiteConfig is the site-wide configuration authored in site.yaml. It is
// the Go-side analog of a docs generator's config file: everything the page
// shell needs that is not per-document.
type SiteConfig struct {
	Title        string       `yaml:"title"`
	Tagline      string       `yaml:"tagline"`
	URL          string       `yaml:"url"`
	BaseURL      string       `yaml:"baseUrl"`
	Organization string       `yaml:"organizationName"`
	Project      string       `yaml:"projectName"`
	Navbar       []NavItem    `yaml:"navbar"`
	Footer       []FooterLink `yaml:"footer"`
}

type NavItem struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
}

func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}

	if cfg.Title == "" {
		return nil, fmt.Errorf("site config: title is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}

	return &cfg, nil
}
