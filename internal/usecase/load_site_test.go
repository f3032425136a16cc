package usecase

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/willyhardian/expressjstutorial/internal/markdown"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(`title: Express.js Tutorial
tagline: Controllers, services and repositories
navbar:
  - label: Tutorial
    to: /docs/intro
`)},
		"docs/01-intro.md": &fstest.MapFile{Data: []byte(`---
title: Introduction
sidebar_position: 1
---

Welcome to the tutorial.
`)},
		"docs/02-project-setup.md": &fstest.MapFile{Data: []byte(`---
title: Project Setup
sidebar_position: 2
---

Install the dependencies.
`)},
		"docs/notes.txt": &fstest.MapFile{Data: []byte("not markdown")},
		"static/css/main.css": &fstest.MapFile{Data: []byte("body{margin:0}")},
		"static/img/solve-the-chaos.svg": &fstest.MapFile{Data: []byte("<svg></svg>")},
	}
}

func TestLoadSite(t *testing.T) {
	site, err := LoadSite(testContent(), markdown.NewRenderer())
	if err != nil {
		t.Fatalf("LoadSite() error: %v", err)
	}

	if site.Config.Title != "Express.js Tutorial" {
		t.Errorf("Title = %q", site.Config.Title)
	}
	if len(site.Docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(site.Docs))
	}
	if site.Docs[0].Slug != "intro" || site.Docs[1].Slug != "project-setup" {
		t.Errorf("docs out of order: %q, %q", site.Docs[0].Slug, site.Docs[1].Slug)
	}
}

func TestLoadSiteFindDoc(t *testing.T) {
	site, err := LoadSite(testContent(), markdown.NewRenderer())
	if err != nil {
		t.Fatalf("LoadSite() error: %v", err)
	}

	doc, ok := site.FindDoc("project-setup")
	if !ok || doc.Title != "Project Setup" {
		t.Errorf("FindDoc = %+v, ok = %v", doc, ok)
	}

	if _, ok := site.FindDoc("missing"); ok {
		t.Error("expected miss for unknown slug")
	}
}

func TestLoadSiteRejectsDuplicateSlugs(t *testing.T) {
	content := testContent()
	content["docs/03-intro.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Another Intro\nslug: intro\n---\n\nDup.\n")}

	_, err := LoadSite(content, markdown.NewRenderer())
	if err == nil || !strings.Contains(err.Error(), "duplicate slug") {
		t.Errorf("expected duplicate slug error, got %v", err)
	}
}

func TestLoadSiteMissingConfig(t *testing.T) {
	content := testContent()
	delete(content, "site.yaml")

	if _, err := LoadSite(content, markdown.NewRenderer()); err == nil {
		t.Error("expected error for missing site.yaml")
	}
}
