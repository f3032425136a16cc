package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/willyhardian/expressjstutorial/internal/core"
	"github.com/willyhardian/expressjstutorial/internal/markdown"
)

func devPageService(t *testing.T) *PageService {
	t.Helper()
	return NewPageService(testContent(), markdown.NewRenderer(), testFeatures(), nil)
}

func TestServePageDevHome(t *testing.T) {
	svc := devPageService(t)

	out := svc.ServePage(context.Background(), ServePageInput{
		Mode:        core.ModeDev,
		RequestPath: "/",
	})
	if out.Error != nil {
		t.Fatalf("ServePage() error: %v", out.Error)
	}
	if out.Action != core.ActionRenderHome {
		t.Fatalf("Action = %v", out.Action)
	}

	if !strings.Contains(out.HTML, "Express.js Tutorial") {
		t.Error("homepage should carry the site title")
	}
	if !strings.Contains(out.HTML, "Solve the Chaos") {
		t.Error("homepage should render the feature cards")
	}
	if !strings.Contains(out.HTML, core.StylesheetHref) {
		t.Error("homepage should link the stylesheet")
	}
}

func TestServePageDevDoc(t *testing.T) {
	svc := devPageService(t)

	out := svc.ServePage(context.Background(), ServePageInput{
		Mode:        core.ModeDev,
		RequestPath: "/docs/project-setup",
	})
	if out.Error != nil {
		t.Fatalf("ServePage() error: %v", out.Error)
	}
	if out.Action != core.ActionRenderDoc {
		t.Fatalf("Action = %v", out.Action)
	}

	if !strings.Contains(out.HTML, "Project Setup") {
		t.Error("doc page should carry the doc title")
	}
	if !strings.Contains(out.HTML, `href="/docs/intro"`) {
		t.Error("doc page should link its sidebar neighbors")
	}
}

func TestServePageDevUnknownDoc(t *testing.T) {
	svc := devPageService(t)

	out := svc.ServePage(context.Background(), ServePageInput{
		Mode:        core.ModeDev,
		RequestPath: "/docs/missing",
	})
	if out.Action != core.ActionNotFound {
		t.Errorf("Action = %v, want not found", out.Action)
	}
}

func TestServePageProdUsesManifest(t *testing.T) {
	svc := devPageService(t)

	man := core.NewManifest()
	man.Routes["/docs/intro"] = core.ManifestEntry{File: "docs/intro/index.html"}

	out := svc.ServePage(context.Background(), ServePageInput{
		Mode:        core.ModeProd,
		RequestPath: "/docs/intro",
		Manifest:    man,
	})
	if out.Action != core.ActionServeBuiltFile || out.FilePath != "docs/intro/index.html" {
		t.Errorf("output = %+v", out)
	}

	miss := svc.ServePage(context.Background(), ServePageInput{
		Mode:        core.ModeProd,
		RequestPath: "/docs/other",
		Manifest:    man,
	})
	if miss.Action != core.ActionNotFound {
		t.Errorf("Action = %v, want not found", miss.Action)
	}
}
