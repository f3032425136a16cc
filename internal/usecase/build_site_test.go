package usecase

import (
	"context"
	iofs "io/fs"
	"os"
	"strings"
	"testing"

	"github.com/willyhardian/expressjstutorial/internal/core"
	"github.com/willyhardian/expressjstutorial/internal/markdown"
)

// memFS captures writes in memory so build tests never touch disk.
type memFS struct {
	files map[string][]byte
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memFS) ReadDir(path string) ([]iofs.DirEntry, error) { return nil, nil }
func (m *memFS) FileExists(path string) bool                  { _, ok := m.files[path]; return ok }
func (m *memFS) MkdirAll(path string, perm iofs.FileMode) error { return nil }
func (m *memFS) Remove(path string) error                     { delete(m.files, path); return nil }

func (m *memFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	m.files[path] = data
	return nil
}

// quietOutput satisfies CLIOutput without printing anything.
type quietOutput struct{}

func (quietOutput) PrintHeader(msg string)                {}
func (quietOutput) PrintStep(msg string, args ...any)     {}
func (quietOutput) PrintSuccess(msg string, args ...any)  {}
func (quietOutput) PrintWarning(msg string, args ...any)  {}
func (quietOutput) PrintError(msg string, args ...any)    {}
func (quietOutput) PrintFile(path string)                 {}
func (quietOutput) PrintDone(msg string)                  {}

func testFeatures() []core.FeatureItem {
	return []core.FeatureItem{
		{Title: "Solve the Chaos", Icon: "/img/solve-the-chaos.svg", Description: "Layered code."},
	}
}

func TestBuildSite(t *testing.T) {
	mem := newMemFS()
	svc := NewBuildService(markdown.NewRenderer(), mem, quietOutput{})

	out := svc.BuildSite(context.Background(), BuildInput{
		Content:  testContent(),
		Features: testFeatures(),
		OutDir:   "dist",
	})
	if out.Error != nil {
		t.Fatalf("BuildSite() error: %v", out.Error)
	}
	if !out.Success {
		t.Fatal("expected a successful build")
	}

	for _, path := range []string{
		"dist/index.html",
		"dist/docs/intro/index.html",
		"dist/docs/project-setup/index.html",
		"dist/css/main.css",
		"dist/img/solve-the-chaos.svg",
		"dist/manifest.json",
	} {
		if !mem.FileExists(path) {
			t.Errorf("expected %s to be written", path)
		}
	}

	home := string(mem.files["dist/index.html"])
	if !strings.Contains(home, "Solve the Chaos") {
		t.Error("homepage should contain the feature cards")
	}

	data, _ := mem.ReadFile("dist/manifest.json")
	man, err := core.ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}
	if len(man.Routes) != 3 {
		t.Errorf("expected 3 manifest routes, got %d", len(man.Routes))
	}
	entry, ok := core.LookupRoute(man, "/docs/intro")
	if !ok || entry.File != "docs/intro/index.html" {
		t.Errorf("manifest entry = %+v, ok = %v", entry, ok)
	}
	if entry.Hash == "" {
		t.Error("manifest entries should carry a content hash")
	}
}

func TestBuildSiteRequiresOutDir(t *testing.T) {
	svc := NewBuildService(markdown.NewRenderer(), newMemFS(), quietOutput{})

	out := svc.BuildSite(context.Background(), BuildInput{Content: testContent()})
	if out.Error == nil {
		t.Error("expected error for missing output directory")
	}
}

func TestBuildSiteRejectsInvalidFeatures(t *testing.T) {
	mem := newMemFS()
	svc := NewBuildService(markdown.NewRenderer(), mem, quietOutput{})

	out := svc.BuildSite(context.Background(), BuildInput{
		Content:  testContent(),
		Features: []core.FeatureItem{{Icon: "/img/x.svg"}},
		OutDir:   "dist",
	})
	if out.Success {
		t.Error("expected the build to fail for a feature without a title")
	}
	if mem.FileExists("dist/index.html") {
		t.Error("homepage should not be written when rendering fails")
	}
}
