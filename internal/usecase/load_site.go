package usecase

import (
	"fmt"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/willyhardian/expressjstutorial/internal/core"
)

// Site is the fully loaded content tree: parsed configuration plus every
// tutorial document rendered and sorted into display order.
type Site struct {
	Config *core.SiteConfig
	Docs   []core.DocPage
}

// LoadSite reads site.yaml and renders every markdown file under docs/.
// The content FS may be the embedded tree or a project directory on disk.
func LoadSite(content iofs.FS, renderer DocRenderer) (*Site, error) {
	cfgData, err := iofs.ReadFile(content, "site.yaml")
	if err != nil {
		return nil, fmt.Errorf("read site.yaml: %w", err)
	}

	cfg, err := core.ParseSiteConfig(cfgData)
	if err != nil {
		return nil, err
	}

	entries, err := iofs.ReadDir(content, "docs")
	if err != nil {
		return nil, fmt.Errorf("read docs directory: %w", err)
	}

	seen := make(map[string]string)
	var docs []core.DocPage

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		sourcePath := path.Join("docs", entry.Name())
		src, err := iofs.ReadFile(content, sourcePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sourcePath, err)
		}

		doc, err := renderer.RenderDoc(sourcePath, src)
		if err != nil {
			return nil, err
		}

		if prev, dup := seen[doc.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in %s and %s", doc.Slug, prev, sourcePath)
		}
		seen[doc.Slug] = sourcePath

		docs = append(docs, doc)
	}

	core.SortDocs(docs)

	return &Site{Config: cfg, Docs: docs}, nil
}

// FindDoc returns the document with the given slug, if any.
func (s *Site) FindDoc(slug string) (core.DocPage, bool) {
	for _, doc := range s.Docs {
		if doc.Slug == slug {
			return doc, true
		}
	}
	return core.DocPage{}, false
}
