package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/willyhardian/expressjstutorial/internal/adapters/cli"
	"github.com/willyhardian/expressjstutorial/internal/core"
)

type BuildInput struct {
	Content  iofs.FS
	Features []core.FeatureItem
	OutDir   string
}

type BuildOutput struct {
	Success bool
	Error   error
}

// BuildService renders the whole site into the dist tree: one HTML file per
// route, the static assets, and the manifest the production server routes
// with.
type BuildService struct {
	renderer DocRenderer
	fs       FileSystem
	cli      CLIOutput
}

func NewBuildService(renderer DocRenderer, fs FileSystem, cliOut CLIOutput) *BuildService {
	return &BuildService{
		renderer: renderer,
		fs:       fs,
		cli:      cliOut,
	}
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("Site Build")

	if input.OutDir == "" {
		return BuildOutput{Error: fmt.Errorf("missing output directory")}
	}

	report := cli.NewBuildReport(s.cli, input.OutDir)

	stepLoad := report.StartStep("Loading content")
	site, err := LoadSite(input.Content, s.renderer)
	if err != nil {
		report.EndStep(stepLoad, false, err.Error())
		report.Render()
		return BuildOutput{Error: fmt.Errorf("load content: %w", err)}
	}
	report.EndStep(stepLoad, true, "")
	report.SetPageCount(len(site.Docs) + 1)

	manifest := core.NewManifest()

	stepDocs := report.StartStep("Rendering documentation pages")
	docsOK := true
	for _, doc := range site.Docs {
		html, err := RenderDocPage(site, doc)
		if err != nil {
			report.AddError(doc.SourcePath, "Failed to render page", []string{err.Error()})
			docsOK = false
			continue
		}

		route := core.DocRoute(doc.Slug)
		if err := s.writeRoute(manifest, input.OutDir, route, doc.Title, []byte(html)); err != nil {
			report.AddError(doc.SourcePath, "Failed to write page", []string{err.Error()})
			docsOK = false
		}
	}
	report.EndStep(stepDocs, docsOK, "")

	stepHome := report.StartStep("Rendering homepage")
	html, err := RenderHomePage(site, input.Features)
	if err != nil {
		report.AddError("homepage", "Failed to render homepage", []string{err.Error()})
		report.EndStep(stepHome, false, "")
	} else if err := s.writeRoute(manifest, input.OutDir, "/", site.Config.Title, []byte(html)); err != nil {
		report.AddError("homepage", "Failed to write homepage", []string{err.Error()})
		report.EndStep(stepHome, false, "")
	} else {
		report.EndStep(stepHome, true, "")
	}

	stepAssets := report.StartStep("Copying static assets")
	if err := s.copyStatic(input.Content, input.OutDir); err != nil {
		report.AddWarning("static", "Failed to copy static assets", []string{err.Error()})
		report.EndStep(stepAssets, false, "")
	} else {
		report.EndStep(stepAssets, true, "")
	}

	stepManifest := report.StartStep("Writing manifest")
	data, err := core.EncodeManifest(manifest)
	if err != nil {
		report.EndStep(stepManifest, false, err.Error())
		report.Render()
		return BuildOutput{Error: fmt.Errorf("encode manifest: %w", err)}
	}
	if err := s.fs.WriteFile(filepath.Join(input.OutDir, "manifest.json"), data, 0644); err != nil {
		report.EndStep(stepManifest, false, err.Error())
		report.Render()
		return BuildOutput{Error: fmt.Errorf("write manifest: %w", err)}
	}
	report.EndStep(stepManifest, true, "")

	report.Render()

	return BuildOutput{Success: !report.HasFailures()}
}

func (s *BuildService) writeRoute(manifest *core.Manifest, outDir, route, title string, html []byte) error {
	relPath := core.OutputPathForRoute(route)
	fullPath := filepath.Join(outDir, filepath.FromSlash(relPath))

	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(fullPath), err)
	}
	if err := s.fs.WriteFile(fullPath, html, 0644); err != nil {
		return fmt.Errorf("write %s: %w", fullPath, err)
	}

	manifest.Routes[core.NormalizePath(route)] = core.ManifestEntry{
		File:  relPath,
		Hash:  core.HashContent(html),
		Title: title,
	}
	return nil
}

// copyStatic mirrors content/static/* into the dist root, so /img/x.svg is
// served from dist/img/x.svg.
func (s *BuildService) copyStatic(content iofs.FS, outDir string) error {
	return iofs.WalkDir(content, "static", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := iofs.ReadFile(content, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		rel := strings.TrimPrefix(p, "static/")
		dst := filepath.Join(outDir, filepath.FromSlash(rel))

		if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := s.fs.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		return nil
	})
}
