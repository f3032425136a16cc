package usecase

import (
	"context"
	"html/template"
	iofs "io/fs"
	"log/slog"

	"github.com/willyhardian/expressjstutorial/internal/core"
)

type ServePageInput struct {
	Mode        core.Mode
	RequestPath string
	Manifest    *core.Manifest
}

type ServePageOutput struct {
	Action   core.PageAction
	HTML     string
	FilePath string
	Error    error
}

// PageService answers page requests. In dev it re-loads the content tree on
// every request so edits are visible immediately; in prod the decision layer
// only ever points at built files.
type PageService struct {
	content  iofs.FS
	renderer DocRenderer
	features []core.FeatureItem
	logger   *slog.Logger
}

func NewPageService(content iofs.FS, renderer DocRenderer, features []core.FeatureItem, logger *slog.Logger) *PageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageService{
		content:  content,
		renderer: renderer,
		features: features,
		logger:   logger,
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	req := core.PageRequest{
		Mode:        input.Mode,
		RequestPath: input.RequestPath,
	}

	decision := core.DecidePageAction(req, input.Manifest)

	switch decision.Action {
	case core.ActionServeBuiltFile:
		return ServePageOutput{
			Action:   core.ActionServeBuiltFile,
			FilePath: decision.FilePath,
		}

	case core.ActionRenderHome:
		return s.renderHome()

	case core.ActionRenderDoc:
		return s.renderDoc(decision.Slug)

	default:
		return ServePageOutput{Action: core.ActionNotFound}
	}
}

func (s *PageService) renderHome() ServePageOutput {
	site, err := LoadSite(s.content, s.renderer)
	if err != nil {
		return ServePageOutput{Action: core.ActionRenderHome, Error: err}
	}

	html, err := RenderHomePage(site, s.features)
	if err != nil {
		s.logger.Error("homepage render failed", "error", err)
	}
	return ServePageOutput{
		Action: core.ActionRenderHome,
		HTML:   html,
		Error:  err,
	}
}

func (s *PageService) renderDoc(slug string) ServePageOutput {
	site, err := LoadSite(s.content, s.renderer)
	if err != nil {
		return ServePageOutput{Action: core.ActionRenderDoc, Error: err}
	}

	doc, ok := site.FindDoc(slug)
	if !ok {
		return ServePageOutput{Action: core.ActionNotFound}
	}

	html, err := RenderDocPage(site, doc)
	if err != nil {
		s.logger.Error("doc render failed", "slug", slug, "error", err)
	}
	return ServePageOutput{
		Action: core.ActionRenderDoc,
		HTML:   html,
		Error:  err,
	}
}

// RenderHomePage assembles the complete homepage document.
func RenderHomePage(site *Site, features []core.FeatureItem) (string, error) {
	if err := core.ValidateFeatures(features); err != nil {
		return "", err
	}

	body, err := core.RenderHomeBody(site.Config, features)
	if err != nil {
		return "", err
	}

	return core.RenderPageShell(core.ShellData{
		Site:        site.Config,
		Description: site.Config.Tagline,
		Body:        template.HTML(body),
		CSSHref:     core.StylesheetHref,
	})
}

// RenderDocPage assembles a complete tutorial page with sidebar and
// prev/next navigation.
func RenderDocPage(site *Site, doc core.DocPage) (string, error) {
	pagination := core.Paginate(site.Docs, doc.Slug)

	return core.RenderPageShell(core.ShellData{
		Site:        site.Config,
		Title:       doc.Title,
		Description: doc.Description,
		Body:        doc.Body,
		Sidebar:     core.BuildSidebar(site.Docs, doc.Slug),
		Pagination:  &pagination,
		CSSHref:     core.StylesheetHref,
	})
}
