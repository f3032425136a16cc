// Package docsite serves the Express.js tutorial documentation site. In
// dev mode pages are rendered from the content tree on every request; in
// prod mode the pre-built dist tree is served through its manifest.
package docsite

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/willyhardian/expressjstutorial/internal/adapters/env"
	httpadapter "github.com/willyhardian/expressjstutorial/internal/adapters/http"
	"github.com/willyhardian/expressjstutorial/internal/core"
	"github.com/willyhardian/expressjstutorial/internal/markdown"
	"github.com/willyhardian/expressjstutorial/internal/usecase"
)

var (
	ErrDistRequiredInProd = errors.New("docsite: dist tree is required in prod mode")
	ErrManifestMissing    = errors.New("docsite: manifest.json not found in dist tree")
)

// FeatureItem is re-exported for callers supplying homepage feature data.
type FeatureItem = core.FeatureItem

type App struct {
	mode     core.Mode
	content  iofs.FS
	dist     iofs.FS
	manifest *core.Manifest
	features []FeatureItem
	logger   *slog.Logger
	pages    http.Handler
	assets   http.Handler
}

type Option func(*App)

// WithDist supplies the built output tree. Required in prod mode.
func WithDist(dist iofs.FS) Option {
	return func(a *App) { a.dist = dist }
}

// WithFeatures supplies the homepage feature grid data.
func WithFeatures(items []FeatureItem) Option {
	return func(a *App) { a.features = items }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// New assembles the site app. Mode is read from the environment
// (DOCSITE_DEV=1 for dev).
func New(content iofs.FS, opts ...Option) (*App, error) {
	app := &App{
		mode:    env.DetectMode(),
		content: content,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.logger == nil {
		app.logger = slog.Default()
	}

	if app.mode == core.ModeProd {
		if app.dist == nil {
			return nil, ErrDistRequiredInProd
		}

		data, err := iofs.ReadFile(app.dist, "manifest.json")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrManifestMissing, err)
		}
		manifest, err := core.ParseManifest(data)
		if err != nil {
			return nil, fmt.Errorf("docsite: parse manifest: %w", err)
		}
		app.manifest = manifest
	}

	service := usecase.NewPageService(content, markdown.NewRenderer(), app.features, app.logger)
	app.pages = httpadapter.NewPageHandler(service, app.mode, app.manifest, app.dist)

	if app.mode == core.ModeDev {
		app.assets = httpadapter.NewAssetHandler(app.content, true)
	} else {
		app.assets = httpadapter.NewAssetHandler(app.dist, false)
	}

	app.logger.Info("docsite app ready", "mode", app.mode.String())

	return app, nil
}

// Wrap mounts the site's pages onto an existing router and intercepts the
// static asset prefixes, letting callers keep their own API routes on the
// same server.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("docsite: nil router passed to Wrap; use app.Handler()")
	}

	api.Handle("/", a.pages)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if isAssetPath(req.URL.Path) {
			a.assets.ServeHTTP(w, req)
			return
		}
		api.ServeHTTP(w, req)
	})
}

func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func isAssetPath(p string) bool {
	return strings.HasPrefix(p, "/img/") || strings.HasPrefix(p, "/css/")
}
