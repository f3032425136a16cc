package core

import (
	"bytes"
	"fmt"
	"html/template"
)

// StylesheetHref is where the build pipeline places the site stylesheet.
const StylesheetHref = "/css/main.css"

// ShellData is everything the page shell template needs to wrap a rendered
// body into a complete document.
type ShellData struct {
	Site        *SiteConfig
	Title       string
	Description string
	Body        template.HTML
	Sidebar     []SidebarItem
	Pagination  *Pagination
	CSSHref     string
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{ if .Title }}{{ .Title }} | {{ end }}{{ .Site.Title }}</title>
{{- if .Description }}
    <meta name="description" content="{{ .Description }}" />
{{- end }}
{{- if .CSSHref }}
    <link rel="stylesheet" href="{{ .CSSHref }}" />
{{- end }}
  </head>
  <body>
    <nav class="navbar">
      <a class="navbar__brand" href="{{ .Site.BaseURL }}">{{ .Site.Title }}</a>
      <div class="navbar__items">
{{- range .Site.Navbar }}
        <a class="navbar__link" href="{{ .To }}">{{ .Label }}</a>
{{- end }}
      </div>
    </nav>
{{- if .Sidebar }}
    <div class="docs-layout">
      <aside class="sidebar">
        <ul class="sidebar__menu">
{{- range .Sidebar }}
          <li><a{{ if .Active }} class="sidebar__link--active"{{ end }} href="{{ .Route }}">{{ .Title }}</a></li>
{{- end }}
        </ul>
      </aside>
      <main class="doc-content">
{{ .Body }}
{{- if .Pagination }}
        <nav class="pagination">
{{- with .Pagination.Prev }}
          <a class="pagination__prev" href="{{ .Route }}">&laquo; {{ .Title }}</a>
{{- end }}
{{- with .Pagination.Next }}
          <a class="pagination__next" href="{{ .Route }}">{{ .Title }} &raquo;</a>
{{- end }}
        </nav>
{{- end }}
      </main>
    </div>
{{- else }}
    <main>
{{ .Body }}
    </main>
{{- end }}
    <footer class="footer">
      <div class="footer__links">
{{- range .Site.Footer }}
        <a href="{{ .To }}">{{ .Label }}</a>
{{- end }}
      </div>
      <div class="footer__copyright">{{ .Site.Organization }}</div>
    </footer>
  </body>
</html>
`))

// RenderPageShell wraps a body fragment in the full document chrome.
func RenderPageShell(data ShellData) (string, error) {
	if data.Site == nil {
		return "", fmt.Errorf("missing site config")
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var heroTemplate = template.Must(template.New("hero").Parse(`<header class="hero">
  <div class="container">
    <h1 class="hero__title">{{ .Title }}</h1>
    <p class="hero__subtitle">{{ .Tagline }}</p>
    <div class="hero__buttons">
      <a class="button button--lg" href="/docs/intro">Start the Tutorial</a>
    </div>
  </div>
</header>
`))

// RenderHomeBody composes the homepage: hero banner followed by the feature
// grid.
func RenderHomeBody(site *SiteConfig, features []FeatureItem) (string, error) {
	if site == nil {
		return "", fmt.Errorf("missing site config")
	}

	var buf bytes.Buffer
	if err := heroTemplate.Execute(&buf, site); err != nil {
		return "", err
	}

	grid, err := RenderFeatures(features)
	if err != nil {
		return "", err
	}
	buf.WriteString(grid)

	return buf.String(), nil
}
