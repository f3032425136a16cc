// Package content carries the site itself: the tutorial markdown, the
// site configuration, and the static assets referenced by the pages.
package content

import "embed"

//go:embed all:docs all:static site.yaml
var FS embed.FS
