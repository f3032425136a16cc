package core

import "strings"

type PageAction int

const (
	ActionServeBuiltFile PageAction = iota
	ActionRenderHome
	ActionRenderDoc
	ActionNotFound
)

type PageRequest struct {
	Mode        Mode
	RequestPath string
}

type PageDecision struct {
	Action   PageAction
	FilePath string
	Slug     string
}

// DecidePageAction picks how a request is answered. Production serves the
// built tree through the manifest; dev renders from source on every hit so
// content edits show up without a rebuild.
func DecidePageAction(req PageRequest, man *Manifest) PageDecision {
	path := NormalizePath(req.RequestPath)

	if req.Mode == ModeProd {
		if entry, ok := LookupRoute(man, path); ok {
			return PageDecision{Action: ActionServeBuiltFile, FilePath: entry.File}
		}
		return PageDecision{Action: ActionNotFound}
	}

	if path == "/" {
		return PageDecision{Action: ActionRenderHome}
	}

	if slug, ok := strings.CutPrefix(path, "/docs/"); ok && slug != "" && !strings.Contains(slug, "/") {
		return PageDecision{Action: ActionRenderDoc, Slug: slug}
	}

	return PageDecision{Action: ActionNotFound}
}
