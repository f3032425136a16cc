package core

import "html/template"

// DocPage is one rendered tutorial document.
type DocPage struct {
	Slug        string
	Title       string
	Description string
	Position    int
	Body        template.HTML
	SourcePath  string
}

// DocRoute is the canonical route for a document slug.
func DocRoute(slug string) string {
	return "/docs/" + slug
}
