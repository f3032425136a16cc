package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/willyhardian/expressjstutorial/internal/core"
)

// Docs without an explicit sidebar_position sink to the bottom of the
// sidebar instead of shuffling positioned entries.
const defaultPosition = 999

// Renderer converts markdown tutorial sources into DocPages. It is safe for
// concurrent use; goldmark keeps per-conversion state in the parser context.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				meta.Meta,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// RenderDoc converts one markdown source into a DocPage. The front matter
// must carry a title; slug and sidebar_position are optional.
func (r *Renderer) RenderDoc(sourcePath string, src []byte) (core.DocPage, error) {
	ctx := parser.NewContext()

	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return core.DocPage{}, fmt.Errorf("convert %s: %w", sourcePath, err)
	}

	fields := meta.Get(ctx)

	title := metaString(fields, "title")
	if title == "" {
		return core.DocPage{}, fmt.Errorf("%s: front matter is missing a title", sourcePath)
	}

	slug := metaString(fields, "slug")
	if slug == "" {
		slug = core.SlugForSource(sourcePath)
	}

	return core.DocPage{
		Slug:        slug,
		Title:       title,
		Description: metaString(fields, "description"),
		Position:    metaInt(fields, "sidebar_position", defaultPosition),
		Body:        template.HTML(buf.String()),
		SourcePath:  sourcePath,
	}, nil
}

func metaString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func metaInt(fields map[string]interface{}, key string, fallback int) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
