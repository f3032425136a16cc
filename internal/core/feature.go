package core

import (
	"bytes"
	"fmt"
	"html/template"
)

// FeatureItem is one card in the homepage feature grid. Description is
// trusted HTML authored alongside the site content; it is rendered into the
// card unmodified.
type FeatureItem struct {
	Title       string
	Icon        string
	Description template.HTML
}

var featuresTemplate = template.Must(template.New("features").Parse(`<section class="features">
  <div class="container">
    <div class="row">
{{- range . }}
      <div class="col col--4">
        <div class="feature-card">
          <img class="feature-icon" src="{{ .Icon }}" alt="{{ .Title }}" role="img" />
          <h3>{{ .Title }}</h3>
          <p>{{ .Description }}</p>
        </div>
      </div>
{{- end }}
    </div>
  </div>
</section>
`))

// RenderFeatures renders the feature grid. Items appear in input order,
// one card each; an empty slice yields the grid chrome with no cards.
func RenderFeatures(items []FeatureItem) (string, error) {
	var buf bytes.Buffer
	if err := featuresTemplate.Execute(&buf, items); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateFeatures checks that every item can produce a complete card.
// An empty slice is valid.
func ValidateFeatures(items []FeatureItem) error {
	for i, item := range items {
		if item.Title == "" {
			return fmt.Errorf("feature %d: title is required", i)
		}
		if item.Icon == "" {
			return fmt.Errorf("feature %q: icon is required", item.Title)
		}
	}
	return nil
}
