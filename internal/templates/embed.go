package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed all:classic
var classicFS embed.FS

var validTemplates = []string{"classic"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "classic":
		return fs.Sub(classicFS, "classic")
	default:
		return nil, ErrInvalidTemplate
	}
}

func ValidTemplates() []string {
	return validTemplates
}

type TemplateData struct {
	Project string
}

// ProcessFilename strips the .tmpl suffix from files that need
// substitution and reports whether the file was a template.
func ProcessFilename(filename string, data TemplateData) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Project}}", data.Project)

	return []byte(result)
}

func DeriveProjectName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "my-docs"
	}
	return base
}
