package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/willyhardian/expressjstutorial/internal/adapters/cli"
	"github.com/willyhardian/expressjstutorial/internal/templates"
)

// Run scaffolds a new docs project from an embedded template. The target
// directory must not exist or must be empty.
func Run(projectDir string, templateName string, out *cli.Output) error {
	out.PrintHeader("Docsite Init")

	if _, err := os.Stat(projectDir); err == nil {
		entries, err := os.ReadDir(projectDir)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("directory '%s' already exists and is not empty", projectDir)
		}
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return fmt.Errorf("invalid template '%s' (valid: %v)", templateName, templates.ValidTemplates())
		}
		return err
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data := templates.TemplateData{
		Project: templates.DeriveProjectName(projectDir),
	}

	createdCount := 0

	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			targetDir := filepath.Join(projectDir, path)
			if err := os.MkdirAll(targetDir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", targetDir, err)
			}
			return nil
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path, data)
		targetPath = filepath.Join(projectDir, targetPath)

		processedContent := templates.ProcessContent(content, isTemplate, data)

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(targetPath), err)
		}

		if err := os.WriteFile(targetPath, processedContent, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			out.PrintFile(targetPath + " (generated)")
		} else {
			out.PrintFile(targetPath)
		}
		createdCount++

		return nil
	})

	if err != nil {
		return err
	}

	if err := EnsureLayout(projectDir, out); err != nil {
		return err
	}

	out.PrintDone(fmt.Sprintf("Created %d files using '%s' template", createdCount, templateName))

	fmt.Println()
	out.PrintStep("Next steps:")
	fmt.Println()
	fmt.Printf("  export DOCSITE_CONTENT_DIR=%s\n", projectDir)
	fmt.Printf("  DOCSITE_DEV=1 docsite-serve\n")
	fmt.Println()

	return nil
}

// Repair re-creates any missing pieces of the expected content layout.
func Repair(projectDir string, out *cli.Output) error {
	out.PrintHeader("Docsite Doctor")

	if err := EnsureLayout(projectDir, out); err != nil {
		return err
	}

	out.PrintDone("Repair complete!")

	return nil
}

// EnsureLayout makes sure the directories the build expects exist.
func EnsureLayout(projectDir string, out *cli.Output) error {
	for _, dir := range []string{"docs", "static/css", "static/img"} {
		full := filepath.Join(projectDir, dir)
		if _, err := os.Stat(full); err == nil {
			continue
		}
		if err := os.MkdirAll(full, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", full, err)
		}
		out.PrintSuccess("Created %s", full)
	}

	sitePath := filepath.Join(projectDir, "site.yaml")
	if _, err := os.Stat(sitePath); os.IsNotExist(err) {
		out.PrintWarning("Missing %s; the build will fail until it exists", sitePath)
	}

	return nil
}
