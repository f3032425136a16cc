package main

import (
	"context"
	iofs "io/fs"
	"os"

	"github.com/willyhardian/expressjstutorial/content"
	"github.com/willyhardian/expressjstutorial/internal/adapters/cli"
	"github.com/willyhardian/expressjstutorial/internal/adapters/env"
	"github.com/willyhardian/expressjstutorial/internal/adapters/fs"
	"github.com/willyhardian/expressjstutorial/internal/core"
	"github.com/willyhardian/expressjstutorial/internal/markdown"
	"github.com/willyhardian/expressjstutorial/internal/usecase"
)

func main() {
	output := cli.NewOutput()

	cfg, err := env.Load()
	if err != nil {
		output.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Default to the embedded tutorial; DOCSITE_CONTENT_DIR builds an
	// external project instead (which carries no feature grid data).
	var contentFS iofs.FS = content.FS
	var features []core.FeatureItem = content.Features
	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
		features = nil
	}

	buildService := usecase.NewBuildService(markdown.NewRenderer(), fs.NewOSFileSystem(), output)

	result := buildService.BuildSite(context.Background(), usecase.BuildInput{
		Content:  contentFS,
		Features: features,
		OutDir:   cfg.OutDir,
	})

	if result.Error != nil {
		output.PrintError("%v", result.Error)
		os.Exit(1)
	}
	if !result.Success {
		os.Exit(1)
	}

	output.PrintDone("Build completed successfully")
}
