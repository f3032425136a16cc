package main

import (
	"os"

	"github.com/willyhardian/expressjstutorial/internal/adapters/cli"
	"github.com/willyhardian/expressjstutorial/internal/initcmd"
)

func main() {
	output := cli.NewOutput()

	if len(os.Args) < 2 {
		output.PrintHeader("Docsite Init")
		output.PrintError("Missing project directory argument")
		output.PrintStep("Usage: docsite-init <dir> [template]")
		output.PrintStep("Example: docsite-init my-docs classic")
		os.Exit(1)
	}

	projectDir := os.Args[1]

	templateName := "classic"
	if len(os.Args) > 2 {
		templateName = os.Args[2]
	}

	if err := initcmd.Run(projectDir, templateName, output); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
