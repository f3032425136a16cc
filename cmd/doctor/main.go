package main

import (
	"os"

	"github.com/willyhardian/expressjstutorial/internal/adapters/cli"
	"github.com/willyhardian/expressjstutorial/internal/initcmd"
)

func main() {
	output := cli.NewOutput()

	projectDir := "."
	if len(os.Args) > 1 {
		projectDir = os.Args[1]
	}

	if err := initcmd.Repair(projectDir, output); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
