package usecase

import (
	"github.com/willyhardian/expressjstutorial/internal/adapters/fs"
	"github.com/willyhardian/expressjstutorial/internal/core"
)

type DocRenderer interface {
	RenderDoc(sourcePath string, src []byte) (core.DocPage, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
