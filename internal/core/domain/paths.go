package domain

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// GeneratedDescriptorName is the file name of every synthesized build
	// descriptor.
	GeneratedDescriptorName = "Crucible.Autogenerated.csproj"

	// GeneratedSourceExtension is the extension given to the generated
	// program source. It is deliberately not a compilable extension so the
	// host project never globs the file into its own compilation; the
	// synthesized descriptor includes it explicitly.
	GeneratedSourceExtension = ".notcs"

	// fallbackArtifactsDir anchors artifact paths when the suite assembly
	// has no on-disk location.
	fallbackArtifactsDir = "crucible-artifacts"
)

// ArtifactPaths collects every path one generated program's build touches.
// All members derive from the artifacts directory and the program name.
type ArtifactPaths struct {
	// ArtifactsDir is the per-program root directory.
	ArtifactsDir string

	// ProjectFilePath is where the synthesized descriptor is written.
	ProjectFilePath string

	// ProgramCodePath is where the generated program source is written.
	ProgramCodePath string

	// BinariesDir is where the toolchain places compiled output.
	BinariesDir string

	// IntermediateDir is where the toolchain places intermediate output.
	IntermediateDir string

	// ExecutablePath is the expected location of the built program.
	ExecutablePath string

	// ProgramName is the stem shared by the source file and the executable.
	ProgramName string
}

// NewArtifactPaths computes the path set for a request. The layout follows
// the toolchain conventions: binaries under bin/<configuration>/<moniker>
// and intermediates under obj/<configuration>/<moniker>, both inside a
// directory named after the program.
func NewArtifactPaths(request BuildRequest, programName string) ArtifactPaths {
	artifacts := filepath.Join(artifactsRoot(request), programName)
	binaries := filepath.Join(artifacts, "bin", request.Configuration, string(request.Moniker))
	return ArtifactPaths{
		ArtifactsDir:    artifacts,
		ProjectFilePath: filepath.Join(artifacts, GeneratedDescriptorName),
		ProgramCodePath: filepath.Join(artifacts, programName+GeneratedSourceExtension),
		BinariesDir:     binaries,
		IntermediateDir: filepath.Join(artifacts, "obj", request.Configuration, string(request.Moniker)),
		ExecutablePath:  filepath.Join(binaries, programName+executableExtension()),
		ProgramName:     programName,
	}
}

func artifactsRoot(request BuildRequest) string {
	if request.AssemblyPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		return filepath.Join(cwd, fallbackArtifactsDir)
	}
	return filepath.Dir(request.AssemblyPath)
}

func executableExtension() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
