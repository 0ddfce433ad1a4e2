// Package generator implements the descriptor generation pipeline: locate
// the host descriptor, merge its inheritable settings, render the template
// and write the result into an isolated artifacts directory.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes one synthesized descriptor.
type Result struct {
	CaseID  string
	Paths   domain.ArtifactPaths
	SdkName string
}

// Generator synthesizes one isolated build descriptor per request.
type Generator struct {
	locator   ports.Locator
	merger    ports.SettingsMerger
	templates ports.TemplateStore
	resolver  ports.CharacteristicResolver
}

// NewGenerator creates a new Generator.
func NewGenerator(
	locator ports.Locator,
	merger ports.SettingsMerger,
	templates ports.TemplateStore,
	resolver ports.CharacteristicResolver,
) *Generator {
	return &Generator{
		locator:   locator,
		merger:    merger,
		templates: templates,
		resolver:  resolver,
	}
}

// Generate runs the full pipeline for one request.
func (g *Generator) Generate(ctx context.Context, request domain.BuildRequest) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	hostPath, err := g.locator.Locate(request)
	if err != nil {
		return Result{}, err
	}
	// The rendered descriptor references the host project; an absolute path
	// keeps the reference valid regardless of where the build later runs.
	hostPath, err = filepath.Abs(hostPath)
	if err != nil {
		return Result{}, zerr.Wrap(err, "failed to resolve host descriptor path")
	}

	merged, err := g.merger.Merge(request, hostPath)
	if err != nil {
		return Result{}, err
	}

	programName := request.ProgramName
	if programName == "" {
		programName = deriveProgramName(request)
	}
	paths := domain.NewArtifactPaths(request, programName)

	text, err := g.templates.Load(ports.TemplateCsProj)
	if err != nil {
		return Result{}, err
	}

	content := render(text, substitutions{
		Platform:        string(request.Platform),
		CodeFileName:    filepath.Base(paths.ProgramCodePath),
		HostProjectPath: hostPath,
		Moniker:         string(request.Moniker),
		ProgramName:     programName,
		RuntimeSettings: runtimeProperties(request.GC, g.resolver),
		CopiedSettings:  merged.Settings,
		Configuration:   request.Configuration,
		SdkName:         merged.SdkName,
	})

	if err := g.write(paths, request.SourceCode, content); err != nil {
		return Result{}, err
	}

	if vertex, ok := ports.VertexFromContext(ctx); ok {
		_, _ = fmt.Fprintf(vertex.Stdout(), "descriptor written to %s\n", paths.ProjectFilePath)
	}

	return Result{CaseID: request.CaseID, Paths: paths, SdkName: merged.SdkName}, nil
}

// write persists the artifacts world-readable so the build toolchain that
// later consumes the descriptor can run under a different user.
func (g *Generator) write(paths domain.ArtifactPaths, sourceCode, descriptor string) error {
	if err := os.MkdirAll(paths.ArtifactsDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifacts directory"), "path", paths.ArtifactsDir)
	}
	if sourceCode != "" {
		//nolint:gosec // Path is derived from the request and rooted in the artifacts directory
		if err := os.WriteFile(paths.ProgramCodePath, []byte(sourceCode), 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write program source"), "path", paths.ProgramCodePath)
		}
	}
	//nolint:gosec // Path is derived from the request and rooted in the artifacts directory
	if err := os.WriteFile(paths.ProjectFilePath, []byte(descriptor), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write descriptor"), "path", paths.ProjectFilePath)
	}
	return nil
}
