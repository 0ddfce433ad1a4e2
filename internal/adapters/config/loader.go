// Package config provides the suite manifest loader for crucible.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the manifest file name looked up in the suite
// directory.
const DefaultManifestName = "crucible.yaml"

// Defaults applied when neither the case nor the suite sets a value.
const (
	defaultConfiguration = "Release"
	defaultPlatform      = string(domain.PlatformAnyCPU)
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Filename string
}

var _ ports.ManifestLoader = (*Loader)(nil)

// NewLoader creates a Loader reading the default manifest name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultManifestName}
}

// Load reads the manifest from the given directory and returns one build
// request per declared case, with suite-wide defaults already applied. An
// empty name selects the loader's default file name.
func (l *Loader) Load(dir, name string) ([]domain.BuildRequest, error) {
	if name == "" {
		name = l.Filename
	}
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read suite manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse suite manifest")
	}

	return buildRequests(manifest)
}

func buildRequests(manifest Manifest) ([]domain.BuildRequest, error) {
	if len(manifest.Cases) == 0 {
		return nil, domain.ErrNoRequests
	}

	requests := make([]domain.BuildRequest, 0, len(manifest.Cases))
	seen := make(map[string]bool, len(manifest.Cases))

	for _, dto := range manifest.Cases {
		if dto.ID == "" {
			return nil, zerr.New("benchmark case is missing an id")
		}
		if seen[dto.ID] {
			return nil, zerr.With(domain.ErrDuplicateCase, "case_id", dto.ID)
		}
		seen[dto.ID] = true

		request := domain.BuildRequest{
			CaseID:                  dto.ID,
			SuiteAssembly:           fallback(dto.SuiteAssembly, manifest.Defaults.SuiteAssembly),
			AssemblyPath:            fallback(dto.AssemblyPath, manifest.Defaults.AssemblyPath),
			Moniker:                 domain.Moniker(fallback(dto.Moniker, manifest.Defaults.Moniker)),
			Platform:                domain.Platform(fallback(dto.Platform, manifest.Defaults.Platform, defaultPlatform)),
			Configuration:           fallback(dto.Configuration, manifest.Defaults.Configuration, defaultConfiguration),
			RuntimeFrameworkVersion: dto.RuntimeFrameworkVersion,
			ProgramName:             dto.ProgramName,
			GC: domain.GCMode{
				Server:     dto.GC.Server,
				Concurrent: dto.GC.Concurrent,
				RetainVM:   dto.GC.RetainVM,
			},
		}

		if request.Moniker == "" {
			return nil, zerr.With(zerr.New("benchmark case has no target moniker"), "case_id", dto.ID)
		}
		if request.SuiteAssembly == "" {
			return nil, zerr.With(zerr.New("benchmark case has no suite assembly"), "case_id", dto.ID)
		}

		requests = append(requests, request)
	}

	return requests, nil
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
