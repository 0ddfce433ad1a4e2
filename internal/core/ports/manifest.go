package ports

import "go.trai.ch/crucible/internal/core/domain"

// ManifestLoader loads a benchmark suite manifest and derives one build
// request per declared case.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest file called name from dir, falling back to
	// the implementation default when name is empty. Suite-wide defaults
	// are already applied to the returned requests.
	Load(dir, name string) ([]domain.BuildRequest, error)
}
