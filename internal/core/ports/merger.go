package ports

import "go.trai.ch/crucible/internal/core/domain"

// SettingsMerger extracts the inheritable settings and the governing SDK
// from a host descriptor and everything it transitively imports.
//
//go:generate mockgen -source=merger.go -destination=mocks/mock_merger.go -package=mocks
type SettingsMerger interface {
	// Merge walks the descriptor at hostPath for the given request and
	// returns the merged result. hostPath must point at an existing file.
	Merge(request domain.BuildRequest, hostPath string) (domain.MergedSettings, error)
}
