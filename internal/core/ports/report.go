package ports

import "go.trai.ch/crucible/internal/core/domain"

// ReportSink collects generation records during a run and persists them as
// one report when the run finishes.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportSink interface {
	// Put records one generated descriptor. Safe for concurrent use.
	Put(record domain.GenerationRecord)

	// Flush persists everything recorded so far to path, falling back to
	// the implementation default when path is empty.
	Flush(path string) error
}
