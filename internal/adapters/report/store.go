// Package report persists the generation report of a run as a flat JSON
// file.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultReportName is the report file written into the working directory.
const DefaultReportName = "crucible-report.json"

// Store implements ports.ReportSink using a flat JSON file. Records are
// collected in memory and written once on Flush.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.GenerationRecord
}

var _ ports.ReportSink = (*Store)(nil)

// NewStore creates a new ReportSink backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path:    filepath.Clean(path),
		records: make(map[string]domain.GenerationRecord),
	}
}

// Put records one generated descriptor. The last record per case wins.
func (s *Store) Put(record domain.GenerationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.CaseID] = record
}

// Flush writes every record, sorted by case id, to path. An empty path
// falls back to the path the store was created with.
func (s *Store) Flush(path string) error {
	if path == "" {
		path = s.path
	} else {
		path = filepath.Clean(path)
	}

	s.mu.RLock()
	records := make([]domain.GenerationRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].CaseID < records[j].CaseID
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal generation report")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for generation report")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write generation report")
	}

	return nil
}
