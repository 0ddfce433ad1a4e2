package generator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Batch fans independent requests out to parallel generation. Requests never
// share state, each owns its artifacts directory, so the only shared sink is
// the report.
type Batch struct {
	generator   *Generator
	report      ports.ReportSink
	telemetry   ports.Telemetry
	log         ports.Logger
	parallelism int
	reportPath  string
}

// NewBatch creates a new Batch running up to NumCPU generations at once.
func NewBatch(g *Generator, report ports.ReportSink, telemetry ports.Telemetry, log ports.Logger) *Batch {
	return &Batch{
		generator:   g,
		report:      report,
		telemetry:   telemetry,
		log:         log,
		parallelism: runtime.NumCPU(),
	}
}

// SetParallelism bounds the number of concurrently generated descriptors.
// Values below one are ignored.
func (b *Batch) SetParallelism(n int) {
	if n > 0 {
		b.parallelism = n
	}
}

// SetReportPath redirects the generation report. An empty path keeps the
// sink's default destination.
func (b *Batch) SetReportPath(path string) {
	b.reportPath = path
}

// GenerateAll synthesizes a descriptor for every request. The first failure
// cancels the remaining work; records of descriptors generated before the
// failure are still flushed to the report.
func (b *Batch) GenerateAll(ctx context.Context, requests []domain.BuildRequest) error {
	if len(requests) == 0 {
		return domain.ErrNoRequests
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)

	for _, request := range requests {
		request := request // capture loop var
		g.Go(func() error {
			vctx, vertex := b.telemetry.Record(ctx, request.CaseID)

			result, err := b.generator.Generate(vctx, request)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to generate descriptor"), "case", request.CaseID)
			}

			b.report.Put(domain.GenerationRecord{
				CaseID:      result.CaseID,
				ProgramName: result.Paths.ProgramName,
				ProjectFile: result.Paths.ProjectFilePath,
				SdkName:     result.SdkName,
				GeneratedAt: time.Now().UTC(),
			})
			return nil
		})
	}

	genErr := g.Wait()

	if err := b.report.Flush(b.reportPath); err != nil {
		if genErr != nil {
			return genErr
		}
		return err
	}
	if genErr != nil {
		return genErr
	}

	b.log.Info(fmt.Sprintf("generated %d descriptors", len(requests)))
	return nil
}
