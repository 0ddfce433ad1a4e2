package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/adapters/locator"
	"go.trai.ch/crucible/internal/adapters/logger"
	"go.trai.ch/crucible/internal/adapters/msbuild"
	"go.trai.ch/crucible/internal/adapters/report"
	"go.trai.ch/crucible/internal/adapters/telemetry/progrock"
	"go.trai.ch/crucible/internal/adapters/template"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

const (
	// GeneratorNodeID is the unique identifier for the generator Graft node.
	GeneratorNodeID graft.ID = "engine.generator"
	// BatchNodeID is the unique identifier for the batch Graft node.
	BatchNodeID graft.ID = "engine.generator.batch"
)

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        GeneratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locator.NodeID,
			msbuild.NodeID,
			template.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			merger, err := graft.Dep[ports.SettingsMerger](ctx)
			if err != nil {
				return nil, err
			}

			templates, err := graft.Dep[ports.TemplateStore](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(loc, merger, templates, domain.DefaultResolver{}), nil
		},
	})

	graft.Register(graft.Node[*Batch]{
		ID:        BatchNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			GeneratorNodeID,
			report.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Batch, error) {
			gen, err := graft.Dep[*Generator](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.ReportSink](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBatch(gen, sink, telemetry, log), nil
		},
	})
}
