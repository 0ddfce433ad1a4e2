package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_sink"

func init() {
	graft.Register(graft.Node[ports.ReportSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportSink, error) {
			return NewStore(DefaultReportName), nil
		},
	})
}
