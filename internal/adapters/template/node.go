package template

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.template_store"

func init() {
	graft.Register(graft.Node[ports.TemplateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TemplateStore, error) {
			return NewStore(), nil
		},
	})
}
