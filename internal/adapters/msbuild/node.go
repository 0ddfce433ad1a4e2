package msbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.settings_merger"

func init() {
	graft.Register(graft.Node[ports.SettingsMerger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsMerger, error) {
			return NewMerger(), nil
		},
	})
}
