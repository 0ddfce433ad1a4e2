package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Locator, error) {
			// Most specific guess first, broad ancestor search second.
			return NewComposite(SuiteDirectoryLocator{}, AncestorLocator{}), nil
		},
	})
}
