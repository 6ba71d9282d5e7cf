package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/checker/internal/core/ports"
)

const NodeID graft.ID = "adapter.scan"

func init() {
	graft.Register(graft.Node[ports.TreeScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TreeScanner, error) {
			return NewScanner(), nil
		},
	})
}
