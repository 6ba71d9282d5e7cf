package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/checker/internal/core/ports"
)

const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.VCSFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VCSFactory, error) {
			return NewFactory(), nil
		},
	})
}
