package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/checker/internal/core/ports"
)

const NodeID graft.ID = "adapter.schedule_loader"

func init() {
	graft.Register(graft.Node[ports.ScheduleLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ScheduleLoader, error) {
			return NewLoader(), nil
		},
	})
}
