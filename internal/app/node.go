package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/checker/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/checker/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/checker/internal/adapters/scan"   //nolint:depguard // Wired in app layer
	"go.trai.ch/checker/internal/adapters/vcs"    //nolint:depguard // Wired in app layer
	"go.trai.ch/checker/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scan.NodeID,
			vcs.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ScheduleLoader](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.TreeScanner](ctx)
			if err != nil {
				return nil, err
			}
			vcsFactory, err := graft.Dep[ports.VCSFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, scanner, vcsFactory, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
