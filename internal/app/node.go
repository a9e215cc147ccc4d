package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depsnap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depsnap/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/depsnap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/depsnap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			service, err := graft.Dep[*manifest.Service](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(service, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			manifest.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	service, err := graft.Dep[*manifest.Service](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     application,
		Logger:  log,
		Service: service,
	}, nil
}
