package manifest

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/depsnap/internal/adapters/logger"
	"go.trai.ch/depsnap/internal/core/ports"
)

// NodeID is the unique identifier for the manifest service Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Service, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			path, err := Discover(cwd)
			if err != nil {
				return nil, err
			}
			return NewService(path, log), nil
		},
	})
}
