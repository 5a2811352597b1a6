package integrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcsync/internal/adapters/filelist" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcsync/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcsync/internal/core/ports"
)

// NodeID is the unique identifier for the integrator Graft node.
const NodeID graft.ID = "engine.integrator"

func init() {
	graft.Register(graft.Node[*Integrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			filelist.NodeID,
		},
		Run: func(ctx context.Context) (*Integrator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.FileListWriter](ctx)
			if err != nil {
				return nil, err
			}

			// Build-setting integration is performed by the surrounding
			// installer, so the reconciler runs without a settings hook.
			return New(log, files, nil), nil
		},
	})
}
