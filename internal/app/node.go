package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcsync/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xcsync/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xcsync/internal/adapters/project"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xcsync/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/xcsync/internal/core/ports"
	"go.trai.ch/xcsync/internal/engine/integrator"
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
			project.NodeID,
			manifest.NodeID,
			integrator.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[ports.ProjectStore](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			in, err := graft.Dep[*integrator.Integrator](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, loader, in, tel), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
