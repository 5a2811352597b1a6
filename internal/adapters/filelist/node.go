package filelist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcsync/internal/core/ports"
)

// NodeID is the unique identifier for this adapter's Graft node.
const NodeID graft.ID = "adapter.filelist_writer"

func init() {
	graft.Register(graft.Node[ports.FileListWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileListWriter, error) {
			return NewWriter(), nil
		},
	})
}
