package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/core/ports"
)

const NodeID graft.ID = "adapter.build_record_store"

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRecordStore, error) {
			return NewStore(), nil
		},
	})
}
