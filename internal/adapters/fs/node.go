package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	ResolverNodeID   graft.ID = "adapter.fs.resolver"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Resolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, ResolverNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*Resolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSystem(walker, resolver), nil
		},
	})
}
