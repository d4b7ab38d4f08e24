package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/freshness/internal/adapters/config"
	"go.trai.ch/freshness/internal/adapters/logger"
	"go.trai.ch/freshness/internal/adapters/shell"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
)

// NodeID is the unique identifier for the nix client Graft node.
const NodeID graft.ID = "adapter.nix_client"

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Client, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(runner, log, settings), nil
		},
	})
}
