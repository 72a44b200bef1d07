package ports

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// EventPublisher publishes auth lifecycle events to notify other instances
type EventPublisher interface {
	PublishLogin(ctx context.Context, owner common.Address) error
	PublishLogout(ctx context.Context, owner common.Address) error
}
