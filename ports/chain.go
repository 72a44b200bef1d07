package ports

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Custody reads the custodial account registry contract.
type Custody interface {
	// Account returns the custodial account for an owner. The zero address
	// means no account exists.
	Account(ctx context.Context, owner common.Address) (common.Address, error)
}

// Savings binds the savings contract wrapper to a custodial account.
type Savings interface {
	Bind(address common.Address)
}
