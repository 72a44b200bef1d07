package ports

import (
	"context"

	"github.com/seimoney/seimoney-go/core"
)

// Backend is the slice of the REST API the auth orchestrator depends on.
type Backend interface {
	// Authorize exchanges a signed authorization for the account record and
	// its bearer token. A nil result means the backend rejected the request
	// without a transport failure.
	Authorize(ctx context.Context, auth core.Authorization) (*core.TokenAccount, error)

	// CreateAccount registers a new account. A nil result means creation
	// was rejected.
	CreateAccount(ctx context.Context, params core.CreateAccount) (*core.Account, error)

	// SetToken updates the bearer header for all subsequent requests, on
	// both the plain and the payment-capable client modes.
	SetToken(token string)
}
