package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CustodyGateway wraps the custodial account registry contract.
type CustodyGateway struct {
	backend  Backend
	opts     *bind.TransactOpts
	contract *bind.BoundContract
}

// NewCustodyGateway creates a gateway bound to the registry address
func NewCustodyGateway(backend Backend, opts *bind.TransactOpts, address common.Address) *CustodyGateway {
	return &CustodyGateway{
		backend:  backend,
		opts:     opts,
		contract: bind.NewBoundContract(address, custodyABI, backend, backend, backend),
	}
}

// CreateAccount deploys a custodial account for the transacting wallet and
// waits for the receipt.
func (g *CustodyGateway) CreateAccount(ctx context.Context) (common.Hash, error) {
	return transactAndWait(ctx, g.backend, g.contract, g.opts, "createAccount")
}

// Account returns the custodial account for an owner. The zero address
// means none exists yet.
func (g *CustodyGateway) Account(ctx context.Context, owner common.Address) (common.Address, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getAccount", owner); err != nil {
		return common.Address{}, fmt.Errorf("getAccount call failed: %w", err)
	}

	return out[0].(common.Address), nil
}

// TotalAccounts returns how many custodial accounts exist.
func (g *CustodyGateway) TotalAccounts(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "totalAccounts"); err != nil {
		return nil, fmt.Errorf("totalAccounts call failed: %w", err)
	}

	return out[0].(*big.Int), nil
}
