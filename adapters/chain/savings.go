package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
)

// SavingsGateway wraps the savings/strategy contract. Its address is the
// caller's custodial account, which only becomes known after login, so the
// gateway starts unbound and is bound explicitly.
type SavingsGateway struct {
	backend Backend
	opts    *bind.TransactOpts

	mu      sync.RWMutex
	address common.Address
}

// NewSavingsGateway creates an unbound savings gateway
func NewSavingsGateway(backend Backend, opts *bind.TransactOpts) *SavingsGateway {
	return &SavingsGateway{backend: backend, opts: opts}
}

// Bind points the gateway at a custodial account. The zero address unbinds.
func (g *SavingsGateway) Bind(address common.Address) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.address = address
}

// Bound returns the bound custodial account, if any.
func (g *SavingsGateway) Bound() (common.Address, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.address, g.address != (common.Address{})
}

func (g *SavingsGateway) bound() (*bind.BoundContract, error) {
	address, ok := g.Bound()
	if !ok {
		return nil, core.ErrNoLinkedAccount
	}

	return bind.NewBoundContract(address, savingsABI, g.backend, g.backend, g.backend), nil
}

// Earn starts accruing yield on the token's idle balance.
func (g *SavingsGateway) Earn(ctx context.Context, token common.Address) (common.Hash, error) {
	contract, err := g.bound()
	if err != nil {
		return common.Hash{}, err
	}

	return transactAndWait(ctx, g.backend, contract, g.opts, "earn", token)
}

// UseStrategy delegates the token's balance to a yield strategy.
func (g *SavingsGateway) UseStrategy(ctx context.Context, token, strategy common.Address) (common.Hash, error) {
	contract, err := g.bound()
	if err != nil {
		return common.Hash{}, err
	}

	return transactAndWait(ctx, g.backend, contract, g.opts, "useStrategy", token, strategy)
}

// ExitStrategy withdraws the token's balance from its active strategy.
func (g *SavingsGateway) ExitStrategy(ctx context.Context, token common.Address) (common.Hash, error) {
	contract, err := g.bound()
	if err != nil {
		return common.Hash{}, err
	}

	return transactAndWait(ctx, g.backend, contract, g.opts, "exitStrategy", token)
}

// Withdraw moves tokens out of the custodial account.
func (g *SavingsGateway) Withdraw(ctx context.Context, token common.Address, amount *big.Int) (common.Hash, error) {
	contract, err := g.bound()
	if err != nil {
		return common.Hash{}, err
	}

	return transactAndWait(ctx, g.backend, contract, g.opts, "withdraw", token, amount)
}

// Balance returns the custodial account's balance of a token.
func (g *SavingsGateway) Balance(ctx context.Context, token common.Address) (*big.Int, error) {
	contract, err := g.bound()
	if err != nil {
		return nil, err
	}

	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", token); err != nil {
		return nil, fmt.Errorf("balanceOf call failed: %w", err)
	}

	return out[0].(*big.Int), nil
}

// Strategy returns the token's active strategy. The zero address means no
// strategy is set, as opposed to an error meaning the read itself failed.
func (g *SavingsGateway) Strategy(ctx context.Context, token common.Address) (common.Address, error) {
	contract, err := g.bound()
	if err != nil {
		return common.Address{}, err
	}

	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, "getStrategy", token); err != nil {
		return common.Address{}, fmt.Errorf("getStrategy call failed: %w", err)
	}

	return out[0].(common.Address), nil
}
