package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
)

// TokenGateway performs ERC-20 reads and writes. The zero token address
// stands for the chain's native token: it needs no allowance, cannot be
// approved, and is refused for transfers.
type TokenGateway struct {
	backend Backend
	opts    *bind.TransactOpts
}

// NewTokenGateway creates a new ERC-20 gateway
func NewTokenGateway(backend Backend, opts *bind.TransactOpts) *TokenGateway {
	return &TokenGateway{backend: backend, opts: opts}
}

func (g *TokenGateway) bound(token common.Address) *bind.BoundContract {
	return bind.NewBoundContract(token, erc20ABI, g.backend, g.backend, g.backend)
}

// Allowance returns how much the spender may move on the owner's behalf.
// The native token short-circuits to the maximum representable amount.
func (g *TokenGateway) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	if token == (common.Address{}) {
		return new(big.Int).Set(abi.MaxUint256), nil
	}

	var out []interface{}
	if err := g.bound(token).Call(&bind.CallOpts{Context: ctx}, &out, "allowance", owner, spender); err != nil {
		return nil, fmt.Errorf("allowance call failed: %w", err)
	}

	return out[0].(*big.Int), nil
}

// Approve lets the spender move the given amount and waits for the receipt.
// The native token short-circuits to the zero hash without submitting.
func (g *TokenGateway) Approve(ctx context.Context, token, spender common.Address, amount *big.Int) (common.Hash, error) {
	if token == (common.Address{}) {
		return common.Hash{}, nil
	}

	return transactAndWait(ctx, g.backend, g.bound(token), g.opts, "approve", spender, amount)
}

// Transfer moves tokens to the receiver and waits for the receipt. Native
// token transfers are refused without submitting anything.
func (g *TokenGateway) Transfer(ctx context.Context, token, receiver common.Address, amount *big.Int) (common.Hash, error) {
	if token == (common.Address{}) {
		return common.Hash{}, core.ErrNativeToken
	}

	return transactAndWait(ctx, g.backend, g.bound(token), g.opts, "transfer", receiver, amount)
}

// Balance returns the holder's balance; the zero token reads the native
// chain balance instead.
func (g *TokenGateway) Balance(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	if token == (common.Address{}) {
		balance, err := g.backend.BalanceAt(ctx, holder, nil)
		if err != nil {
			return nil, fmt.Errorf("native balance read failed: %w", err)
		}
		return balance, nil
	}

	var out []interface{}
	if err := g.bound(token).Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", holder); err != nil {
		return nil, fmt.Errorf("balanceOf call failed: %w", err)
	}

	return out[0].(*big.Int), nil
}
