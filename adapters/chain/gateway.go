// Package chain wraps the on-chain contracts the platform settles with: the
// ERC-20 token interface, the custodial account registry, and the savings
// (yield strategy) contract. Reads are plain calls; writes submit a
// transaction and wait for its receipt.
package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the RPC surface the gateways need. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

const erc20ABIJSON = `[
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"type":"uint256"}]}
]`

const custodyABIJSON = `[
	{"type":"function","name":"createAccount","stateMutability":"nonpayable","inputs":[],"outputs":[{"type":"address"}]},
	{"type":"function","name":"getAccount","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"type":"address"}]},
	{"type":"function","name":"totalAccounts","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}
]`

const savingsABIJSON = `[
	{"type":"function","name":"earn","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"}],"outputs":[]},
	{"type":"function","name":"useStrategy","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"strategy","type":"address"}],"outputs":[]},
	{"type":"function","name":"exitStrategy","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"}],"outputs":[]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"getStrategy","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"type":"address"}]}
]`

var (
	erc20ABI   = mustParseABI(erc20ABIJSON)
	custodyABI = mustParseABI(custodyABIJSON)
	savingsABI = mustParseABI(savingsABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid contract ABI: %v", err))
	}
	return parsed
}

// withContext copies transact options with the call's context attached.
func withContext(ctx context.Context, opts *bind.TransactOpts) *bind.TransactOpts {
	copied := *opts
	copied.Context = ctx
	return &copied
}

// transactAndWait submits a contract write and blocks until its receipt is
// available. No client-side timeout is applied beyond the caller's context.
func transactAndWait(ctx context.Context, backend Backend, contract *bind.BoundContract, opts *bind.TransactOpts, method string, params ...interface{}) (common.Hash, error) {
	tx, err := contract.Transact(withContext(ctx, opts), method, params...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%s transaction failed: %w", method, err)
	}

	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("waiting for %s receipt: %w", method, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Hash{}, fmt.Errorf("%s transaction %s reverted", method, receipt.TxHash)
	}

	return receipt.TxHash, nil
}
