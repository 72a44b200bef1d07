// Package registry holds the static token, strategy, and network tables the
// platform settles against. Lookups are by address; addresses are compared
// checksummed, so case differences in config never matter.
package registry

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
	"github.com/shopspring/decimal"
)

// Tokens are the fungible tokens the platform supports.
var Tokens = []core.Token{
	{
		Name:         "USDC",
		Icon:         "/images/usdc.png",
		Address:      common.HexToAddress("0x4fCF1784B31630811181f670Aea7A7bEF803eaED"),
		Decimals:     6,
		Symbol:       "USDC",
		AssetVersion: "2",
	},
}

// Strategies are the yield strategies the savings contract can delegate to.
var Strategies = []core.Strategy{
	{
		Address:     common.HexToAddress("0xa2236475db73775aD69aE4b4099Ac4B8FF374085"),
		Name:        "USDC Gift Strategy",
		Description: "Earn passive yield through gifting-based USDC strategy in the Sei Community.",
		APY:         "12.43",
		RiskLevel:   core.RiskLow,
		Protocols:   []string{"Sei Community"},
		Fees:        "0",
		Creator:     common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
	},
	{
		Address:     common.HexToAddress("0x9DeB5E5E901F84fda356869A58DcB4885FDB7080"),
		Name:        "Hackathon Testers Strategy",
		Description: "High-yield test strategy designed for hackathon participants and team members.",
		APY:         "23.12",
		RiskLevel:   core.RiskLow,
		Protocols:   []string{"Public", "Sei Money Team"},
		Fees:        "0",
		Creator:     common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
	},
}

// Categories are the storefront categories offered at checkout creation.
var Categories = []string{
	"Digital Products",
	"Software & Apps",
	"Education & Courses",
	"Design & Creative",
	"Business & Marketing",
	"Health & Fitness",
	"Entertainment",
	"Other",
}

// chainIDs maps network names to EVM chain IDs.
var chainIDs = map[core.Network]uint64{
	core.NetworkSeiTestnet: 1328,
	core.NetworkSei:        1329,
}

// ChainID returns the EVM chain ID for a network name.
func ChainID(network core.Network) (uint64, bool) {
	id, ok := chainIDs[network]
	return id, ok
}

// TokenByAddress finds a supported token by its contract address.
func TokenByAddress(address common.Address) (core.Token, bool) {
	for _, token := range Tokens {
		if token.Address == address {
			return token, true
		}
	}
	return core.Token{}, false
}

// StrategyByAddress finds a strategy by its contract address.
func StrategyByAddress(address common.Address) (core.Strategy, bool) {
	for _, strategy := range Strategies {
		if strategy.Address == address {
			return strategy, true
		}
	}
	return core.Strategy{}, false
}

// BaseUnits converts a human-readable token amount to contract base units.
func BaseUnits(amount core.ERC20Amount) (*big.Int, error) {
	shifted := amount.Amount.Shift(amount.Token.Decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", amount.Amount, amount.Token.Decimals)
	}
	return shifted.BigInt(), nil
}

// FromBaseUnits converts contract base units back to a human-readable amount.
func FromBaseUnits(units *big.Int, token core.Token) core.ERC20Amount {
	return core.ERC20Amount{
		Amount: decimal.NewFromBigInt(units, 0).Shift(-token.Decimals),
		Token:  token,
	}
}
