package ports

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Signer is the connected wallet. SignMessage signs a plaintext message
// (EIP-191 personal sign); SignTypedData signs EIP-712 typed data used for
// payment authorizations. A user rejection surfaces as an error.
type Signer interface {
	Address() common.Address
	SignMessage(ctx context.Context, message string) (string, error)
	SignTypedData(ctx context.Context, data apitypes.TypedData) (string, error)
}
