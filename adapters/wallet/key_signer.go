package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/seimoney/seimoney-go/ports"
)

// KeySigner signs with a local private key. It stands in for a wallet
// extension in server-side and test environments.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner creates a signer from a hex-encoded private key.
func NewKeySigner(hexKey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the signer's wallet address.
func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignMessage signs a plaintext message with the EIP-191 personal-sign
// prefix, matching what browser wallets produce for the same message.
func (s *KeySigner) SignMessage(ctx context.Context, message string) (string, error) {
	hash := accounts.TextHash([]byte(message))

	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}

	// Wallets report V as 27/28
	sig[64] += 27

	return hexutil.Encode(sig), nil
}

// SignTypedData signs EIP-712 typed data.
func (s *KeySigner) SignTypedData(ctx context.Context, data apitypes.TypedData) (string, error) {
	hash, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return "", fmt.Errorf("failed to hash typed data: %w", err)
	}

	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign typed data: %w", err)
	}

	sig[64] += 27

	return hexutil.Encode(sig), nil
}

var _ ports.Signer = (*KeySigner)(nil)
