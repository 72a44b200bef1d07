package wallet

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func TestNewKeySignerRejectsGarbage(t *testing.T) {
	_, err := NewKeySigner("not-a-key")

	assert.Error(t, err)
}

func TestSignMessageRecoversToAddress(t *testing.T) {
	signer, err := NewKeySigner(testKey)
	require.NoError(t, err)

	encoded, err := signer.SignMessage(context.Background(), "AUTHORIZATION:1750000000000")
	require.NoError(t, err)

	sig, err := hexutil.Decode(encoded)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	// wallets report V as 27/28; recovery wants 0/1
	assert.True(t, sig[64] == 27 || sig[64] == 28)
	sig[64] -= 27

	hash := accounts.TextHash([]byte("AUTHORIZATION:1750000000000"))
	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pub))
}

func TestSignTypedDataRecoversToAddress(t *testing.T) {
	signer, err := NewKeySigner(testKey)
	require.NoError(t, err)

	typed := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"Transfer": {
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
			},
		},
		PrimaryType: "Transfer",
		Domain: apitypes.TypedDataDomain{
			Name:    "USDC",
			Version: "2",
			ChainId: math.NewHexOrDecimal256(1328),
		},
		Message: apitypes.TypedDataMessage{
			"to":    signer.Address().Hex(),
			"value": "2500000",
		},
	}

	encoded, err := signer.SignTypedData(context.Background(), typed)
	require.NoError(t, err)

	sig, err := hexutil.Decode(encoded)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	sig[64] -= 27

	hash, _, err := apitypes.TypedDataAndHash(typed)
	require.NoError(t, err)

	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pub))
}
