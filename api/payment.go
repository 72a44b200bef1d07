package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
	"github.com/seimoney/seimoney-go/registry"
)

const (
	paymentHeader  = "X-Payment"
	x402Version    = 1
	schemeExact    = "exact"
	defaultTimeout = 300 // seconds, when the server offers none
)

// paymentTransport settles 402 responses. It reads the server's payment
// requirements, signs a token transfer authorization with the bound wallet,
// and replays the original request once with the payment attached. Any
// other response passes through untouched.
type paymentTransport struct {
	base   http.RoundTripper
	signer ports.Signer
}

// paymentRequirements is one payment option offered by the server.
type paymentRequirements struct {
	Scheme            string         `json:"scheme"`
	Network           core.Network   `json:"network"`
	MaxAmountRequired string         `json:"maxAmountRequired"`
	Resource          string         `json:"resource"`
	Description       string         `json:"description"`
	PayTo             common.Address `json:"payTo"`
	MaxTimeoutSeconds int64          `json:"maxTimeoutSeconds"`
	Asset             common.Address `json:"asset"`
	Extra             struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"extra"`
}

type paymentRequiredBody struct {
	X402Version int                   `json:"x402Version"`
	Error       string                `json:"error"`
	Accepts     []paymentRequirements `json:"accepts"`
}

type transferAuthorization struct {
	From        common.Address `json:"from"`
	To          common.Address `json:"to"`
	Value       string         `json:"value"`
	ValidAfter  string         `json:"validAfter"`
	ValidBefore string         `json:"validBefore"`
	Nonce       string         `json:"nonce"`
}

type exactPayload struct {
	Signature     string                `json:"signature"`
	Authorization transferAuthorization `json:"authorization"`
}

type paymentPayload struct {
	X402Version int          `json:"x402Version"`
	Scheme      string       `json:"scheme"`
	Network     core.Network `json:"network"`
	Payload     exactPayload `json:"payload"`
}

func (t *paymentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusPaymentRequired {
		return resp, err
	}

	// One payment attempt per request
	if req.Header.Get(paymentHeader) != "" {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading payment requirements: %w", err)
	}

	var required paymentRequiredBody
	if err := json.Unmarshal(body, &required); err != nil {
		// Not a payment challenge we understand; hand the response back
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return resp, nil
	}

	requirement, ok := selectRequirement(required.Accepts)
	if !ok {
		return nil, core.ErrNoPaymentOption
	}

	header, err := t.buildPayment(req.Context(), requirement)
	if err != nil {
		return nil, fmt.Errorf("building payment: %w", err)
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		retry.Body, err = req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("replaying request body: %w", err)
		}
	}
	retry.Header.Set(paymentHeader, header)

	return t.base.RoundTrip(retry)
}

func selectRequirement(accepts []paymentRequirements) (paymentRequirements, bool) {
	for _, candidate := range accepts {
		if candidate.Scheme == schemeExact {
			return candidate, true
		}
	}
	return paymentRequirements{}, false
}

// buildPayment signs an EIP-3009 transfer authorization for the offered
// amount and packs it into the payment header value.
func (t *paymentTransport) buildPayment(ctx context.Context, requirement paymentRequirements) (string, error) {
	chainID, ok := registry.ChainID(requirement.Network)
	if !ok {
		return "", fmt.Errorf("unknown payment network %q", requirement.Network)
	}

	timeout := requirement.MaxTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	now := time.Now()
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating payment nonce: %w", err)
	}

	authorization := transferAuthorization{
		From:        t.signer.Address(),
		To:          requirement.PayTo,
		Value:       requirement.MaxAmountRequired,
		ValidAfter:  strconv.FormatInt(now.Add(-time.Minute).Unix(), 10),
		ValidBefore: strconv.FormatInt(now.Add(time.Duration(timeout)*time.Second).Unix(), 10),
		Nonce:       hexutil.Encode(nonce),
	}

	typed := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"TransferWithAuthorization": {
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "validAfter", Type: "uint256"},
				{Name: "validBefore", Type: "uint256"},
				{Name: "nonce", Type: "bytes32"},
			},
		},
		PrimaryType: "TransferWithAuthorization",
		Domain: apitypes.TypedDataDomain{
			Name:              requirement.Extra.Name,
			Version:           requirement.Extra.Version,
			ChainId:           math.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: requirement.Asset.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"from":        authorization.From.Hex(),
			"to":          authorization.To.Hex(),
			"value":       authorization.Value,
			"validAfter":  authorization.ValidAfter,
			"validBefore": authorization.ValidBefore,
			"nonce":       authorization.Nonce,
		},
	}

	signature, err := t.signer.SignTypedData(ctx, typed)
	if err != nil {
		return "", fmt.Errorf("signing payment authorization: %w", err)
	}

	payload, err := json.Marshal(paymentPayload{
		X402Version: x402Version,
		Scheme:      schemeExact,
		Network:     requirement.Network,
		Payload: exactPayload{
			Signature:     signature,
			Authorization: authorization,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding payment payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}
