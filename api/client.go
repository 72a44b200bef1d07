// Package api is the HTTP client for the SeiMoney backend. One shared
// client carries the bearer token; binding a wallet switches requests onto
// a payment-capable transport that settles "payment required" responses
// transparently.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
)

// Client talks to the SeiMoney REST API.
type Client struct {
	baseURL string
	plain   *http.Client

	mu     sync.RWMutex
	paying *http.Client
	token  string
}

// NewClient creates a client for the given base URL. The base URL is
// required; its absence is a configuration error, not a soft default.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, core.ErrMissingBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		plain:   httpClient,
	}, nil
}

// SetToken updates the bearer token used by both client modes. An empty
// token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// BindWallet switches requests onto a payment-capable transport that
// settles 402 responses with the given wallet. The bearer token is shared,
// so switching modes never loses authentication.
func (c *Client) BindWallet(signer ports.Signer) {
	base := c.plain.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.paying = &http.Client{
		Transport: &paymentTransport{base: base, signer: signer},
		Timeout:   c.plain.Timeout,
	}
}

// UnbindWallet reverts to the plain transport.
func (c *Client) UnbindWallet() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paying = nil
}

func (c *Client) httpClient() *http.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paying != nil {
		return c.paying
	}
	return c.plain
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json", out)
}

// Authorize exchanges a signed authorization for the account record and its
// bearer token. A nil result means the backend declined without failing.
func (c *Client) Authorize(ctx context.Context, auth core.Authorization) (*core.TokenAccount, error) {
	var granted *core.TokenAccount
	if err := c.postJSON(ctx, "/authorize", auth, &granted); err != nil {
		return nil, err
	}
	return granted, nil
}

// GetAccount fetches the account record for a wallet owner.
func (c *Client) GetAccount(ctx context.Context, owner common.Address) (*core.Account, error) {
	var account *core.Account
	if err := c.get(ctx, "/accounts/"+owner.Hex(), &account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateAccount registers a new account.
func (c *Client) CreateAccount(ctx context.Context, params core.CreateAccount) (*core.Account, error) {
	var account *core.Account
	if err := c.postJSON(ctx, "/create/account", params, &account); err != nil {
		return nil, err
	}
	return account, nil
}

// PaymentLinks lists the caller's payment links.
func (c *Client) PaymentLinks(ctx context.Context) ([]core.Link, error) {
	var links []core.Link
	if err := c.get(ctx, "/payment-links", &links); err != nil {
		return nil, err
	}
	return links, nil
}

// PaymentLink fetches one payment link.
func (c *Client) PaymentLink(ctx context.Context, paymentID string) (*core.Link, error) {
	var link *core.Link
	if err := c.get(ctx, "/payment-links/"+paymentID, &link); err != nil {
		return nil, err
	}
	return link, nil
}

// CreatePaymentLink creates a payment link.
func (c *Client) CreatePaymentLink(ctx context.Context, params core.CreatePaymentLink) (*core.Link, error) {
	var link *core.Link
	if err := c.postJSON(ctx, "/payment-links/create", params, &link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeletePaymentLink deletes a payment link; the request carries a fresh
// DELETE_LINK action signature.
func (c *Client) DeletePaymentLink(ctx context.Context, params core.DeletePaymentLink) (bool, error) {
	var deleted bool
	if err := c.postJSON(ctx, "/payment-links/delete", params, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// FulfillPaymentLink settles a payment link. This is a pay-per-call
// endpoint: with a wallet bound, a 402 is paid and retried transparently.
func (c *Client) FulfillPaymentLink(ctx context.Context, paymentID string) (string, error) {
	var transaction string
	if err := c.get(ctx, "/payment-links/fulfill/"+paymentID, &transaction); err != nil {
		return "", err
	}
	return transaction, nil
}

// Files lists the caller's gated files.
func (c *Client) Files(ctx context.Context) ([]core.GatedFile, error) {
	var files []core.GatedFile
	if err := c.get(ctx, "/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

// File fetches one gated file.
func (c *Client) File(ctx context.Context, fileID string) (*core.GatedFile, error) {
	var file *core.GatedFile
	if err := c.get(ctx, "/files/"+fileID, &file); err != nil {
		return nil, err
	}
	return file, nil
}

// DownloadFile requests a download URL; the request carries a fresh
// DOWNLOAD_FILE action signature.
func (c *Client) DownloadFile(ctx context.Context, params core.DownloadFile) (*core.FileURL, error) {
	var location *core.FileURL
	if err := c.postJSON(ctx, "/files/download", params, &location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteFile deletes a gated file; the request carries a fresh DELETE_FILE
// action signature.
func (c *Client) DeleteFile(ctx context.Context, params core.DeleteFile) (bool, error) {
	var deleted bool
	if err := c.postJSON(ctx, "/files/delete", params, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// FulfillFile settles a gated file purchase. Pay-per-call endpoint.
func (c *Client) FulfillFile(ctx context.Context, fileID string) (*core.FulfilledFile, error) {
	var fulfilled *core.FulfilledFile
	if err := c.get(ctx, "/files/fulfill/"+fileID, &fulfilled); err != nil {
		return nil, err
	}
	return fulfilled, nil
}

// Contracts lists the caller's work contracts.
func (c *Client) Contracts(ctx context.Context) ([]core.Contract, error) {
	var contracts []core.Contract
	if err := c.get(ctx, "/contracts", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// Contract fetches one work contract.
func (c *Client) Contract(ctx context.Context, contractID string) (*core.Contract, error) {
	var contract *core.Contract
	if err := c.get(ctx, "/contracts/"+contractID, &contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// SignContract countersigns a work contract; the request carries a fresh
// SIGN_CONTRACT action signature.
func (c *Client) SignContract(ctx context.Context, params core.SignContract) (*core.Contract, error) {
	var contract *core.Contract
	if err := c.postJSON(ctx, "/contracts/sign", params, &contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// RetryContractTransaction retries a failed payroll transaction.
func (c *Client) RetryContractTransaction(ctx context.Context, transaction string) error {
	return c.get(ctx, "/contracts/retry/"+transaction, nil)
}

// Activities lists all settlement activity for the caller.
func (c *Client) Activities(ctx context.Context) ([]core.Activity, error) {
	var activities []core.Activity
	if err := c.get(ctx, "/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// ActivitiesFor lists settlement activity for one resource.
func (c *Client) ActivitiesFor(ctx context.Context, id string) ([]core.Activity, error) {
	var activities []core.Activity
	if err := c.get(ctx, "/activities/"+id, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Analytics fetches the caller's dashboard rollup.
func (c *Client) Analytics(ctx context.Context) (*core.Analytics, error) {
	var analytics *core.Analytics
	if err := c.get(ctx, "/analytics", &analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}

// Checkout fetches the caller's storefront, if one exists.
func (c *Client) Checkout(ctx context.Context) (*core.Checkout, error) {
	var checkout *core.Checkout
	if err := c.get(ctx, "/checkout", &checkout); err != nil {
		return nil, err
	}
	return checkout, nil
}

// Products lists the storefront's products.
func (c *Client) Products(ctx context.Context) ([]core.Product, error) {
	var products []core.Product
	if err := c.get(ctx, "/checkout/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, productID string) (*core.Product, error) {
	var product *core.Product
	if err := c.get(ctx, "/checkout/products/"+productID, &product); err != nil {
		return nil, err
	}
	return product, nil
}

var _ ports.Backend = (*Client)(nil)
