package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("", nil)

	assert.ErrorIs(t, err, core.ErrMissingBaseURL)
}

func TestBearerTokenPropagates(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]core.Link{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	client.SetToken("tok123")

	_, err = client.PaymentLinks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", authorization)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hasAuthorization bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuthorization = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]core.Link{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.PaymentLinks(context.Background())

	require.NoError(t, err)
	assert.False(t, hasAuthorization)
}

func TestAuthorizeDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	granted, err := client.Authorize(context.Background(), core.Authorization{
		Owner:     common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		Signature: "0xSIG",
		ExpiresAt: 1750000000000,
	})

	require.NoError(t, err)
	assert.Nil(t, granted)
}

func TestAuthorizeGranted(t *testing.T) {
	owner := common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authorize", r.URL.Path)

		var auth core.Authorization
		require.NoError(t, json.NewDecoder(r.Body).Decode(&auth))
		assert.Equal(t, owner, auth.Owner)

		json.NewEncoder(w).Encode(core.TokenAccount{
			Account: core.Account{Owner: owner, EmailAddress: "a@b.com"},
			Token:   "tok123",
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	granted, err := client.Authorize(context.Background(), core.Authorization{
		Owner: owner, Signature: "0xSIG", ExpiresAt: 1750000000000,
	})

	require.NoError(t, err)
	require.NotNil(t, granted)
	assert.Equal(t, "tok123", granted.Token)
	assert.Equal(t, owner, granted.Owner)
}

func TestUnexpectedStatusSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "link not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.PaymentLink(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "link not found")
}

func TestDeletePaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-links/delete", r.URL.Path)

		var params core.DeletePaymentLink
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "pay_1", params.PaymentID)
		assert.Equal(t, "0xSIG", params.Signature)

		w.Write([]byte("true"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	deleted, err := client.DeletePaymentLink(context.Background(), core.DeletePaymentLink{
		PaymentID:     "pay_1",
		ActionRequest: core.ActionRequest{Signature: "0xSIG", ExpiresAt: 1750000000000},
	})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode([]core.GatedFile{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/", nil)
	require.NoError(t, err)

	_, err = client.Files(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/files", path)
}
