package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seimoney/seimoney-go/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdcAmount(value string) core.ERC20Amount {
	return core.ERC20Amount{
		Amount: decimal.RequireFromString(value),
		Token:  core.Token{Symbol: "USDC", Decimals: 6},
	}
}

func TestUploadFileWireFormat(t *testing.T) {
	var form *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		form = r
		json.NewEncoder(w).Encode(core.GatedFile{FileID: "file_1"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	uploaded, err := client.UploadFile(context.Background(), core.UploadFile{
		Name:        "report.pdf",
		Description: "Quarterly report",
		Metadata:    map[string]string{"pages": "12"},
		Amount:      usdcAmount("2.5"),
		Network:     core.NetworkSeiTestnet,
	}, Upload{Name: "report.pdf", Content: strings.NewReader("%PDF-1.4")})

	require.NoError(t, err)
	assert.Equal(t, "file_1", uploaded.FileID)

	// scalar parameters travel as JSON-encoded form fields
	assert.Equal(t, `"report.pdf"`, form.FormValue("name"))
	assert.Equal(t, `"Quarterly report"`, form.FormValue("description"))
	assert.Equal(t, `"sei-testnet"`, form.FormValue("network"))
	assert.JSONEq(t, `{"pages":"12"}`, form.FormValue("metadata"))

	files := form.MultipartForm.File["file"]
	require.Len(t, files, 1)
	assert.Equal(t, "report.pdf", files[0].Filename)

	content, err := files[0].Open()
	require.NoError(t, err)
	defer content.Close()
	data, err := io.ReadAll(content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestCreateContractWithoutDocument(t *testing.T) {
	var form *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		form = r
		json.NewEncoder(w).Encode(core.Contract{ContractID: "contract_1"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	contract, err := client.CreateContract(context.Background(), core.CreateContract{
		Name:    "Backend engineer",
		Role:    core.ContractRole{Title: "Engineer"},
		Payroll: core.Payroll{Frequency: core.PayrollMonthly, Amount: usdcAmount("4000")},
		Company: "Acme",
		Network: core.NetworkSeiTestnet,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "contract_1", contract.ContractID)

	assert.Equal(t, `"Backend engineer"`, form.FormValue("name"))
	assert.Empty(t, form.MultipartForm.File["file"])
}

func TestCreateProductImageParts(t *testing.T) {
	var form *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		form = r
		json.NewEncoder(w).Encode(core.Product{ProductID: "product_1"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	product, err := client.CreateProduct(context.Background(), core.CreateProduct{
		Name:             "Mug",
		AvailableInStock: 10,
		Amount:           usdcAmount("15"),
		Network:          core.NetworkSeiTestnet,
	}, []ImageUpload{
		{Upload: Upload{Name: "front.png", Content: strings.NewReader("png-front")}, Caption: "Front view"},
		{Upload: Upload{Name: "back.png", Content: strings.NewReader("png-back")}},
		{Upload: Upload{Name: "side.png", Content: strings.NewReader("png-side")}, Caption: "Side view"},
	})

	require.NoError(t, err)
	assert.Equal(t, "product_1", product.ProductID)

	images := form.MultipartForm.File["files"]
	require.Len(t, images, 3)
	assert.Equal(t, "front.png", images[0].Filename)
	assert.Equal(t, "back.png", images[1].Filename)
	assert.Equal(t, "side.png", images[2].Filename)

	// captions are 1-based and skipped for captionless images
	assert.Equal(t, "Front view", form.FormValue("caption-1"))
	assert.Empty(t, form.FormValue("caption-2"))
	assert.Equal(t, "Side view", form.FormValue("caption-3"))
}
