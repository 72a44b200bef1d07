package core

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Network names the chain a record settles on.
type Network string

const (
	NetworkSeiTestnet Network = "sei-testnet"
	NetworkSei        Network = "sei"
)

// Token describes a fungible token supported by the platform.
type Token struct {
	Name         string         `json:"name"`
	Icon         string         `json:"icon"`
	Address      common.Address `json:"address"`
	Symbol       string         `json:"symbol"`
	Decimals     int32          `json:"decimals"`
	AssetVersion string         `json:"assetVersion"`
	PriceUSD     float64        `json:"priceUSD,omitempty"`
}

// ERC20Amount is a human-readable amount of a specific token.
type ERC20Amount struct {
	Amount decimal.Decimal `json:"amount"`
	Token  Token           `json:"token"`
}

// Account is the server-side record for a wallet owner.
type Account struct {
	Owner        common.Address `json:"owner"`
	Name         string         `json:"name,omitempty"`
	AvatarURL    string         `json:"avatarURL,omitempty"`
	EmailAddress string         `json:"emailAddress"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    *time.Time     `json:"updatedAt,omitempty"`
}

// TokenAccount is the authorize response: the account plus its bearer token.
type TokenAccount struct {
	Account
	Token string `json:"token"`
}

// CreateAccount are the parameters for registering an account.
type CreateAccount struct {
	Owner        common.Address `json:"owner"`
	Name         string         `json:"name,omitempty"`
	AvatarURL    string         `json:"avatarURL,omitempty"`
	EmailAddress string         `json:"emailAddress"`
}

// Authorization is a single login attempt: the owner, a signature over the
// canonical AUTHORIZATION message, and the message expiry in epoch millis.
// Constructed per attempt, sent once, never persisted.
type Authorization struct {
	Owner     common.Address `json:"owner"`
	Signature string         `json:"signature"`
	ExpiresAt int64          `json:"expiresAt"`
}

// ActionRequest carries a wallet signature authorizing a single action on a
// resource. Same shape for every action in the catalog.
type ActionRequest struct {
	Signature string `json:"signature"`
	ExpiresAt int64  `json:"expiresAt"`
}

// LinkStatus is the lifecycle state of a payment link.
type LinkStatus string

const (
	LinkPending LinkStatus = "pending"
	LinkPaid    LinkStatus = "paid"
	LinkExpired LinkStatus = "expired"
	LinkActive  LinkStatus = "active"
)

// Link is a payment link.
type Link struct {
	PaymentID        string            `json:"paymentId"`
	Description      string            `json:"description"`
	ImageURL         string            `json:"imageURL"`
	Attributes       map[string]string `json:"attributes"`
	Owner            common.Address    `json:"owner"`
	RecipientAddress common.Address    `json:"recipientAddress"`
	Amount           ERC20Amount       `json:"amount"`
	OneTime          bool              `json:"oneTime"`
	Nonce            int64             `json:"nonce"`
	Status           LinkStatus        `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
	Network          Network           `json:"network"`
}

// CreatePaymentLink are the parameters for creating a payment link.
type CreatePaymentLink struct {
	Description      string            `json:"description"`
	Amount           ERC20Amount       `json:"amount"`
	Attributes       map[string]string `json:"attributes"`
	RecipientAddress *common.Address   `json:"recipientAddress,omitempty"`
	OneTime          bool              `json:"oneTime"`
	Network          Network           `json:"network"`
}

// DeletePaymentLink authorizes deleting a payment link.
type DeletePaymentLink struct {
	PaymentID string `json:"paymentId"`
	ActionRequest
}

// GatedFile is a pay-gated downloadable file.
type GatedFile struct {
	FileID      string            `json:"fileId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PreviewURL  string            `json:"previewURL"`
	Metadata    map[string]string `json:"metadata"`
	Owner       common.Address    `json:"owner"`
	Amount      ERC20Amount       `json:"amount"`
	Downloads   int64             `json:"downloads"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
	Network     Network           `json:"network"`
}

// UploadFile are the parameters for uploading a gated file.
type UploadFile struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PreviewURL  *string           `json:"previewURL"`
	Metadata    map[string]string `json:"metadata"`
	Amount      ERC20Amount       `json:"amount"`
	Network     Network           `json:"network"`
}

// DownloadFile authorizes downloading a gated file.
type DownloadFile struct {
	FileID string `json:"fileId"`
	ActionRequest
}

// DeleteFile authorizes deleting a gated file.
type DeleteFile struct {
	FileID string `json:"fileId"`
	ActionRequest
}

// FileURL is the download location for a fulfilled file.
type FileURL struct {
	URL string `json:"url"`
}

// FulfilledFile is the result of fulfilling a gated file purchase.
type FulfilledFile struct {
	URL         string `json:"url"`
	Transaction string `json:"transaction"`
}

// PayrollFrequency is how often a contract pays out.
type PayrollFrequency string

const (
	PayrollHourly  PayrollFrequency = "hourly"
	Payroll12Hours PayrollFrequency = "12-hours"
	PayrollDaily   PayrollFrequency = "daily"
	PayrollWeekly  PayrollFrequency = "weekly"
	PayrollMonthly PayrollFrequency = "monthly"
)

// ContractRole describes the position a work contract covers.
type ContractRole struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Payroll is the payment schedule of a work contract.
type Payroll struct {
	Frequency PayrollFrequency `json:"frequency"`
	Amount    ERC20Amount      `json:"amount"`
}

// SignedState records whether and when a contract was countersigned.
type SignedState struct {
	Status    bool   `json:"status"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// Contract is a work contract with payroll.
type Contract struct {
	ContractID       string            `json:"contractId"`
	Address          common.Address    `json:"address"`
	Name             string            `json:"name"`
	Role             ContractRole      `json:"role"`
	Owner            common.Address    `json:"owner"`
	RecipientAddress common.Address    `json:"recipientAddress"`
	Payroll          Payroll           `json:"payroll"`
	Metadata         map[string]string `json:"metadata"`
	Signed           SignedState       `json:"signed"`
	Company          string            `json:"company"`
	Network          Network           `json:"network"`
	DocumentURL      string            `json:"documentURL,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
}

// CreateContract are the parameters for creating a work contract.
type CreateContract struct {
	Name             string            `json:"name"`
	Role             ContractRole      `json:"role"`
	RecipientAddress *common.Address   `json:"recipientAddress,omitempty"`
	Payroll          Payroll           `json:"payroll"`
	Metadata         map[string]string `json:"metadata"`
	Company          string            `json:"company"`
	DocumentURL      string            `json:"documentURL,omitempty"`
	Network          Network           `json:"network"`
}

// SignContract authorizes countersigning a work contract.
type SignContract struct {
	ContractID string `json:"contractId"`
	ActionRequest
}

// ContractExtract is a best-effort contract draft extracted from an
// uploaded document. Every field may be missing.
type ContractExtract struct {
	Name             string            `json:"name,omitempty"`
	Role             ContractRole      `json:"role"`
	RecipientAddress *common.Address   `json:"recipientAddress,omitempty"`
	Payroll          Payroll           `json:"payroll"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Company          string            `json:"company,omitempty"`
}

// ActivityType classifies what produced an activity entry.
type ActivityType string

const (
	ActivityLink     ActivityType = "link"
	ActivityFile     ActivityType = "file"
	ActivityContract ActivityType = "contract"
)

// Activity is one settlement attempt recorded against a resource.
type Activity struct {
	Owner       common.Address `json:"owner"`
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Amount      ERC20Amount    `json:"amount"`
	Type        ActivityType   `json:"type"`
	Status      string         `json:"status"`
	Transaction string         `json:"transaction,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updateAt,omitempty"`
}

// ResourceTotals counts active and inactive records of one resource kind.
type ResourceTotals struct {
	Active   int64 `json:"active"`
	InActive int64 `json:"inActive"`
}

// Analytics is the dashboard rollup for an account.
type Analytics struct {
	TotalRevenueUSD   float64            `json:"totalRevenueUSD"`
	TotalPaymentLinks ResourceTotals     `json:"totalPaymentLinks"`
	TotalFiles        ResourceTotals     `json:"totalFiles"`
	TotalContracts    ResourceTotals     `json:"totalContracts"`
	RecentsActivities []Activity         `json:"recentsActivities"`
	RecentRevenues    map[string]float64 `json:"recentRevenues"`
	ActiveContracts   map[string]float64 `json:"activeContracts"`
}

// Image is a product image with an optional caption.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Product is a checkout product.
type Product struct {
	ProductID        string         `json:"productId"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	AvailableInStock int64          `json:"availableInStock"`
	MaxQuantity      *int64         `json:"maxQuantity,omitempty"`
	IsFeatured       bool           `json:"isFeatured"`
	IsOnSale         bool           `json:"isOnSale"`
	Images           []Image        `json:"images"`
	Amount           ERC20Amount    `json:"amount"`
	Owner            common.Address `json:"owner"`
	CheckoutID       string         `json:"checkoutId"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        *time.Time     `json:"updatedAt,omitempty"`
	Network          Network        `json:"network"`
}

// CreateProduct are the parameters for creating a checkout product.
type CreateProduct struct {
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	AvailableInStock int64       `json:"availableInStock"`
	MaxQuantity      *int64      `json:"maxQuantity,omitempty"`
	IsFeatured       bool        `json:"isFeatured"`
	IsOnSale         bool        `json:"isOnSale"`
	Amount           ERC20Amount `json:"amount"`
	Network          Network     `json:"network"`
}

// Schedule is a storefront's working schedule.
type Schedule struct {
	Timezone     string       `json:"timezone"`
	WorkingHours WorkingHours `json:"workingHours"`
	WorkingDays  []int        `json:"workingDays"`
}

// WorkingHours is a daily open/close window.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Location is a storefront's physical location.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Checkout is an account's storefront.
type Checkout struct {
	CheckoutID string         `json:"checkoutId"`
	Owner      common.Address `json:"owner"`
	Name       string         `json:"name"`
	Tagline    string         `json:"tagline"`
	About      string         `json:"about"`
	Category   string         `json:"category"`
	LogoURL    string         `json:"logoURL"`
	Location   Location       `json:"location"`
	Schedule   Schedule       `json:"schedule"`
}

// RiskLevel grades a yield strategy.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Strategy describes a yield strategy the savings contract can delegate to.
type Strategy struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	APY         string         `json:"apy"`
	RiskLevel   RiskLevel      `json:"riskLevel"`
	Protocols   []string       `json:"protocols"`
	Fees        string         `json:"fees"`
	Creator     common.Address `json:"creator"`
}
