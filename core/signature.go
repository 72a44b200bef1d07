package core

import (
	"fmt"
	"time"
)

// Action identifies an operation that must be authorized by a wallet
// signature. The backend reconstructs the signed message from the action
// and expiry, so the catalog is a shared wire contract.
type Action string

const (
	// ActionAuthorization authorizes a login attempt
	ActionAuthorization Action = "AUTHORIZATION"

	// ActionDeleteLink authorizes deleting a payment link
	ActionDeleteLink Action = "DELETE_LINK"

	// ActionDeleteFile authorizes deleting a gated file
	ActionDeleteFile Action = "DELETE_FILE"

	// ActionDownloadFile authorizes downloading a gated file
	ActionDownloadFile Action = "DOWNLOAD_FILE"

	// ActionSignContract authorizes signing a work contract
	ActionSignContract Action = "SIGN_CONTRACT"

	// SignatureTTL is how long a signed action message stays valid
	SignatureTTL = 2 * time.Minute
)

// SignableMessage builds the canonical message for an action and its expiry
// in epoch milliseconds. Identical inputs always yield an identical string;
// the backend recomputes it to verify the signature.
func SignableMessage(action Action, expiresAt int64) string {
	return fmt.Sprintf("%s:%d", action, expiresAt)
}

// Expiry returns the expiry timestamp, in epoch milliseconds, for a message
// issued at the given time.
func Expiry(issuedAt time.Time) int64 {
	return issuedAt.Add(SignatureTTL).UnixMilli()
}
