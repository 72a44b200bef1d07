package ports

import "context"

// TokenStore persists the bearer token across sessions
type TokenStore interface {
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	DeleteToken(ctx context.Context) error
}
