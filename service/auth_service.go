package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
)

// AuthService handles the authenticated session lifecycle: signing the
// login message, exchanging it for a bearer token, and hydrating the
// linked custodial account.
//
// Concurrent Login calls for different owners are not serialized; the last
// writer wins on the session store and token header. That mirrors the
// single-user assumption of the wallet flow and is a known race.
type AuthService struct {
	sessions *core.SessionStore
	signer   ports.Signer
	backend  ports.Backend
	custody  ports.Custody
	savings  ports.Savings
	tokens   ports.TokenStore
	eventPub ports.EventPublisher

	now func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	sessions *core.SessionStore,
	signer ports.Signer,
	backend ports.Backend,
	custody ports.Custody,
	savings ports.Savings,
	tokens ports.TokenStore,
	eventPub ports.EventPublisher,
) *AuthService {
	return &AuthService{
		sessions: sessions,
		signer:   signer,
		backend:  backend,
		custody:  custody,
		savings:  savings,
		tokens:   tokens,
		eventPub: eventPub,
		now:      time.Now,
	}
}

// Login authenticates the owner. It is a no-op success when an account is
// already in the session. A declined wallet signature propagates as an
// error and leaves the session untouched; a backend rejection (no account
// returned) is a soft failure reported as false.
//
// On success the account is stored, the bearer token is propagated to the
// API client and persisted, and the linked custodial account is hydrated,
// in that order, so the token is in place before any follow-up call.
func (s *AuthService) Login(ctx context.Context, owner common.Address) (bool, error) {
	if s.sessions.Account() != nil {
		return true, nil
	}

	expiresAt := core.Expiry(s.now())
	message := core.SignableMessage(core.ActionAuthorization, expiresAt)

	signature, err := s.signer.SignMessage(ctx, message)
	if err != nil {
		return false, fmt.Errorf("wallet declined to sign: %w", err)
	}

	granted, err := s.backend.Authorize(ctx, core.Authorization{
		Owner:     owner,
		Signature: signature,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return false, fmt.Errorf("authorization request failed: %w", err)
	}
	if granted == nil {
		return false, nil
	}

	s.sessions.SetAccount(&granted.Account)
	s.backend.SetToken(granted.Token)
	if err := s.tokens.SetToken(ctx, granted.Token); err != nil {
		log.Printf("Warning: failed to persist token: %v", err)
	}

	s.hydrateLinkedAccount(ctx, owner)

	if err := s.eventPub.PublishLogin(ctx, owner); err != nil {
		log.Printf("Warning: failed to publish login event: %v", err)
	}

	return true, nil
}

// hydrateLinkedAccount fetches the custodial account and binds the savings
// gateway to it. Hydration is best effort: a chain read failure leaves the
// linked account absent but does not fail the login.
func (s *AuthService) hydrateLinkedAccount(ctx context.Context, owner common.Address) {
	linked, err := s.custody.Account(ctx, owner)
	if err != nil {
		log.Printf("Warning: failed to read custodial account: %v", err)
		return
	}

	s.sessions.SetLinkedAccount(linked)
	if linked != (common.Address{}) {
		s.savings.Bind(linked)
	}
}

// SignAction produces a single-use authorization for a destructive or gated
// action: a wallet signature over the canonical action message plus its
// expiry. Callers embed the result into the typed request structs.
func (s *AuthService) SignAction(ctx context.Context, action core.Action) (core.ActionRequest, error) {
	expiresAt := core.Expiry(s.now())
	message := core.SignableMessage(action, expiresAt)

	signature, err := s.signer.SignMessage(ctx, message)
	if err != nil {
		return core.ActionRequest{}, fmt.Errorf("wallet declined to sign: %w", err)
	}

	return core.ActionRequest{Signature: signature, ExpiresAt: expiresAt}, nil
}

// Register creates the account record and then logs in. A backend rejection
// of the creation aborts silently without attempting a login; surfacing the
// failure is the caller's responsibility.
func (s *AuthService) Register(ctx context.Context, owner common.Address, emailAddress, avatarURL, name string) (bool, error) {
	account, err := s.backend.CreateAccount(ctx, core.CreateAccount{
		Owner:        owner,
		EmailAddress: emailAddress,
		AvatarURL:    avatarURL,
		Name:         strings.TrimSpace(name),
	})
	if err != nil {
		return false, fmt.Errorf("account creation failed: %w", err)
	}
	if account == nil {
		return false, nil
	}

	return s.Login(ctx, owner)
}

// Logout clears the session and removes the persisted token. It cannot
// fail from the caller's perspective.
func (s *AuthService) Logout(ctx context.Context) {
	owner, hadAddress := s.sessions.Address()

	s.sessions.SetAccount(nil)
	s.sessions.SetAddress(common.Address{})

	if err := s.tokens.DeleteToken(ctx); err != nil {
		log.Printf("Warning: failed to delete persisted token: %v", err)
	}

	if hadAddress {
		if err := s.eventPub.PublishLogout(ctx, owner); err != nil {
			log.Printf("Warning: failed to publish logout event: %v", err)
		}
	}
}

// InitAuth triggers a login for an already-connected wallet address, if
// any. It is a fire-and-forget bootstrap; the result is not awaited.
func (s *AuthService) InitAuth(ctx context.Context) {
	owner, ok := s.sessions.Address()
	if !ok {
		return
	}

	go func() {
		if _, err := s.Login(ctx, owner); err != nil {
			log.Printf("Warning: startup login failed: %v", err)
		}
	}()
}
