package core

import "errors"

var (
	ErrTokenExpired    = errors.New("token has expired")
	ErrTokenNotFound   = errors.New("no persisted token")
	ErrNativeToken     = errors.New("native token transfers are not supported")
	ErrNoLinkedAccount = errors.New("no custodial account bound")
	ErrNoPaymentOption = errors.New("no acceptable payment option offered")
	ErrMissingBaseURL  = errors.New("missing API base URL")
)
