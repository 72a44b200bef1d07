package core

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestSessionStoreAddressZeroSentinel(t *testing.T) {
	sessions := NewSessionStore()

	sessions.SetAddress(common.HexToAddress("0x0000000000000000000000000000000000000000"))

	_, ok := sessions.Address()
	assert.False(t, ok)
}

func TestSessionStoreAddress(t *testing.T) {
	sessions := NewSessionStore()
	owner := common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6")

	sessions.SetAddress(owner)

	address, ok := sessions.Address()
	assert.True(t, ok)
	assert.Equal(t, owner, address)

	sessions.SetAddress(common.Address{})

	_, ok = sessions.Address()
	assert.False(t, ok)
}

func TestSessionStoreLinkedAccountZeroSentinel(t *testing.T) {
	sessions := NewSessionStore()

	sessions.SetLinkedAccount(common.Address{})

	_, ok := sessions.LinkedAccount()
	assert.False(t, ok)

	linked := common.HexToAddress("0xa73cC11da965D1Fc17f06EC4F635477022cF308a")
	sessions.SetLinkedAccount(linked)

	got, ok := sessions.LinkedAccount()
	assert.True(t, ok)
	assert.Equal(t, linked, got)
}

func TestSessionStoreAccount(t *testing.T) {
	sessions := NewSessionStore()

	assert.Nil(t, sessions.Account())

	account := &Account{
		Owner:        common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		EmailAddress: "a@b.com",
		CreatedAt:    time.Now(),
	}
	sessions.SetAccount(account)
	assert.Equal(t, account, sessions.Account())

	sessions.SetAccount(nil)
	assert.Nil(t, sessions.Account())
}
