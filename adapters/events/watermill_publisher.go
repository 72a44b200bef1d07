package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/seimoney/seimoney-go/ports"
)

const (
	// TopicLogin carries successful login events
	TopicLogin = "seimoney.auth.login"

	// TopicLogout carries logout events
	TopicLogout = "seimoney.auth.logout"
)

// AuthEvent is the payload published on login and logout.
type AuthEvent struct {
	Owner common.Address `json:"owner"`
	At    time.Time      `json:"at"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishLogin publishes a login event
func (p *WatermillPublisher) PublishLogin(ctx context.Context, owner common.Address) error {
	return p.publish(TopicLogin, owner)
}

// PublishLogout publishes a logout event
func (p *WatermillPublisher) PublishLogout(ctx context.Context, owner common.Address) error {
	return p.publish(TopicLogout, owner)
}

func (p *WatermillPublisher) publish(topic string, owner common.Address) error {
	event := AuthEvent{
		Owner: owner,
		At:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
