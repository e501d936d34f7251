package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"trinh-cafe/internal/events"
	"trinh-cafe/internal/logger"
)

// Bridge mirrors hub events to the cafe_events fanout exchange so external
// consumers see the same stream the admin dashboards do. The hub stays the
// system of record for observer delivery; a broken bridge only costs the
// mirror.
type Bridge struct {
	conn   *Connection
	logger *logger.Logger
}

// NewBridge creates a bridge publishing over conn.
func NewBridge(conn *Connection, log *logger.Logger) *Bridge {
	return &Bridge{conn: conn, logger: log}
}

// bridgeMessage is the wire envelope published to the exchange.
type bridgeMessage struct {
	Group   string      `json:"group"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Forward implements events.Forwarder.
func (b *Bridge) Forward(ctx context.Context, group string, event events.Event) error {
	if b.conn.IsClosed() {
		if err := b.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(bridgeMessage{Group: group, Type: event.Type, Payload: event.Payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = b.conn.Channel().PublishWithContext(
		ctx,
		EventsExchange, // exchange
		"",             // routing key (ignored for fanout)
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("event_bridged", fmt.Sprintf("Mirrored %s event to %s", event.Type, EventsExchange),
		"", map[string]interface{}{"group": group, "message_size": len(body)})
	return nil
}
