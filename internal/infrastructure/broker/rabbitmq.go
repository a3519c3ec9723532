package broker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange = "caja_eventos"

	EventRegisterOpened = "caja_abierta"
	EventRegisterClosed = "caja_cerrada"
)

// RegisterEvent is the wire message fanned out to every running instance
// when a register opens or closes.
type RegisterEvent struct {
	Tipo      string    `json:"tipo"`
	Timestamp time.Time `json:"timestamp"`
}

// RabbitMQBroker broadcasts register lifecycle events over a fanout
// exchange. Every instance binds its own exclusive queue, so one publish
// reaches all of them, publisher included.
type RabbitMQBroker struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

var _ interfaces.IRegisterEventBroker = (*RabbitMQBroker)(nil)

func NewRabbitMQBroker(url string) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		defaultExchange,
		"fanout",
		false, // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQBroker{
		conn:     conn,
		channel:  ch,
		exchange: defaultExchange,
	}, nil
}

func (b *RabbitMQBroker) PublishOpened(ctx context.Context) error {
	return b.publish(ctx, EventRegisterOpened)
}

func (b *RabbitMQBroker) PublishClosed(ctx context.Context) error {
	return b.publish(ctx, EventRegisterClosed)
}

func (b *RabbitMQBroker) publish(ctx context.Context, eventType string) error {
	body, err := json.Marshal(RegisterEvent{Tipo: eventType, Timestamp: time.Now().UTC()})
	if err != nil {
		return err
	}

	return b.channel.PublishWithContext(
		ctx,
		b.exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
}

// Consume binds an exclusive auto-delete queue to the exchange and invokes
// fn for every register event until ctx is cancelled. Malformed messages
// are logged and dropped.
func (b *RabbitMQBroker) Consume(ctx context.Context, fn func(eventType string)) error {
	q, err := b.channel.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	if err := b.channel.QueueBind(q.Name, "", b.exchange, false, nil); err != nil {
		return err
	}

	msgs, err := b.channel.Consume(
		q.Name,
		"",    // consumer tag
		true,  // auto-ack
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event RegisterEvent
				if err := json.Unmarshal(msg.Body, &event); err != nil {
					log.Printf("[broker] dropping malformed register event: %v", err)
					continue
				}
				fn(event.Tipo)
			}
		}
	}()
	return nil
}

func (b *RabbitMQBroker) Close() {
	if b.channel != nil {
		_ = b.channel.Close()
	}
	if b.conn != nil {
		_ = b.conn.Close()
	}
}
