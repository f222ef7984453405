package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology is shared by the API publisher and the mailer consumer so
// either side can start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		MailExchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		MagicLinkQueue, // name
		true,           // durable
		false,          // auto-delete
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	err = channel.QueueBind(
		MagicLinkQueue,    // queue name
		MagicLinkRouteKey, // routing key
		MailExchange,      // exchange
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.ExchangeDeclare(
		MarketplaceExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
}

func (p *Publisher) PublishMagicLink(ctx context.Context, msg MagicLinkMessage) error {
	return p.publish(ctx, MailExchange, MagicLinkRouteKey, msg)
}

func (p *Publisher) PublishListingEvent(ctx context.Context, evt ListingEvent) error {
	return p.publish(ctx, MarketplaceExchange, evt.Event, evt)
}

func (p *Publisher) publish(ctx context.Context, exchange, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		exchange, // exchange
		key,      // routing key
		false,    // mandatory
		false,    // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
