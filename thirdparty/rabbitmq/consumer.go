package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/humidor-club/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailerConfig points the consumer at the outbound mail provider.
type MailerConfig struct {
	APIURL string
	APIKey string
	From   string
}

// RetryDelay is how long a failed send waits before the message is requeued.
// With QoS 1 an immediate requeue would hammer a provider that is down.
const RetryDelay = 5 * time.Second

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	mailer     MailerConfig
	client     *http.Client
	retryDelay time.Duration
}

func NewConsumer(host string, port int, user, password string, mailer MailerConfig) (*Consumer, error) {
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

	return &Consumer{
		conn:       conn,
		channel:    channel,
		mailer:     mailer,
		client:     &http.Client{Timeout: 10 * time.Second},
		retryDelay: RetryDelay,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		MagicLinkQueue,
		"magic-link-mailer", // consumer tag
		false,               // auto-ack
		false,               // exclusive
		false,               // no-local
		false,               // no-wait
		nil,                 // arguments
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
				c.deliver(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) deliver(ctx context.Context, msg amqp091.Delivery) {
	var link MagicLinkMessage
	if err := json.Unmarshal(msg.Body, &link); err != nil {
		logger.Error("[Consumer] malformed magic link message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if time.Now().After(link.ExpiresAt) {
		logger.Warn("[Consumer] dropping expired magic link", zap.String("email", link.Email))
		_ = msg.Ack(false)
		return
	}

	if err := c.sendMail(ctx, link); err != nil {
		logger.Error("[Consumer] send magic link mail", zap.String("email", link.Email), zap.String("error", err.Error()))
		// requeue so the link is retried while it is still valid; expired
		// links are dropped on redelivery
		select {
		case <-ctx.Done():
		case <-time.After(c.retryDelay):
		}
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] magic link mailed", zap.String("email", link.Email))
}

type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Consumer) sendMail(ctx context.Context, link MagicLinkMessage) error {
	body, err := json.Marshal(mailRequest{
		From:    c.mailer.From,
		To:      link.Email,
		Subject: "Your Humidor Club sign-in link",
		Text: fmt.Sprintf("Sign in to Humidor Club:\n\n%s\n\nThis link expires at %s.",
			link.Link, link.ExpiresAt.UTC().Format(time.RFC1123)),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mailer.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.mailer.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mailer returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
