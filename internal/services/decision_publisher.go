package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// DecisionQueue is where decided evaluations are published for the
// narrative-generation service.
const DecisionQueue = "nutrition.evaluation.results"

// DecisionMessage is the payload the narrative service consumes.
type DecisionMessage struct {
	JobID          string          `json:"job_id"`
	UserID         uint            `json:"user_id"`
	Food           json.RawMessage `json:"food"`
	Decision       string          `json:"decision"`
	Reason         string          `json:"reason"`
	LimitingFactor string          `json:"limiting_factor,omitempty"`
	EvaluatedAt    time.Time       `json:"evaluated_at"`
}

// DecisionPublisher pushes decided evaluations onto RabbitMQ.
type DecisionPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewDecisionPublisher(amqpURL string) (*DecisionPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(
		DecisionQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &DecisionPublisher{conn: conn, channel: channel}, nil
}

func (p *DecisionPublisher) Publish(msg DecisionMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal decision message: %w", err)
	}

	return p.channel.Publish(
		"",            // exchange
		DecisionQueue, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: msg.JobID,
			Timestamp:     msg.EvaluatedAt,
			Body:          body,
		},
	)
}

func (p *DecisionPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
