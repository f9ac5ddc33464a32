// Package worker consumes match requests from RabbitMQ and runs the
// full matching pipeline for each one.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"careerlens/internal/azure"
	"careerlens/internal/database"
	"careerlens/internal/jobsearch"
	"careerlens/internal/log"
	"careerlens/internal/match"
	"careerlens/internal/resume"
	"careerlens/internal/storage"
)

const (
	// RequestQueue is the durable queue match requests arrive on.
	RequestQueue = "match_requests"
	// UpdateExchange carries per-request status updates, routed by
	// "match.<request id>".
	UpdateExchange = "match_updates"
)

// Request is the message body enqueued for each match run.
type Request struct {
	ID          uuid.UUID `json:"id"`
	JobSeekerID string    `json:"job_seeker_id"`
	Query       string    `json:"query"`
	Location    string    `json:"location"`
	Domains     []string  `json:"domains,omitempty"`
}

// Config bundles everything a worker needs.
type Config struct {
	DB          *database.Queries
	Storage     *storage.Client
	Azure       *azure.Client
	Analyzer    *resume.Analyzer
	Matcher     *match.Matcher
	Search      *jobsearch.Client
	RabbitMQURL string
	RabbitConn  *amqp.Connection
}

// retry retries a function up to attempts times with linear backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// PublishRequest enqueues a match request on the request queue.
func PublishRequest(conn *amqp.Connection, req Request) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(RequestQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",
		RequestQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func publishUpdate(conn *amqp.Connection, requestID string, update map[string]any) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("match.%s", requestID)

	return ch.Publish(
		UpdateExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (cfg *Config) setStatus(ctx context.Context, req Request, status, message string) {
	logger := log.WithComponent("worker")

	err := cfg.DB.UpdateMatchRequestStatus(ctx, database.UpdateMatchRequestStatusParams{
		Status: status,
		ID:     req.ID,
	})
	if err != nil {
		logger.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to persist status")
	}

	update := map[string]any{
		"request_id": req.ID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
	if err := publishUpdate(cfg.RabbitConn, req.ID.String(), update); err != nil {
		logger.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to publish update")
	}
}

func worker(id int, cfg *Config, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := log.WithComponent("worker").With().Int("worker_id", id+1).Logger()

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("error dialling rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening rabbitmq channel")
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		RequestQueue,
		true,  // durable (survives broker restarts)
		false, // auto-delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to declare queue")
	}

	err = ch.ExchangeDeclare(UpdateExchange, "topic", true, false, false, false, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to declare update exchange")
	}

	msgs, err := ch.Consume(
		RequestQueue,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("error consuming rabbitmq messages")
	}

	for msg := range msgs {
		ctx := context.Background()

		req := Request{}
		if err := json.Unmarshal(msg.Body, &req); err != nil {
			logger.Error().Err(err).Msg("error unmarshalling message body")
			cfg.setStatus(ctx, req, "failed", "matching failed")
			continue
		}
		logger.Info().Str("request_id", req.ID.String()).Str("job_seeker_id", req.JobSeekerID).Msg("processing match request")

		cfg.setStatus(ctx, req, "processing", "matching started")

		if err := cfg.processRequest(ctx, req); err != nil {
			logger.Error().Err(err).Str("request_id", req.ID.String()).Msg("match pipeline failed")
			cfg.setStatus(ctx, req, "failed", "matching failed")
			continue
		}

		cfg.setStatus(ctx, req, "completed", "matching completed")
	}
}

// StartConsumerWorkerPool runs numWorkers consumers and blocks until
// all of them exit.
func (cfg *Config) StartConsumerWorkerPool(numWorkers int) {
	logger := log.WithComponent("worker")

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		logger.Info().Int("worker_id", i+1).Msg("worker started")
		go worker(i, cfg, &wg)
	}
	wg.Wait()
}
