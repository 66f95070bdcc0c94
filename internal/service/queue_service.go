package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/config"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type QueueServiceInterface interface {
	Publish(ctx context.Context, job dto.QueueJob) error
	Get(ctx context.Context) (*dto.QueueJob, bool, error)
}

// QueueService drives the message queue through the RabbitMQ HTTP
// management API. Retrieval acks on fetch with no requeue, so a message
// leaves the queue once a worker gets it; redelivery only happens at the
// transport level (at-least-once).
type QueueService struct {
	client *resty.Client
	vhost  string
	queue  string
}

func NewQueueService() *QueueService {
	cfg := config.LoadQueueConfig()
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetBasicAuth(cfg.User, cfg.Password).
		SetTimeout(15 * time.Second)
	return &QueueService{
		client: client,
		vhost:  url.PathEscape(cfg.VHost),
		queue:  cfg.QueueName,
	}
}

// Publish sends the job to the default exchange with the queue name as
// routing key.
func (s *QueueService) Publish(ctx context.Context, job dto.QueueJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("queue publish: %w", err)
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"properties":       map[string]any{},
			"routing_key":      s.queue,
			"payload":          string(payload),
			"payload_encoding": "string",
		}).
		Post(fmt.Sprintf("/exchanges/%s/amq.default/publish", s.vhost))
	if err != nil {
		return fmt.Errorf("queue publish: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("queue publish: status %d: %s", resp.StatusCode(), resp.String())
	}
	if !gjson.Get(resp.String(), "routed").Bool() {
		return fmt.Errorf("queue publish: message not routed to %s", s.queue)
	}
	return nil
}

// Get fetches at most one message, acking it on fetch (destructive read).
// Returns ok=false when the queue is empty.
func (s *QueueService) Get(ctx context.Context) (*dto.QueueJob, bool, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"count":    1,
			"ackmode":  "ack_requeue_false",
			"encoding": "auto",
		}).
		Post(fmt.Sprintf("/queues/%s/%s/get", s.vhost, s.queue))
	if err != nil {
		return nil, false, fmt.Errorf("queue get: %w", err)
	}
	if resp.IsError() {
		return nil, false, fmt.Errorf("queue get: status %d: %s", resp.StatusCode(), resp.String())
	}

	messages := gjson.Parse(resp.String()).Array()
	if len(messages) == 0 {
		return nil, false, nil
	}
	var job dto.QueueJob
	if err := json.Unmarshal([]byte(messages[0].Get("payload").String()), &job); err != nil {
		return nil, false, fmt.Errorf("queue get: malformed job payload: %w", err)
	}
	return &job, true, nil
}
