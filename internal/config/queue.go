package config

import (
	"os"
	"sync"
	"time"
)

// QueueConfig points at the RabbitMQ HTTP management API. The queue is
// consumed over plain HTTP (no persistent AMQP connection) so short-lived
// worker invocations need no connection lifecycle.
type QueueConfig struct {
	APIURL       string // e.g. https://host/api
	VHost        string
	User         string
	Password     string
	QueueName    string
	WorkerBudget time.Duration
}

var (
	queueConfig *QueueConfig
	queueOnce   sync.Once
)

func LoadQueueConfig() *QueueConfig {
	queueOnce.Do(func() {
		vhost := os.Getenv("QUEUE_VHOST")
		if vhost == "" {
			vhost = "/"
		}
		name := os.Getenv("QUEUE_NAME")
		if name == "" {
			name = "document_processing_queue"
		}
		budget := 45 * time.Second
		if v := os.Getenv("QUEUE_WORKER_BUDGET"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				budget = d
			}
		}
		queueConfig = &QueueConfig{
			APIURL:       os.Getenv("QUEUE_API_URL"),
			VHost:        vhost,
			User:         os.Getenv("QUEUE_USER"),
			Password:     os.Getenv("QUEUE_PASSWORD"),
			QueueName:    name,
			WorkerBudget: budget,
		}
	})
	return queueConfig
}
