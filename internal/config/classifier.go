package config

import (
	"os"
	"sync"
	"time"
)

type ClassifierConfig struct {
	WebhookURL string
	Token      string // optional bearer token
	Timeout    time.Duration
}

var (
	classifierConfig *ClassifierConfig
	classifierOnce   sync.Once
)

func LoadClassifierConfig() *ClassifierConfig {
	classifierOnce.Do(func() {
		timeout := 30 * time.Second
		if v := os.Getenv("CLASSIFIER_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				timeout = d
			}
		}
		classifierConfig = &ClassifierConfig{
			WebhookURL: os.Getenv("CLASSIFIER_WEBHOOK_URL"),
			Token:      os.Getenv("CLASSIFIER_TOKEN"),
			Timeout:    timeout,
		}
	})
	return classifierConfig
}
