package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/config"
	"github.com/go-resty/resty/v2"
)

type StorageServiceInterface interface {
	Download(ctx context.Context, path string) ([]byte, error)
	Upload(ctx context.Context, path string, data []byte, contentType string) error
}

// StorageService talks to the bucketed object-storage REST API: bytes keyed
// by path, bearer auth.
type StorageService struct {
	client *resty.Client
	bucket string
}

func NewStorageService() *StorageService {
	cfg := config.LoadStorageConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30 * time.Second)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &StorageService{client: client, bucket: cfg.Bucket}
}

func (s *StorageService) Download(ctx context.Context, path string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/object/%s/%s", s.bucket, path))
	if err != nil {
		return nil, fmt.Errorf("storage download %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("storage download %s: status %d", path, resp.StatusCode())
	}
	return resp.Body(), nil
}

func (s *StorageService) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/object/%s/%s", s.bucket, path))
	if err != nil {
		return fmt.Errorf("storage upload %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage upload %s: status %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}
