package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/config"
	"github.com/redis/go-redis/v9"
)

type NotifyServiceInterface interface {
	DocumentChanged(ctx context.Context, candidateID, documentID, status string) error
	ComparisonChanged(ctx context.Context, candidateID string) error
}

// NotifyService publishes change events on channels keyed by table and row
// filter. UI-facing subscribers re-fetch on notification instead of
// polling; delivery is best effort and readers treat pending state as a
// valid transient.
type NotifyService struct {
	rdb *redis.Client
}

func NewNotifyService() *NotifyService {
	cfg := config.LoadRedisConfig()
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &NotifyService{rdb: rdb}
}

type changeEvent struct {
	Table       string    `json:"table"`
	RowID       string    `json:"row_id,omitempty"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func (s *NotifyService) DocumentChanged(ctx context.Context, candidateID, documentID, status string) error {
	return s.publish(ctx, changeEvent{
		Table:       "candidate_documents",
		RowID:       documentID,
		CandidateID: candidateID,
		Status:      status,
		Timestamp:   time.Now(),
	})
}

func (s *NotifyService) ComparisonChanged(ctx context.Context, candidateID string) error {
	return s.publish(ctx, changeEvent{
		Table:       "comparison_results",
		CandidateID: candidateID,
		Timestamp:   time.Now(),
	})
}

func (s *NotifyService) publish(ctx context.Context, ev changeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	channel := fmt.Sprintf("%s:candidate:%s", ev.Table, ev.CandidateID)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("notify %s: %w", channel, err)
	}
	return nil
}
