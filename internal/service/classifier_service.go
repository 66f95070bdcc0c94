package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/config"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/matching"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ClassifyKind is the closed set of classifier outcomes. A business
// rejection ("document does not belong to the candidate") is terminal data,
// not a system error.
type ClassifyKind int

const (
	ClassifyAccepted ClassifyKind = iota
	ClassifyRejected
	ClassifyFailed
)

type ClassifyResult struct {
	Kind    ClassifyKind
	Message string
	Err     error
}

// ClassifierFile carries one stored file to the webhook.
type ClassifierFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        int    `json:"size"`
	Base64      string `json:"base64"`
	StoragePath string `json:"storage_path"`
	DocumentID  string `json:"document_id"`
}

// MatrixDocumentContext is one requirement row forwarded as classification
// context. Field names follow the established webhook contract.
type MatrixDocumentContext struct {
	MatrixItemID  string          `json:"matrix_item_id"`
	DocumentID    string          `json:"document_id"`
	Obligation    string          `json:"obrigatoriedade"`
	Modality      string          `json:"modalidade"`
	RequiredHours float64         `json:"carga_horaria"`
	ValidityRule  string          `json:"regra_validade"`
	Document      DocumentContext `json:"document"`
}

type DocumentContext struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
}

type ClassifierPayload struct {
	CandidateID     string                  `json:"candidate_id"`
	CandidateName   string                  `json:"candidate_name"`
	MatrixID        string                  `json:"matrix_id"`
	DocumentID      string                  `json:"document_id"`
	FileStoragePath string                  `json:"file_storage_path"`
	Files           []ClassifierFile        `json:"files"`
	MatrixDocuments []MatrixDocumentContext `json:"matrix_documents"`
	Timestamp       string                  `json:"timestamp"`
	Status          string                  `json:"status"`
}

type ClassifierServiceInterface interface {
	Classify(ctx context.Context, payload ClassifierPayload) ClassifyResult
}

type ClassifierService struct {
	client *resty.Client
	url    string
}

func NewClassifierService() *ClassifierService {
	cfg := config.LoadClassifierConfig()
	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &ClassifierService{client: client, url: cfg.WebhookURL}
}

// rejectionSignals are matched case/accent-insensitively against the
// classifier's free-text message. Brittle to wording changes, kept for
// compatibility with the deployed classifier.
var rejectionSignals = []string{
	"does not belong",
	"nao pertence",
}

// Classify posts the payload to the external classification webhook and
// folds the response into {Accepted, Rejected, Failed}.
func (s *ClassifierService) Classify(ctx context.Context, payload ClassifierPayload) ClassifyResult {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.url)
	if err != nil {
		return ClassifyResult{Kind: ClassifyFailed, Err: fmt.Errorf("classifier webhook: %w", err)}
	}

	body := resp.String()
	message := body
	if m := gjson.Get(body, "message"); m.Exists() {
		message = m.String()
	}

	if isRejection(message) {
		return ClassifyResult{Kind: ClassifyRejected, Message: message}
	}
	if resp.IsError() {
		return ClassifyResult{
			Kind: ClassifyFailed,
			Err:  fmt.Errorf("classifier webhook: status %d: %s", resp.StatusCode(), body),
		}
	}
	return ClassifyResult{Kind: ClassifyAccepted, Message: message}
}

func isRejection(message string) bool {
	normalized := matching.Normalize(message)
	for _, signal := range rejectionSignals {
		if strings.Contains(normalized, signal) {
			return true
		}
	}
	return false
}
