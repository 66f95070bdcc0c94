package dto

import "fmt"

// QueueJob is the upload-processing task carried through the message queue.
// Wire format uses string ids so the payload survives any management-API
// re-encoding.
type QueueJob struct {
	CandidateID string `json:"candidate_id"`
	DocumentID  string `json:"document_id"`
	StoragePath string `json:"storage_path"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
}

// Validate rejects jobs missing required fields before any processing.
func (j QueueJob) Validate() error {
	if j.CandidateID == "" {
		return fmt.Errorf("queue job: candidate_id is required")
	}
	if j.DocumentID == "" {
		return fmt.Errorf("queue job: document_id is required")
	}
	if j.StoragePath == "" {
		return fmt.Errorf("queue job: storage_path is required")
	}
	return nil
}
