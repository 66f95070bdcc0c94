package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	BaseURL string
	Bucket  string
	APIKey  string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		bucket := os.Getenv("STORAGE_BUCKET")
		if bucket == "" {
			bucket = "candidate-documents"
		}
		storageConfig = &StorageConfig{
			BaseURL: os.Getenv("STORAGE_URL"),
			Bucket:  bucket,
			APIKey:  os.Getenv("STORAGE_API_KEY"),
		}
	})
	return storageConfig
}
