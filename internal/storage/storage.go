package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is bucket-style object storage for uploaded files.
type Storage interface {
	// Save stores the object under path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns the public retrieval URL of the object.
	GetURL(ctx context.Context, path string) (string, error)
}

type Config struct {
	Type        string // local, s3, cloudflare_r2, supabase
	BasePath    string // local
	BaseURL     string // public URL base
	Bucket      string // s3, r2, supabase
	Region      string // s3
	AccessKey   string // s3, r2
	SecretKey   string // s3, r2
	Endpoint    string // r2 or custom s3
	UseSSL      bool
	PublicRead  bool
	SupabaseURL string
	SupabaseKey string
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	case "supabase":
		return NewSupabaseStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
