package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	supabase "github.com/nedpals/supabase-go"
)

// SupabaseStorage uploads to a Supabase storage bucket.
type SupabaseStorage struct {
	client  *supabase.Client
	bucket  string
	baseURL string
}

func NewSupabaseStorage(cfg Config) (*SupabaseStorage, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("supabase url and key are required (SUPABASE_URL / SUPABASE_KEY)")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required for supabase storage")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s/storage/v1/object/public/%s", strings.TrimRight(cfg.SupabaseURL, "/"), cfg.Bucket)
	}

	return &SupabaseStorage{
		client:  supabase.CreateClient(cfg.SupabaseURL, cfg.SupabaseKey),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save uploads with the detected content type so the public URL is served
// with it. The client panics on transport errors; those come back as errors.
func (s *SupabaseStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) (err error) {
	defer recoverTransport("upload", &err)

	resp := s.client.Storage.From(s.bucket).Upload(path, reader, &supabase.FileUploadOptions{
		ContentType: contentType,
		MimeType:    contentType,
	})
	if resp.Key == "" {
		return fmt.Errorf("supabase upload failed: %s", resp.Message)
	}
	return nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, path string) (err error) {
	defer recoverTransport("delete", &err)

	resp := s.client.Storage.From(s.bucket).Remove([]string{path})
	if resp.Message != "" && resp.Key == "" && !strings.Contains(strings.ToLower(resp.Message), "not found") {
		return fmt.Errorf("supabase delete failed: %s", resp.Message)
	}
	return nil
}

func (s *SupabaseStorage) GetURL(ctx context.Context, path string) (string, error) {
	return fmt.Sprintf("%s/%s", s.baseURL, path), nil
}

func recoverTransport(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("supabase %s failed: %v", op, r)
	}
}
