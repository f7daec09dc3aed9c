// Package storage wraps the S3-compatible bucket that holds uploaded assets
// (partner logos and profile images).
package storage

import (
	"context"
	"fmt"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; set for R2/MinIO style endpoints
	BaseURL   string // public base URL assets are served from, no trailing slash
	PathStyle bool
}

type Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// New creates an asset store from Config. Credentials come from the default
// AWS chain (env vars in practice).
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// ObjectKey maps a public asset URL back to its object key. It returns false
// for URLs hosted outside the platform bucket, which must be left alone.
func (s *Store) ObjectKey(rawURL string) (string, bool) {
	if s.baseURL == "" || !strings.HasPrefix(rawURL, s.baseURL+"/") {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, s.baseURL+"/")
	if key == "" {
		return "", false
	}
	return key, true
}

// Delete removes an object by key.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
