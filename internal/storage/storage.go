package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kin-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Backend abstracts photo blob storage. S3Backend covers Cloudflare R2,
// MinIO and AWS S3; LocalBackend covers development.
type Backend interface {
	// Upload stores content at the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error

	// Download returns a ReadCloser for the object content and its size.
	// Caller must close the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)

	// Delete removes the object at the given key.
	Delete(ctx context.Context, key string) error

	// Exists checks whether an object exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL returns the fetchable URL for a stored key.
	PublicURL(key string) string

	// Name returns a human-readable backend identifier ("local", "s3").
	Name() string
}

// New builds the backend selected in configuration.
func New(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "s3":
		return NewS3Backend(ctx, cfg)
	case "local", "":
		return NewLocalBackend(cfg.LocalDir, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// S3Backend wraps an aws-sdk-go-v2 S3 client.
type S3Backend struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Backend creates an S3-compatible storage backend. Works with
// Cloudflare R2, MinIO, AWS S3, or any S3-compatible service.
func NewS3Backend(ctx context.Context, cfg config.StorageConfig) (*S3Backend, error) {
	region := cfg.S3.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey, cfg.S3.SecretKey, "",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure S3 client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		o.UsePathStyle = true // Required for MinIO and R2
	})

	return &S3Backend{
		client:  client,
		bucket:  cfg.S3.Bucket,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (b *S3Backend) Name() string { return "s3" }

func (b *S3Backend) Upload(ctx context.Context, key string, reader io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
		Body:   reader,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := b.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

func (b *S3Backend) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	result, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("download %s: %w", key, err)
	}
	return result.Body, aws.ToInt64(result.ContentLength), nil
}

func (b *S3Backend) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (b *S3Backend) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "NotFound") ||
			strings.Contains(msg, "404") ||
			strings.Contains(msg, "NoSuchKey") {
			return false, nil
		}
		return false, fmt.Errorf("check existence of %s: %w", key, err)
	}
	return true, nil
}

func (b *S3Backend) PublicURL(key string) string {
	return b.baseURL + "/" + key
}
