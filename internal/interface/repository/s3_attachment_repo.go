package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the attachment store settings.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; set for MinIO-style deployments
	PathStyle bool
	PublicURL string // base URL returned to clients, e.g. a CDN front
}

// S3AttachmentRepository stores attachments in an S3-compatible bucket.
// Object keys map to paths directly; the returned URL is PublicURL + key.
type S3AttachmentRepository struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  logger.Logger
}

// NewS3AttachmentRepository creates a new S3 attachment repository
func NewS3AttachmentRepository(ctx context.Context, cfg S3Config, logger logger.Logger) (repository.AttachmentRepository, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	baseURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}

	return &S3AttachmentRepository{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Upload writes the object and returns its retrievable URL.
func (r *S3AttachmentRepository) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", apperrors.RemoteFailure(err, "failed to upload attachment %s", key)
	}

	return r.baseURL + "/" + key, nil
}

// Delete removes the object. Callers treat failures as best-effort cleanup.
func (r *S3AttachmentRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
	}); err != nil {
		return apperrors.RemoteFailure(err, "failed to delete attachment %s", key)
	}
	return nil
}

// KeyForURL maps a URL previously returned by Upload back to its object key.
func (r *S3AttachmentRepository) KeyForURL(url string) (string, bool) {
	if !strings.HasPrefix(url, r.baseURL+"/") {
		return "", false
	}
	return strings.TrimPrefix(url, r.baseURL+"/"), true
}
