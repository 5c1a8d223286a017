// Package storage provides the image store backing uploaded media.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	appconfig "github.com/jaydeepbariya/master-backend-app/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore accepts image bytes and returns a public URL for them.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, content []byte) (string, error)
}

// S3Store stores images in an S3-compatible bucket (AWS, minio, and friends).
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store builds an S3-backed image store from application configuration.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading s3 credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			// Custom endpoints (minio) need path-style bucket addressing.
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload writes the image under a unique key and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	key := objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image %q: %w", filename, err)
	}

	return s.publicURL + "/" + key, nil
}

// objectKey builds a collision-free key, keeping the original extension.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "uploads/" + uuid.New().String() + ext
}
