// Package archive uploads exported ledger reports to S3-compatible
// storage so a copy survives outside the client's download folder.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	appconfig "parlad-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores exported reports
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

// S3Uploader talks to any S3-compatible endpoint (R2, MinIO, AWS)
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// New builds an uploader from config. Returns nil when archiving is
// not configured; callers treat a nil Uploader as disabled.
func New(cfg *appconfig.Config) Uploader {
	if cfg.Archive.Endpoint == "" || cfg.Archive.Bucket == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		log.Printf("[Archive] client configuration failed: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})

	return &S3Uploader{client: client, bucket: cfg.Archive.Bucket}
}

// Upload stores one report object
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, data []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("archive upload %s: %w", key, err)
	}
	return nil
}
