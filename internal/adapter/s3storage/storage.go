// Package s3storage stores campaign images on an S3-compatible object
// store (minio in the default deployment).
package s3storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"orbit-ads/internal/config/configs"
)

// Storage implements port.ImageStorage on an S3 client.
type Storage struct {
	client *s3.Client
	bucket string
}

// New builds the S3 client with static credentials and path-style
// addressing, which minio requires.
func New(cfg configs.S3) *Storage {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	})
	return &Storage{client: client, bucket: cfg.Bucket}
}

// Put uploads one object under key.
func (s *Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}
