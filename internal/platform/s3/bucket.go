package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vexxhost/magnum/internal/config"
)

// MaxObjectSize bounds how much of an object Read accepts.
const MaxObjectSize = 1 << 20

// ErrObjectTooLarge is returned when an object exceeds MaxObjectSize.
var ErrObjectTooLarge = errors.New("object exceeds size limit")

// Bucket reads and writes objects in one bucket.
type Bucket struct {
	api    *s3.Client
	name   string
	region string
}

// Option adjusts the S3 client options.
type Option func(*s3.Options)

// WithPathStyle forces path-style bucket addressing.
func WithPathStyle() Option {
	return func(o *s3.Options) {
		o.UsePathStyle = true
	}
}

// Open returns the bucket described by cfg. No request is made.
func Open(ctx context.Context, cfg config.S3Config, opts ...Option) (*Bucket, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("object storage bucket is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		for _, opt := range opts {
			opt(o)
		}
	})

	return &Bucket{api: api, name: cfg.Bucket, region: cfg.Region}, nil
}

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.name }

// Region returns the region requests are signed for.
func (b *Bucket) Region() string { return b.region }

// Read returns the object stored at key. Use IsNotFound to detect a
// missing object or bucket.
func (b *Bucket) Read(ctx context.Context, key string) ([]byte, error) {
	out, err := b.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", b.name, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", b.name, key, err)
	}
	if len(data) > MaxObjectSize {
		return nil, fmt.Errorf("%s/%s: %w", b.name, key, ErrObjectTooLarge)
	}
	return data, nil
}

// Write stores data at key, replacing any existing object.
func (b *Bucket) Write(ctx context.Context, key string, data []byte) error {
	_, err := b.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.name),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/yaml"),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", b.name, key, err)
	}
	return nil
}
