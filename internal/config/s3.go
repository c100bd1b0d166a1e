// internal/config/s3.go
package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client used for media uploads
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	PublicBaseURL string
}

// NewS3Config builds an S3 client from the media settings. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3Config(ctx context.Context, settings S3Settings) (*S3Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
	}
	if settings.AccessKeyID != "" && settings.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID,
			settings.SecretAccessKey,
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        settings.Bucket,
		PublicBaseURL: settings.PublicBaseURL,
	}, nil
}
