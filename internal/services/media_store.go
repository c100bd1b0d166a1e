package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"moodvenue/internal/config"
	"moodvenue/internal/models"
)

// ErrUnsupportedMedia is returned for anything that is not an image or audio file.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// MediaStore keeps venue images, album art and song files.
type MediaStore interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.MediaObject, error)
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3MediaStore writes objects under media/<kind>/ in one bucket and serves them from PublicBaseURL.
type S3MediaStore struct {
	uploader      uploader
	bucket        string
	publicBaseURL string
}

func NewS3MediaStore(s3Config *config.S3Config) *S3MediaStore {
	return &S3MediaStore{
		uploader:      manager.NewUploader(s3Config.Client),
		bucket:        s3Config.Bucket,
		publicBaseURL: s3Config.PublicBaseURL,
	}
}

func (s *S3MediaStore) Put(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.MediaObject, error) {
	kind, err := mediaKind(contentType)
	if err != nil {
		return nil, err
	}

	key := path.Join("media", kind, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &models.MediaObject{
		Key:         key,
		URL:         strings.TrimRight(s.publicBaseURL, "/") + "/" + key,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func mediaKind(contentType string) (string, error) {
	major, _, _ := strings.Cut(contentType, "/")
	switch strings.ToLower(major) {
	case "image":
		return "images", nil
	case "audio":
		return "audio", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, contentType)
	}
}
