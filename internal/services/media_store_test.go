package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type recordingUploader struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (u *recordingUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.input = input
	b, _ := io.ReadAll(input.Body)
	u.body = string(b)
	if u.err != nil {
		return nil, u.err
	}
	return &manager.UploadOutput{}, nil
}

func TestS3MediaStorePutImage(t *testing.T) {
	up := &recordingUploader{}
	store := &S3MediaStore{uploader: up, bucket: "venues", publicBaseURL: "https://cdn.example.com/"}

	obj, err := store.Put(context.Background(), "Skyline.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"), 10)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(obj.Key, "media/images/") || !strings.HasSuffix(obj.Key, ".jpg") {
		t.Fatalf("unexpected key %q", obj.Key)
	}
	if obj.URL != "https://cdn.example.com/"+obj.Key {
		t.Fatalf("unexpected url %q", obj.URL)
	}
	if aws.ToString(up.input.Bucket) != "venues" || aws.ToString(up.input.Key) != obj.Key {
		t.Fatalf("unexpected upload input %+v", up.input)
	}
	if aws.ToString(up.input.ContentType) != "image/jpeg" || up.body != "jpeg-bytes" {
		t.Fatalf("unexpected upload content %q %q", aws.ToString(up.input.ContentType), up.body)
	}
	if obj.Size != 10 {
		t.Fatalf("expected size 10 got %d", obj.Size)
	}
}

func TestS3MediaStorePutAudioUsesAudioPrefix(t *testing.T) {
	store := &S3MediaStore{uploader: &recordingUploader{}, bucket: "venues", publicBaseURL: "https://cdn.example.com"}

	obj, err := store.Put(context.Background(), "hurt.mp3", "audio/mpeg", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(obj.Key, "media/audio/") {
		t.Fatalf("unexpected key %q", obj.Key)
	}
}

func TestS3MediaStoreRejectsOtherTypes(t *testing.T) {
	up := &recordingUploader{}
	store := &S3MediaStore{uploader: up, bucket: "venues"}

	_, err := store.Put(context.Background(), "notes.txt", "text/plain", strings.NewReader("x"), 1)
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia got %v", err)
	}
	if up.input != nil {
		t.Fatalf("nothing should be uploaded")
	}
}

func TestS3MediaStoreWrapsUploadError(t *testing.T) {
	boom := errors.New("access denied")
	store := &S3MediaStore{uploader: &recordingUploader{err: boom}, bucket: "venues"}

	_, err := store.Put(context.Background(), "a.png", "image/png", strings.NewReader("x"), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upload error got %v", err)
	}
}
