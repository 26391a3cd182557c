package assets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 serves objects from a map, recording requested keys.
type fakeS3 struct {
	objects map[string]string
	keys    []string
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	f.keys = append(f.keys, key)

	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(strings.NewReader(body)),
		ContentType: aws.String("image/png"),
	}, nil
}

func TestS3SourceOpen(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"branding/logo.png": "PNGDATA"}}
	src := NewS3Source(fake, "my-bucket", "branding/")

	rc, contentType, err := src.Open(context.Background(), "logo.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "PNGDATA" {
		t.Errorf("content = %q, want %q", data, "PNGDATA")
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q, want image/png", contentType)
	}
	if len(fake.keys) != 1 || fake.keys[0] != "branding/logo.png" {
		t.Errorf("requested keys = %v, want [branding/logo.png]", fake.keys)
	}
}

func TestS3SourceMissing(t *testing.T) {
	src := NewS3Source(&fakeS3{objects: map[string]string{}}, "my-bucket", "")

	if _, _, err := src.Open(context.Background(), "nope.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestS3SourceSanitizesNames(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	src := NewS3Source(fake, "my-bucket", "branding/")

	if _, _, err := src.Open(context.Background(), "../secrets"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if len(fake.keys) != 0 {
		t.Errorf("traversal name should never reach the bucket, requested %v", fake.keys)
	}
}
