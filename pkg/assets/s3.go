package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source serves assets from an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	src := assets.NewS3Source(s3.NewFromConfig(cfg), "my-bucket", "branding/")
//	app := app.New(app.Config{Assets: src})
type S3Source struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Source creates an S3-backed source. prefix is prepended to every
// asset name (e.g. "branding/").
func NewS3Source(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open fetches the named object. Names are sanitized the same way as
// directory assets before they become bucket keys.
func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	rel, ok := sanitize(name)
	if !ok {
		return nil, "", ErrNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + rel),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) || isNotFoundErr(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("assets: get s3 object %q: %w", rel, err)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}

// isNotFoundErr catches NotFound responses that the SDK does not surface
// as *types.NoSuchKey (HeadObject-style 404s behind some proxies).
func isNotFoundErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "NotFound")
}
