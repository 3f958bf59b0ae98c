// Package s3 stores payment proof screenshots in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxProofSize caps a single uploaded screenshot.
const MaxProofSize = 5 << 20

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// PutObjectAPI is the slice of *awss3.Client the store needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type ProofStore struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewProofStore(client PutObjectAPI, bucket, prefix string) (*ProofStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("s3 client")
	}
	if bucket == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}
	return &ProofStore{client: client, bucket: bucket, prefix: prefix}, nil
}

// NewClient loads the default AWS credential chain. A non-empty endpoint
// points the client at an S3-compatible server such as MinIO.
func NewClient(ctx context.Context, region, endpoint string) (*awss3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Save uploads the image under <prefix>/<order id><ext> and returns the key.
func (s *ProofStore) Save(ctx context.Context, orderID kernel.UUID, contentType string, data []byte) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("payment proof",
			fmt.Errorf("unsupported content type %q", contentType))
	}
	if len(data) == 0 {
		return "", errs.NewValueIsRequiredError("payment proof")
	}
	if len(data) > MaxProofSize {
		return "", errs.NewValueIsOutOfRangeError("payment proof size", len(data), 1, MaxProofSize)
	}

	key := path.Join(s.prefix, orderID.String()+ext)
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload payment proof: %w", err)
	}
	return key, nil
}
