// Package s3 stores proof-of-delivery payloads in an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultContentType = "application/octet-stream"

// ObjectPutter is the part of the S3 client the storage needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type ProofStorage struct {
	client ObjectPutter
	bucket string
	newKey func(deliveryID kernel.UUID) string
}

func NewProofStorage(client ObjectPutter, bucket string) *ProofStorage {
	return &ProofStorage{
		client: client,
		bucket: bucket,
		newKey: func(deliveryID kernel.UUID) string {
			return fmt.Sprintf("proofs/%s/%s", deliveryID, kernel.NewUUID())
		},
	}
}

// Store uploads imageData and returns an s3:// reference to the object.
// A data URL is decoded and keeps its media type; any other payload is stored as is.
func (s *ProofStorage) Store(ctx context.Context, deliveryID kernel.UUID, imageData string) (string, error) {
	if imageData == "" {
		return "", errs.NewValueIsRequiredError("imageData")
	}

	body, contentType, err := decodePayload(imageData)
	if err != nil {
		return "", err
	}

	key := s.newKey(deliveryID)
	_, err = s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload proof for delivery %s: %w", deliveryID, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func decodePayload(imageData string) ([]byte, string, error) {
	if !strings.HasPrefix(imageData, "data:") {
		return []byte(imageData), defaultContentType, nil
	}

	meta, data, ok := strings.Cut(strings.TrimPrefix(imageData, "data:"), ",")
	if !ok {
		return nil, "", errs.NewValueIsInvalidErrorWithCause("imageData", errors.New("data URL has no payload"))
	}

	contentType := defaultContentType
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if mediaType != "" {
		contentType = mediaType
	}
	if !isBase64 {
		return []byte(data), contentType, nil
	}

	body, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", errs.NewValueIsInvalidErrorWithCause("imageData", err)
	}
	return body, contentType, nil
}

// InlineProofStorage keeps the payload itself as the reference. It is used
// when no bucket is configured.
type InlineProofStorage struct{}

func (InlineProofStorage) Store(_ context.Context, _ kernel.UUID, imageData string) (string, error) {
	if imageData == "" {
		return "", errs.NewValueIsRequiredError("imageData")
	}
	return imageData, nil
}
