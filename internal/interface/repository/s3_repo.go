package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyTimestampLayout = "20060102T150405Z"

// S3StorageRepository stores raw payloads and processed artifacts as JSON
// objects. Raw payloads land in "<prefix>raw", processed artifacts in a
// bucket per data type ("<prefix>reservations" and so on).
type S3StorageRepository struct {
	logger       logger.Logger
	client       *s3.Client
	bucketPrefix string
}

// NewS3StorageRepository creates a new S3 storage repository
func NewS3StorageRepository(client *s3.Client, bucketPrefix string, logger logger.Logger) repository.StorageRepository {
	return &S3StorageRepository{
		logger:       logger,
		client:       client,
		bucketPrefix: bucketPrefix,
	}
}

// UploadRaw archives an untouched API payload for replay and audit
func (r *S3StorageRepository) UploadRaw(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error) {
	return r.upload(ctx, r.bucketPrefix+"raw", hotelCode, dataType, data)
}

// UploadProcessed stores a transformed artifact for downstream pickup
func (r *S3StorageRepository) UploadProcessed(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error) {
	return r.upload(ctx, r.bucketPrefix+dataType, hotelCode, dataType, data)
}

func (r *S3StorageRepository) upload(ctx context.Context, bucket, hotelCode, dataType string, data interface{}) (entity.UploadResult, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("failed to marshal %s payload: %w", dataType, err)
	}

	key := fmt.Sprintf("%s/%s-%s.json", hotelCode, dataType, time.Now().UTC().Format(keyTimestampLayout))

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("upload %s to s3://%s/%s: %w", dataType, bucket, key, err)
	}

	result := entity.UploadResult{
		Key: key,
		URL: fmt.Sprintf("s3://%s/%s", bucket, key),
	}

	r.logger.Info("Uploaded artifact",
		"hotelCode", hotelCode,
		"dataType", dataType,
		"bucket", bucket,
		"key", key,
		"bytes", len(body))

	return result, nil
}
