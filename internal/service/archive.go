package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/models"
)

// ObjectPutter is the subset of the S3 client used by the archive
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver copies generated plans to an S3 bucket
type S3Archiver struct {
	client ObjectPutter
	bucket string
}

// Ensure S3Archiver implements PlanArchiver
var _ PlanArchiver = (*S3Archiver)(nil)

// NewS3Archiver creates an archiver from the configured S3 client
func NewS3Archiver(s3Config *config.S3Config) *S3Archiver {
	return &S3Archiver{
		client: s3Config.Client,
		bucket: s3Config.BucketName,
	}
}

// NewS3ArchiverWithClient creates an archiver on top of any ObjectPutter
func NewS3ArchiverWithClient(client ObjectPutter, bucket string) *S3Archiver {
	return &S3Archiver{
		client: client,
		bucket: bucket,
	}
}

// ArchiveKey is the object key a plan is stored under
func ArchiveKey(plan *models.GeneratedPlan) string {
	return fmt.Sprintf("plans/%s/%s.json", plan.UserID, plan.ID)
}

// Archive uploads the plan's raw JSON and returns the object key
func (a *S3Archiver) Archive(ctx context.Context, plan *models.GeneratedPlan) (string, error) {
	key := ArchiveKey(plan)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(plan.RawJSON)),
		ContentType: aws.String(jsonMIMEType),
		Metadata: map[string]string{
			"kind":  string(plan.Kind),
			"style": string(plan.Style),
			"model": plan.Model,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("[S3Archiver] Archived plan to s3://%s/%s", a.bucket, key)
	return key, nil
}
