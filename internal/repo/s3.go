package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds explicit construction parameters for the S3 backend.
// Credentials fall back to the default AWS chain when AccessKeyID is empty.
type S3Config struct {
	Bucket          string
	Region          string // default us-east-1
	Endpoint        string // optional; set for MinIO or other S3-compatible stores
	Prefix          string // optional object key prefix, e.g. "boards/"
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
	// HTTPClient overrides the transport; tests inject a fake here.
	HTTPClient *http.Client
}

// S3SnapshotRepo stores each snapshot as the object <prefix><key>.json.
type S3SnapshotRepo struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3SnapshotRepo builds an S3 client from cfg.
func NewS3SnapshotRepo(ctx context.Context, cfg S3Config) (*S3SnapshotRepo, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("repo.NewS3SnapshotRepo: bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("repo.NewS3SnapshotRepo: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
		// Snapshots are small; skip trailing checksums so S3-compatible
		// stores without aws-chunked support accept the upload.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	return &S3SnapshotRepo{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (r *S3SnapshotRepo) objectKey(key string) string {
	return r.prefix + key + ".json"
}

// Load downloads the snapshot object for key.
func (r *S3SnapshotRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, fmt.Errorf("repo.S3SnapshotRepo.Load: %w", err)
	}
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.S3SnapshotRepo.Load: %w", err)
	}
	defer func() { _ = out.Body.Close() }()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("repo.S3SnapshotRepo.Load: read body: %w", err)
	}
	return payload, true, nil
}

// Save uploads payload as the snapshot object for key, replacing any previous version.
func (r *S3SnapshotRepo) Save(ctx context.Context, key string, payload []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.S3SnapshotRepo.Save: %w", err)
	}
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(r.objectKey(key)),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("repo.S3SnapshotRepo.Save: %w", err)
	}
	return nil
}

// isS3NotFound reports whether err is a missing-object response.
func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
