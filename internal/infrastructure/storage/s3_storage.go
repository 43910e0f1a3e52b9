// Package storage provides object storage for purchase order invoice images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
	infraconfig "github.com/restopos/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3InvoiceStorage implements InvoiceStorage
var _ purchasing.InvoiceStorage = (*S3InvoiceStorage)(nil)

// DefaultPresignExpiration is how long an upload URL stays valid
const DefaultPresignExpiration = 15 * time.Minute

// UploadTarget is a presigned location a client PUTs an invoice image to
type UploadTarget struct {
	Ref       string
	URL       string
	ExpiresAt time.Time
}

// objectAPI is the part of the S3 client the storage uses
type objectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// presignAPI is the part of the presign client the storage uses
type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3InvoiceStorage stores invoice images in an S3-compatible bucket
// (AWS S3, MinIO, LocalStack).
type S3InvoiceStorage struct {
	client            objectAPI
	presignClient     presignAPI
	bucket            string
	presignExpiration time.Duration
	logger            *zap.Logger
}

// S3InvoiceStorageOption is a functional option for configuring S3InvoiceStorage
type S3InvoiceStorageOption func(*S3InvoiceStorage)

// WithLogger sets a custom logger for S3InvoiceStorage
func WithLogger(logger *zap.Logger) S3InvoiceStorageOption {
	return func(s *S3InvoiceStorage) {
		s.logger = logger
	}
}

// WithPresignExpiration sets a custom presign expiration duration
func WithPresignExpiration(d time.Duration) S3InvoiceStorageOption {
	return func(s *S3InvoiceStorage) {
		s.presignExpiration = d
	}
}

// NewS3InvoiceStorage creates a new S3InvoiceStorage from configuration.
// Without static keys the default AWS credential chain is used.
func NewS3InvoiceStorage(ctx context.Context, cfg *infraconfig.StorageConfig, opts ...S3InvoiceStorageOption) (*S3InvoiceStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if (cfg.AccessKeyID == "") != (cfg.SecretAccessKey == "") {
		return nil, errors.New("storage access key id and secret access key must be set together")
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
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	var endpoint string
	if cfg.Endpoint != "" {
		endpoint, err = normalizeEndpoint(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	storage := &S3InvoiceStorage{
		client:            client,
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: DefaultPresignExpiration,
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(storage)
	}
	if storage.presignExpiration <= 0 {
		storage.presignExpiration = DefaultPresignExpiration
	}
	return storage, nil
}

// normalizeEndpoint adds a scheme when missing and validates the URL
func normalizeEndpoint(endpoint string) (string, error) {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid storage endpoint %q", endpoint)
	}
	return endpoint, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
// Call this during application startup to ensure the bucket is ready.
func (s *S3InvoiceStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating invoice bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		// Lost a creation race with another instance
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Exists reports whether the invoice image ref has been uploaded
func (s *S3InvoiceStorage) Exists(ctx context.Context, ref string) (bool, error) {
	key := strings.TrimSpace(ref)
	if key == "" {
		return false, errors.New("invoice ref is required")
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check invoice %q: %w", key, err)
	}
	return true, nil
}

// isNotFound matches the typed not-found errors and the bare codes some
// S3-compatible servers return instead
func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "NoSuchKey")
}

// InvoiceKey builds the object key an invoice image of a purchase order is stored under
func InvoiceKey(businessID, purchaseOrderID uuid.UUID, contentType string) string {
	return fmt.Sprintf("invoices/%s/%s/%s%s", businessID, purchaseOrderID, uuid.NewString(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// UploadURL presigns a PUT for a new invoice image of a purchase order.
// The returned ref is what the receive request later names.
func (s *S3InvoiceStorage) UploadURL(ctx context.Context, businessID, purchaseOrderID uuid.UUID, contentType string) (*UploadTarget, error) {
	key := InvoiceKey(businessID, purchaseOrderID, contentType)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presignClient.PresignPutObject(ctx, input, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}
	s.logger.Debug("Presigned invoice upload",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
	)
	return &UploadTarget{
		Ref:       key,
		URL:       req.URL,
		ExpiresAt: time.Now().Add(s.presignExpiration),
	}, nil
}

// Bucket returns the bucket name
func (s *S3InvoiceStorage) Bucket() string {
	return s.bucket
}
