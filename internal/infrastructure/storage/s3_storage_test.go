package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeObjectAPI struct {
	headObjectErr   error
	headBucketErr   error
	createBucketErr error
	headedKeys      []string
	createdBuckets  int
}

func (f *fakeObjectAPI) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.headedKeys = append(f.headedKeys, *in.Key)
	if f.headObjectErr != nil {
		return nil, f.headObjectErr
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeObjectAPI) HeadBucket(_ context.Context, _ *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headBucketErr != nil {
		return nil, f.headBucketErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeObjectAPI) CreateBucket(_ context.Context, _ *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.createdBuckets++
	if f.createBucketErr != nil {
		return nil, f.createBucketErr
	}
	return &s3.CreateBucketOutput{}, nil
}

type fakePresigner struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example.com/" + *in.Key + "?X-Amz-Signature=abc", Method: "PUT"}, nil
}

func newFakeStorage(t *testing.T, api *fakeObjectAPI, presigner *fakePresigner) *S3InvoiceStorage {
	return &S3InvoiceStorage{
		client:            api,
		presignClient:     presigner,
		bucket:            "invoices",
		presignExpiration: DefaultPresignExpiration,
		logger:            zaptest.NewLogger(t),
	}
}

func TestNewS3InvoiceStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3InvoiceStorage(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3InvoiceStorage(ctx, &config.StorageConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("half a key pair returns error", func(t *testing.T) {
		_, err := NewS3InvoiceStorage(ctx, &config.StorageConfig{Bucket: "b", AccessKeyID: "id"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("valid config with custom endpoint", func(t *testing.T) {
		s, err := NewS3InvoiceStorage(ctx, &config.StorageConfig{
			Bucket:          "invoices",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			Endpoint:        "localhost:9000",
			UsePathStyle:    true,
		}, WithPresignExpiration(5*time.Minute), WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.Equal(t, "invoices", s.Bucket())
		assert.Equal(t, 5*time.Minute, s.presignExpiration)
	})

	t.Run("non-positive expiration falls back to default", func(t *testing.T) {
		s, err := NewS3InvoiceStorage(ctx, &config.StorageConfig{Bucket: "invoices"}, WithPresignExpiration(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultPresignExpiration, s.presignExpiration)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("minio:9000")
	require.NoError(t, err)
	assert.Equal(t, "https://minio:9000", got)

	got, err = normalizeEndpoint("http://localhost:4566")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566", got)

	_, err = normalizeEndpoint("http://")
	assert.Error(t, err)
}

func TestS3InvoiceStorage_Exists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		err     error
		want    bool
		wantErr bool
	}{
		{"object present", nil, true, false},
		{"typed not found", &types.NotFound{}, false, false},
		{"typed no such key", &types.NoSuchKey{}, false, false},
		{"untyped not found code", errors.New("api error NotFound: Not Found"), false, false},
		{"other failure", errors.New("connection refused"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeObjectAPI{headObjectErr: tt.err}
			s := newFakeStorage(t, api, &fakePresigner{})

			ok, err := s.Exists(ctx, " invoices/a.jpg ")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, []string{"invoices/a.jpg"}, api.headedKeys)
		})
	}

	t.Run("empty ref", func(t *testing.T) {
		s := newFakeStorage(t, &fakeObjectAPI{}, &fakePresigner{})
		_, err := s.Exists(ctx, "")
		assert.Error(t, err)
	})
}

func TestS3InvoiceStorage_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("existing bucket", func(t *testing.T) {
		api := &fakeObjectAPI{}
		require.NoError(t, newFakeStorage(t, api, &fakePresigner{}).EnsureBucket(ctx))
		assert.Zero(t, api.createdBuckets)
	})

	t.Run("missing bucket is created", func(t *testing.T) {
		api := &fakeObjectAPI{headBucketErr: &types.NotFound{}}
		require.NoError(t, newFakeStorage(t, api, &fakePresigner{}).EnsureBucket(ctx))
		assert.Equal(t, 1, api.createdBuckets)
	})

	t.Run("creation race is tolerated", func(t *testing.T) {
		api := &fakeObjectAPI{headBucketErr: &types.NoSuchBucket{}, createBucketErr: &types.BucketAlreadyOwnedByYou{}}
		assert.NoError(t, newFakeStorage(t, api, &fakePresigner{}).EnsureBucket(ctx))
	})

	t.Run("head failure surfaces", func(t *testing.T) {
		api := &fakeObjectAPI{headBucketErr: errors.New("forbidden")}
		assert.Error(t, newFakeStorage(t, api, &fakePresigner{}).EnsureBucket(ctx))
	})
}

func TestS3InvoiceStorage_UploadURL(t *testing.T) {
	ctx := context.Background()
	businessID, poID := uuid.New(), uuid.New()

	t.Run("presigns a put under the purchase order prefix", func(t *testing.T) {
		presigner := &fakePresigner{}
		s := newFakeStorage(t, &fakeObjectAPI{}, presigner)

		target, err := s.UploadURL(ctx, businessID, poID, "image/jpeg")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(target.Ref, "invoices/"+businessID.String()+"/"+poID.String()+"/"))
		assert.True(t, strings.HasSuffix(target.Ref, ".jpg"))
		assert.Contains(t, target.URL, target.Ref)
		assert.WithinDuration(t, time.Now().Add(DefaultPresignExpiration), target.ExpiresAt, time.Minute)
		assert.Equal(t, "invoices", *presigner.lastInput.Bucket)
		assert.Equal(t, "image/jpeg", *presigner.lastInput.ContentType)
	})

	t.Run("presign failure", func(t *testing.T) {
		s := newFakeStorage(t, &fakeObjectAPI{}, &fakePresigner{err: errors.New("no credentials")})
		_, err := s.UploadURL(ctx, businessID, poID, "")
		assert.Error(t, err)
	})
}
