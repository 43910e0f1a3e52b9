package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubInvoiceStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown ref does not exist", func(t *testing.T) {
		s := NewStubInvoiceStorage()
		ok, err := s.Exists(ctx, "invoices/nope.jpg")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty ref is an error", func(t *testing.T) {
		s := NewStubInvoiceStorage()
		_, err := s.Exists(ctx, "  ")
		assert.Error(t, err)
	})

	t.Run("uploaded ref exists", func(t *testing.T) {
		s := NewStubInvoiceStorage()
		businessID, poID := uuid.New(), uuid.New()

		target, err := s.UploadURL(ctx, businessID, poID, "image/png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(target.Ref, "invoices/"+businessID.String()+"/"+poID.String()+"/"))
		assert.True(t, strings.HasSuffix(target.Ref, ".png"))
		assert.Contains(t, target.URL, "https://storage.example.com/upload/")

		ok, err := s.Exists(ctx, target.Ref)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("AcceptAll", func(t *testing.T) {
		s := NewStubInvoiceStorage()
		s.AcceptAll = true
		ok, err := s.Exists(ctx, "anything")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
