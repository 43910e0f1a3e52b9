package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
)

// StubInvoiceStorage is an in-memory InvoiceStorage for development and tests.
// With AcceptAll set every ref exists; otherwise only refs handed out by
// UploadURL or added with Put do.
type StubInvoiceStorage struct {
	// BaseURL is the base URL for generated upload URLs
	BaseURL   string
	AcceptAll bool

	mu   sync.RWMutex
	refs map[string]struct{}
}

// Ensure StubInvoiceStorage implements InvoiceStorage
var _ purchasing.InvoiceStorage = (*StubInvoiceStorage)(nil)

// NewStubInvoiceStorage creates a new StubInvoiceStorage
func NewStubInvoiceStorage() *StubInvoiceStorage {
	return &StubInvoiceStorage{
		BaseURL: "https://storage.example.com",
		refs:    make(map[string]struct{}),
	}
}

// Put records ref as uploaded
func (s *StubInvoiceStorage) Put(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs[strings.TrimSpace(ref)] = struct{}{}
}

// Exists reports whether ref was recorded
func (s *StubInvoiceStorage) Exists(_ context.Context, ref string) (bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false, errors.New("invoice ref is required")
	}
	if s.AcceptAll {
		return true, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.refs[ref]
	return ok, nil
}

// UploadURL returns a fake upload target and records its ref as uploaded
func (s *StubInvoiceStorage) UploadURL(_ context.Context, businessID, purchaseOrderID uuid.UUID, contentType string) (*UploadTarget, error) {
	key := InvoiceKey(businessID, purchaseOrderID, contentType)
	expiresAt := time.Now().Add(DefaultPresignExpiration)
	s.Put(key)
	return &UploadTarget{
		Ref:       key,
		URL:       s.BaseURL + "/upload/" + key + "?expires=" + expiresAt.Format(time.RFC3339),
		ExpiresAt: expiresAt,
	}, nil
}
