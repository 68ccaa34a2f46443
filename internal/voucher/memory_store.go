package voucher

import (
	"context"
	"sync"

	"storefront-admin/internal/model"
)

// MemoryStore is an in-memory Lookup keyed by normalized code.
type MemoryStore struct {
	mu       sync.RWMutex
	vouchers map[string]model.Voucher
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		vouchers: make(map[string]model.Voucher, capacity),
	}
}

// GetByCode returns a copy of the stored voucher, or nil when the code is unknown.
func (s *MemoryStore) GetByCode(_ context.Context, code string) (*model.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vouchers[model.NormalizeVoucherCode(code)]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// Put adds or replaces a voucher.
func (s *MemoryStore) Put(v model.Voucher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.Code = model.NormalizeVoucherCode(v.Code)
	s.vouchers[v.Code] = v
}

// Size returns the number of vouchers in the store.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vouchers)
}
