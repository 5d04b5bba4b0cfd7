package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBackend is a mock implementation of store.Backend
type MockBackend struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

// Put mocks the Put method
func (m *MockBackend) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
