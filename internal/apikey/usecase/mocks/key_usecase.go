// Package mocks provides mock implementations of the API key use cases for testing callers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
)

// MockKeyUseCase is a mock implementation of KeyUseCase for testing.
type MockKeyUseCase struct {
	mock.Mock
}

// NewMockKeyUseCase creates a MockKeyUseCase whose expectations are asserted on cleanup.
func NewMockKeyUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockKeyUseCase {
	m := &MockKeyUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method of KeyUseCase.
func (m *MockKeyUseCase) Create(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
) (string, error) {
	args := m.Called(ctx, secret, scope, level)
	return args.String(0), args.Error(1)
}

// CreateBatch mocks the CreateBatch method of KeyUseCase.
func (m *MockKeyUseCase) CreateBatch(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
	count int,
) ([]string, error) {
	args := m.Called(ctx, secret, scope, level, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Validate mocks the Validate method of KeyUseCase.
func (m *MockKeyUseCase) Validate(ctx context.Context, secret, token, scope string) (bool, error) {
	args := m.Called(ctx, secret, token, scope)
	return args.Bool(0), args.Error(1)
}
