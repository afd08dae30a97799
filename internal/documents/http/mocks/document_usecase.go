// Package mocks provides mock implementations for testing document HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
)

// MockDocumentUseCase is a mock implementation of usecase.DocumentUseCase.
type MockDocumentUseCase struct {
	mock.Mock
}

func (m *MockDocumentUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
) ([]*documentsDomain.Document, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentsDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) (*documentsDomain.Document, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentsDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *documentsDomain.CreateDocumentInput,
) (*documentsDomain.Document, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentsDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
	input *documentsDomain.UpdateDocumentInput,
) (*documentsDomain.Document, error) {
	args := m.Called(ctx, principal, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentsDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
