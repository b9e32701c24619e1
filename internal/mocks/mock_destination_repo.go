package mocks

import (
	"context"

	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDestinationRepo struct {
	mock.Mock
}

func (m *MockDestinationRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Destination, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Destination), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockDestinationRepo) GetById(ctx context.Context, id int) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepo) GetByIds(ctx context.Context, ids []int) ([]*domain.Destination, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepo) IncrementLikes(ctx context.Context, id int) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}
