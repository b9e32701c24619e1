package mocks

import (
	"context"

	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTripRepo struct {
	mock.Mock
}

func (m *MockTripRepo) GetByDestinationId(ctx context.Context, destinationID int) (*domain.Trip, error) {
	args := m.Called(ctx, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepo) GetBookedTrips(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookedTrip, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.BookedTrip), args.Get(1).(*domain.Metadata), args.Error(2)
}
