package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/metinatakli/malapronta/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RedisFavoritesSlotTestSuite struct {
	suite.Suite
	redisClient *mocks.MockRedisClient
	slot        *RedisFavoritesSlot
}

func (s *RedisFavoritesSlotTestSuite) SetupTest() {
	s.redisClient = new(mocks.MockRedisClient)
	s.slot = NewRedisFavoritesSlot(s.redisClient)
}

func TestRedisFavoritesSlotSuite(t *testing.T) {
	suite.Run(t, new(RedisFavoritesSlotTestSuite))
}

func (s *RedisFavoritesSlotTestSuite) TestGet() {
	tests := []struct {
		name        string
		cmd         *redis.StringCmd
		wantPayload []byte
		wantErr     error
	}{
		{
			name:        "should return stored payload",
			cmd:         redis.NewStringResult(`[1,2]`, nil),
			wantPayload: []byte(`[1,2]`),
		},
		{
			name:    "should report empty slot when key is missing",
			cmd:     redis.NewStringResult("", redis.Nil),
			wantErr: domain.ErrSlotEmpty,
		},
		{
			name:    "should wrap redis failures",
			cmd:     redis.NewStringResult("", mocks.MockRedisError{Msg: "LOADING"}),
			wantErr: mocks.MockRedisError{Msg: "LOADING"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.redisClient.AssertExpectations(s.T())

			s.redisClient.On("Get", mock.Anything, "malapronta-favorites:d1").Return(tt.cmd)

			payload, err := s.slot.Get(context.Background(), "malapronta-favorites:d1")

			if tt.wantErr != nil {
				s.True(errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			s.Require().NoError(err)
			s.Equal(tt.wantPayload, payload)
		})
	}
}

func (s *RedisFavoritesSlotTestSuite) TestSet() {
	payload := []byte(`[4]`)

	s.redisClient.On("Set", mock.Anything, "malapronta-favorites:d1", payload, mock.Anything).
		Return(redis.NewStatusResult("OK", nil)).Once()

	s.NoError(s.slot.Set(context.Background(), "malapronta-favorites:d1", payload))

	s.redisClient.On("Set", mock.Anything, "malapronta-favorites:d2", payload, mock.Anything).
		Return(redis.NewStatusResult("", errors.New("OOM command not allowed"))).Once()

	err := s.slot.Set(context.Background(), "malapronta-favorites:d2", payload)
	s.ErrorContains(err, "OOM command not allowed")

	s.redisClient.AssertExpectations(s.T())
}
