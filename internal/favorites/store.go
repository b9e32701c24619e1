// Package favorites owns the favorite set of a single device and keeps it in
// sync with the device's durable slot.
package favorites

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/malapronta/internal/domain"
)

// Store is confined to one owner. It is not safe for concurrent use; two
// stores writing the same slot resolve as last write wins.
type Store struct {
	slot   domain.FavoritesSlot
	key    string
	logger *slog.Logger
	set    domain.FavoriteSet
}

func NewStore(slot domain.FavoritesSlot, key string, logger *slog.Logger) *Store {
	return &Store{
		slot:   slot,
		key:    key,
		logger: logger,
		set:    domain.NewFavoriteSet(),
	}
}

// Load replaces the in-memory set with the slot content. A missing,
// unreadable or corrupt slot yields an empty set.
func (s *Store) Load(ctx context.Context) domain.FavoriteSet {
	s.set = domain.NewFavoriteSet()

	payload, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			s.logger.Warn("failed to read favorites slot, starting empty", "key", s.key, "error", err)
		}

		return s.set
	}

	set, err := domain.DecodeFavorites(payload)
	if err != nil {
		s.logger.Warn("corrupt favorites slot, starting empty", "key", s.key, "error", err)
		return s.set
	}

	s.set = set

	return s.set
}

func (s *Store) Set() domain.FavoriteSet {
	return s.set
}

func (s *Store) Contains(id int) bool {
	return s.set.Contains(id)
}

// Add, Remove and Toggle update the in-memory set first and then persist it.
// A returned error is always a *domain.StorageError and leaves the updated
// set in place.
func (s *Store) Add(ctx context.Context, id int) error {
	return s.apply(ctx, s.set.Add(id))
}

func (s *Store) Remove(ctx context.Context, id int) error {
	return s.apply(ctx, s.set.Remove(id))
}

func (s *Store) Toggle(ctx context.Context, id int) error {
	return s.apply(ctx, s.set.Toggle(id))
}

// Persist overwrites the slot with the current set.
func (s *Store) Persist(ctx context.Context) error {
	payload, err := domain.EncodeFavorites(s.set)
	if err != nil {
		return &domain.StorageError{Key: s.key, Op: "encode", Err: err}
	}

	err = s.slot.Set(ctx, s.key, payload)
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return storageErr
		}

		return &domain.StorageError{Key: s.key, Op: "write", Err: err}
	}

	return nil
}

func (s *Store) apply(ctx context.Context, next domain.FavoriteSet) error {
	s.set = next
	return s.Persist(ctx)
}
