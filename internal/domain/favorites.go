package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// FavoritesSlotKey is the base name of the durable slot holding favorites.
// It must stay stable across releases, otherwise users lose their favorites.
const FavoritesSlotKey = "malapronta-favorites"

// FavoriteSet is an immutable set of favorited destination ids. Every
// mutating operation returns a new set and leaves the receiver untouched.
type FavoriteSet struct {
	ids map[int]struct{}
}

func NewFavoriteSet(ids ...int) FavoriteSet {
	set := FavoriteSet{ids: make(map[int]struct{}, len(ids))}

	for _, id := range ids {
		set.ids[id] = struct{}{}
	}

	return set
}

func (s FavoriteSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s FavoriteSet) Len() int {
	return len(s.ids)
}

func (s FavoriteSet) Add(id int) FavoriteSet {
	if s.Contains(id) {
		return s
	}

	next := s.clone(len(s.ids) + 1)
	next.ids[id] = struct{}{}

	return next
}

func (s FavoriteSet) Remove(id int) FavoriteSet {
	if !s.Contains(id) {
		return s
	}

	next := s.clone(len(s.ids))
	delete(next.ids, id)

	return next
}

func (s FavoriteSet) Toggle(id int) FavoriteSet {
	if s.Contains(id) {
		return s.Remove(id)
	}

	return s.Add(id)
}

// IDs returns the members in ascending order.
func (s FavoriteSet) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	for id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}

	return true
}

func (s FavoriteSet) clone(capacity int) FavoriteSet {
	next := FavoriteSet{ids: make(map[int]struct{}, capacity)}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}

	return next
}

// EncodeFavorites serializes the set into the slot format: a JSON array of
// integers. Ids are written in ascending order so identical sets produce
// identical payloads.
func EncodeFavorites(set FavoriteSet) ([]byte, error) {
	return json.Marshal(set.IDs())
}

func DecodeFavorites(payload []byte) (FavoriteSet, error) {
	var ids []int

	err := json.Unmarshal(payload, &ids)
	if err != nil {
		return NewFavoriteSet(), fmt.Errorf("malformed favorites payload: %w", err)
	}

	return NewFavoriteSet(ids...), nil
}

// FavoritesSlot is a durable key-value location that outlives the process.
// Get returns ErrSlotEmpty when nothing has been stored under key.
type FavoritesSlot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

func DeviceFavoritesKey(deviceID string) string {
	return fmt.Sprintf("%s:%s", FavoritesSlotKey, deviceID)
}
