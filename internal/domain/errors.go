package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrSlotEmpty      = errors.New("storage slot is empty")
	ErrNoSeatSelected = errors.New("select a seat to continue")
)

// StorageError reports a failed read or write of a durable slot. It is never
// fatal: the in-memory state that triggered the write stays authoritative.
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// InvalidRangeError is returned when a seat map is constructed from an
// inventory that cannot describe a bus.
type InvalidRangeError struct {
	TotalSeats int
	SeatID     int
}

func (e *InvalidRangeError) Error() string {
	if e.TotalSeats < 1 {
		return fmt.Sprintf("total seats must be positive, got %d", e.TotalSeats)
	}

	return fmt.Sprintf("seat %d is outside of range [1, %d]", e.SeatID, e.TotalSeats)
}
