package domain

import (
	"context"
)

type Destination struct {
	ID          int
	Name        string
	Description string
	Contact     string
	ImageURL    string
	Likes       int
}

type DestinationRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]*Destination, *Metadata, error)
	GetById(ctx context.Context, id int) (*Destination, error)
	GetByIds(ctx context.Context, ids []int) ([]*Destination, error)
	IncrementLikes(ctx context.Context, id int) (*Destination, error)
}
