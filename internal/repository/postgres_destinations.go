package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/malapronta/internal/domain"
)

var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PostgresDestinationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDestinationRepository(db *pgxpool.Pool) *PostgresDestinationRepository {
	return &PostgresDestinationRepository{
		db: db,
	}
}

func (p *PostgresDestinationRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Destination, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, name, description, contact, image_url, likes
		FROM destinations
		WHERE $1 = ''
			OR name ILIKE '%' || $1 || '%'
			OR description ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	term := likePatternEscaper.Replace(strings.TrimSpace(pagination.Term))

	rows, err := p.db.Query(ctx, query, term, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	destinations := []*domain.Destination{}

	for rows.Next() {
		var destination domain.Destination

		err := rows.Scan(
			&totalRecords,
			&destination.ID,
			&destination.Name,
			&destination.Description,
			&destination.Contact,
			&destination.ImageURL,
			&destination.Likes,
		)
		if err != nil {
			return nil, nil, err
		}

		destinations = append(destinations, &destination)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return destinations, metadata, nil
}

func (p *PostgresDestinationRepository) GetById(ctx context.Context, id int) (*domain.Destination, error) {
	query := `
		SELECT id, name, description, contact, image_url, likes
		FROM destinations
		WHERE id = $1
	`

	var destination domain.Destination

	err := p.db.QueryRow(ctx, query, id).Scan(
		&destination.ID,
		&destination.Name,
		&destination.Description,
		&destination.Contact,
		&destination.ImageURL,
		&destination.Likes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &destination, nil
}

func (p *PostgresDestinationRepository) GetByIds(ctx context.Context, ids []int) ([]*domain.Destination, error) {
	destinations := []*domain.Destination{}

	if len(ids) == 0 {
		return destinations, nil
	}

	query := `
		SELECT id, name, description, contact, image_url, likes
		FROM destinations
		WHERE id = ANY($1)
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var destination domain.Destination

		err := rows.Scan(
			&destination.ID,
			&destination.Name,
			&destination.Description,
			&destination.Contact,
			&destination.ImageURL,
			&destination.Likes,
		)
		if err != nil {
			return nil, err
		}

		destinations = append(destinations, &destination)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return destinations, nil
}

func (p *PostgresDestinationRepository) IncrementLikes(ctx context.Context, id int) (*domain.Destination, error) {
	query := `
		UPDATE destinations
		SET likes = likes + 1
		WHERE id = $1
		RETURNING id, name, description, contact, image_url, likes
	`

	var destination domain.Destination

	err := p.db.QueryRow(ctx, query, id).Scan(
		&destination.ID,
		&destination.Name,
		&destination.Description,
		&destination.Contact,
		&destination.ImageURL,
		&destination.Likes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &destination, nil
}
