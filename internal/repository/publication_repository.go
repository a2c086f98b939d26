package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ficmh/techfest-api/internal/domain"
)

// PublicationRepository handles persistence for articles and podcasts.
type PublicationRepository interface {
	Create(ctx context.Context, pub *domain.Publication) error
	Update(ctx context.Context, pub *domain.Publication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Publication, error)
	List(ctx context.Context, filter PublicationFilter) ([]domain.Publication, error)
}

// PublicationFilter defines query params for publication listing.
type PublicationFilter struct {
	Kind   *domain.PublicationKind
	Limit  int
	Offset int
}

type publicationRepository struct {
	pool *pgxpool.Pool
}

// NewPublicationRepository instantiates the repository.
func NewPublicationRepository(pool *pgxpool.Pool) PublicationRepository {
	return &publicationRepository{pool: pool}
}

func (r *publicationRepository) Create(ctx context.Context, pub *domain.Publication) error {
	const query = `
        INSERT INTO publications (title, kind, summary, content_url, published_at)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		pub.Title,
		pub.Kind,
		pub.Summary,
		pub.ContentURL,
		pub.PublishedAt,
	).Scan(&pub.ID, &pub.CreatedAt, &pub.UpdatedAt)
}

func (r *publicationRepository) Update(ctx context.Context, pub *domain.Publication) error {
	const query = `
        UPDATE publications
        SET title=$1, kind=$2, summary=$3, content_url=$4, published_at=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		pub.Title,
		pub.Kind,
		pub.Summary,
		pub.ContentURL,
		pub.PublishedAt,
		pub.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM publications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *publicationRepository) GetByID(ctx context.Context, id string) (*domain.Publication, error) {
	const query = `
        SELECT id, title, kind, summary, content_url, published_at, created_at, updated_at
        FROM publications WHERE id=$1`

	var pub domain.Publication
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pub.ID,
		&pub.Title,
		&pub.Kind,
		&pub.Summary,
		&pub.ContentURL,
		&pub.PublishedAt,
		&pub.CreatedAt,
		&pub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (r *publicationRepository) List(ctx context.Context, filter PublicationFilter) ([]domain.Publication, error) {
	query := `
        SELECT id, title, kind, summary, content_url, published_at, created_at, updated_at
        FROM publications`
	args := []any{}
	clauses := []string{}

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		clauses = append(clauses, fmt.Sprintf("kind=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY published_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Publication
	for rows.Next() {
		var pub domain.Publication
		if err := rows.Scan(
			&pub.ID,
			&pub.Title,
			&pub.Kind,
			&pub.Summary,
			&pub.ContentURL,
			&pub.PublishedAt,
			&pub.CreatedAt,
			&pub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, pub)
	}
	return result, rows.Err()
}
