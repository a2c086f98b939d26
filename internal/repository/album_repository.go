package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ficmh/techfest-api/internal/domain"
)

// AlbumRepository handles persistence for gallery albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	List(ctx context.Context, limit, offset int) ([]domain.Album, error)
}

type albumRepository struct {
	pool *pgxpool.Pool
}

// NewAlbumRepository instantiates the repository.
func NewAlbumRepository(pool *pgxpool.Pool) AlbumRepository {
	return &albumRepository{pool: pool}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	const query = `
        INSERT INTO albums (title, description, event_id, cover_image_url, image_urls)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		album.Title,
		album.Description,
		album.EventID,
		album.CoverImageURL,
		album.ImageURLs,
	).Scan(&album.ID, &album.CreatedAt, &album.UpdatedAt)
}

func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	const query = `
        UPDATE albums
        SET title=$1, description=$2, event_id=$3, cover_image_url=$4, image_urls=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		album.Title,
		album.Description,
		album.EventID,
		album.CoverImageURL,
		album.ImageURLs,
		album.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	const query = `
        SELECT id, title, description, event_id, cover_image_url, image_urls, created_at, updated_at
        FROM albums WHERE id=$1`

	var album domain.Album
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Title,
		&album.Description,
		&album.EventID,
		&album.CoverImageURL,
		&album.ImageURLs,
		&album.CreatedAt,
		&album.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) List(ctx context.Context, limit, offset int) ([]domain.Album, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, title, description, event_id, cover_image_url, image_urls, created_at, updated_at
        FROM albums ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Album
	for rows.Next() {
		var album domain.Album
		if err := rows.Scan(
			&album.ID,
			&album.Title,
			&album.Description,
			&album.EventID,
			&album.CoverImageURL,
			&album.ImageURLs,
			&album.CreatedAt,
			&album.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, album)
	}
	return result, rows.Err()
}
