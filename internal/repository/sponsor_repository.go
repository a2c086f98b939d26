package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ficmh/techfest-api/internal/domain"
)

// SponsorRepository handles persistence for sponsors.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *domain.Sponsor) error
	Update(ctx context.Context, sponsor *domain.Sponsor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Sponsor, error)
	List(ctx context.Context) ([]domain.Sponsor, error)
}

type sponsorRepository struct {
	pool *pgxpool.Pool
}

// NewSponsorRepository instantiates the repository.
func NewSponsorRepository(pool *pgxpool.Pool) SponsorRepository {
	return &sponsorRepository{pool: pool}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `
        INSERT INTO sponsors (name, tier, website_url, logo_url)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		sponsor.Name,
		sponsor.Tier,
		sponsor.WebsiteURL,
		sponsor.LogoURL,
	).Scan(&sponsor.ID, &sponsor.CreatedAt, &sponsor.UpdatedAt)
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `
        UPDATE sponsors SET name=$1, tier=$2, website_url=$3, logo_url=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		sponsor.Name,
		sponsor.Tier,
		sponsor.WebsiteURL,
		sponsor.LogoURL,
		sponsor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sponsors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sponsorRepository) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	const query = `
        SELECT id, name, tier, website_url, logo_url, created_at, updated_at
        FROM sponsors WHERE id=$1`

	var sponsor domain.Sponsor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sponsor.ID,
		&sponsor.Name,
		&sponsor.Tier,
		&sponsor.WebsiteURL,
		&sponsor.LogoURL,
		&sponsor.CreatedAt,
		&sponsor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) List(ctx context.Context) ([]domain.Sponsor, error) {
	const query = `
        SELECT id, name, tier, website_url, logo_url, created_at, updated_at
        FROM sponsors
        ORDER BY CASE tier
            WHEN 'platinum' THEN 0
            WHEN 'gold' THEN 1
            WHEN 'silver' THEN 2
            ELSE 3
        END, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sponsor
	for rows.Next() {
		var sponsor domain.Sponsor
		if err := rows.Scan(
			&sponsor.ID,
			&sponsor.Name,
			&sponsor.Tier,
			&sponsor.WebsiteURL,
			&sponsor.LogoURL,
			&sponsor.CreatedAt,
			&sponsor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sponsor)
	}
	return result, rows.Err()
}
