package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ficmh/techfest-api/internal/domain"
)

// TeamRepository handles persistence for team members.
type TeamRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context, filter TeamFilter) ([]domain.TeamMember, error)
}

// TeamFilter defines query params for team listing.
type TeamFilter struct {
	Club *domain.Club
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository instantiates the repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (name, position, club, photo_url, linkedin_url, instagram_url, display_order)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.Name,
		member.Position,
		member.Club,
		member.PhotoURL,
		member.LinkedInURL,
		member.InstagramURL,
		member.DisplayOrder,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *teamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        UPDATE team_members
        SET name=$1, position=$2, club=$3, photo_url=$4, linkedin_url=$5, instagram_url=$6, display_order=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Position,
		member.Club,
		member.PhotoURL,
		member.LinkedInURL,
		member.InstagramURL,
		member.DisplayOrder,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	const query = `
        SELECT id, name, position, club, photo_url, linkedin_url, instagram_url, display_order, created_at, updated_at
        FROM team_members WHERE id=$1`

	var member domain.TeamMember
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Club,
		&member.PhotoURL,
		&member.LinkedInURL,
		&member.InstagramURL,
		&member.DisplayOrder,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) List(ctx context.Context, filter TeamFilter) ([]domain.TeamMember, error) {
	query := `
        SELECT id, name, position, club, photo_url, linkedin_url, instagram_url, display_order, created_at, updated_at
        FROM team_members`
	args := []any{}
	clauses := []string{}

	if filter.Club != nil {
		args = append(args, *filter.Club)
		clauses = append(clauses, fmt.Sprintf("club=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY display_order ASC, name ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Position,
			&member.Club,
			&member.PhotoURL,
			&member.LinkedInURL,
			&member.InstagramURL,
			&member.DisplayOrder,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}
