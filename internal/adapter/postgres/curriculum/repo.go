// Package curriculum implements the curriculum repository using PostgreSQL.
package curriculum

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres"
	"github.com/heartmarshall/synphony-backend/internal/domain"
)

const columns = "id, name, settings, created_at, updated_at"

// Repo provides curriculum persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new curriculum repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores the settings document of the named curriculum, creating the
// curriculum if needed. The settings must be a JSON document.
func (r *Repo) Upsert(ctx context.Context, name string, settings []byte) (*domain.Curriculum, error) {
	query, args, err := postgres.Builder.
		Insert("curricula").
		Columns("id", "name", "settings").
		Values(uuid.New(), name, settings).
		Suffix("ON CONFLICT (name) DO UPDATE SET settings = EXCLUDED.settings, updated_at = now() RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert curriculum: %w", err)
	}

	cur, err := scanCurriculum(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "curriculum", name)
	}
	return cur, nil
}

// GetByName returns the named curriculum or domain.ErrNotFound.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Curriculum, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From("curricula").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get curriculum: %w", err)
	}

	cur, err := scanCurriculum(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "curriculum", name)
	}
	return cur, nil
}

// List returns all curricula ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Curriculum, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From("curricula").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list curricula: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.Curriculum, 0)
	for rows.Next() {
		cur, err := scanCurriculum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan curriculum: %w", err)
		}
		list = append(list, cur)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	return list, nil
}

// Delete removes the named curriculum together with its samples.
func (r *Repo) Delete(ctx context.Context, name string) error {
	query, args, err := postgres.Builder.
		Delete("curricula").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete curriculum: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "curriculum", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("curriculum %s: %w", name, domain.ErrNotFound)
	}
	return nil
}

func scanCurriculum(row pgx.Row) (*domain.Curriculum, error) {
	var c domain.Curriculum
	if err := row.Scan(&c.ID, &c.Name, &c.Settings, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
