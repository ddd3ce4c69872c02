// Package sample implements the sample text repository using PostgreSQL.
package sample

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

const columns = "id, curriculum_id, file_name, kind, content, created_at, updated_at"

// Repo provides sample text persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sample text repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores a sample text, replacing the content of an existing text
// with the same curriculum, file name and kind. An unknown curriculum yields
// domain.ErrNotFound.
func (r *Repo) Upsert(ctx context.Context, s *domain.SampleText) (*domain.SampleText, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert("sample_texts").
		Columns("id", "curriculum_id", "file_name", "kind", "content").
		Values(id, s.CurriculumID, s.FileName, string(s.Kind), s.Content).
		Suffix("ON CONFLICT (curriculum_id, file_name, kind) DO UPDATE SET content = EXCLUDED.content, updated_at = now() RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert sample: %w", err)
	}

	out, err := scanSample(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "sample_text", s.FileName)
	}
	return out, nil
}

// ListByCurriculum returns the texts of a curriculum ordered by file name,
// samples before allowed lists for equal names.
func (r *Repo) ListByCurriculum(ctx context.Context, curriculumID uuid.UUID) ([]*domain.SampleText, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From("sample_texts").
		Where(squirrel.Eq{"curriculum_id": curriculumID}).
		OrderBy("file_name", "kind DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list samples: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.SampleText, 0)
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	return list, nil
}

func scanSample(row pgx.Row) (*domain.SampleText, error) {
	var (
		s    domain.SampleText
		kind string
	)
	if err := row.Scan(&s.ID, &s.CurriculumID, &s.FileName, &kind, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Kind = domain.SampleKind(kind)
	return &s, nil
}
