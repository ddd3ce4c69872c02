package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCurriculum inserts a curriculum with a unique name and minimal
// settings.
func SeedCurriculum(t *testing.T, pool *pgxpool.Pool) domain.Curriculum {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cur := domain.Curriculum{
		ID:        uuid.New(),
		Name:      "curriculum-" + uniqueSuffix(),
		Settings:  []byte(`{"letters": "a b c"}`),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO curricula (id, name, settings, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cur.ID, cur.Name, cur.Settings, cur.CreatedAt, cur.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCurriculum: %v", err)
	}
	return cur
}

// SeedSample inserts a sample text of the given kind.
func SeedSample(t *testing.T, pool *pgxpool.Pool, curriculumID uuid.UUID, fileName string, kind domain.SampleKind, content string) domain.SampleText {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	sample := domain.SampleText{
		ID:           uuid.New(),
		CurriculumID: curriculumID,
		FileName:     fileName,
		Kind:         kind,
		Content:      content,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sample_texts (id, curriculum_id, file_name, kind, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sample.ID, sample.CurriculumID, sample.FileName, string(sample.Kind), sample.Content, sample.CreatedAt, sample.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSample: %v", err)
	}
	return sample
}
