package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
)

type VersionRepo struct {
	pool *pgxpool.Pool
}

func NewVersionRepo(pool *pgxpool.Pool) *VersionRepo {
	return &VersionRepo{pool: pool}
}

func (r *VersionRepo) Create(ctx context.Context, version *entity.Version) error {
	query := `
		INSERT INTO object_versions (id, object_id, number, title, value, value2, preview, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		version.ID, version.ObjectID, version.Number, version.Title,
		nullableString(version.Value), nullableString(version.Value2),
		version.Preview, version.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting version: %w", err)
	}
	return nil
}

func (r *VersionRepo) ListByObjectID(ctx context.Context, objectID uuid.UUID) ([]entity.Version, error) {
	query := `
		SELECT id, object_id, number, title, value, value2, preview, created_at
		FROM object_versions
		WHERE object_id = $1
		ORDER BY number DESC
	`
	rows, err := r.pool.Query(ctx, query, objectID)
	if err != nil {
		return nil, fmt.Errorf("querying versions: %w", err)
	}
	defer rows.Close()

	var versions []entity.Version
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		versions = append(versions, *v)
	}

	return versions, rows.Err()
}

func (r *VersionRepo) GetByNumber(ctx context.Context, objectID uuid.UUID, number int) (*entity.Version, error) {
	query := `
		SELECT id, object_id, number, title, value, value2, preview, created_at
		FROM object_versions
		WHERE object_id = $1 AND number = $2
	`
	v, err := scanVersion(r.pool.QueryRow(ctx, query, objectID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("querying version: %w", err)
	}
	return v, nil
}

func scanVersion(row pgx.Row) (*entity.Version, error) {
	var v entity.Version
	var value, value2 *string

	if err := row.Scan(&v.ID, &v.ObjectID, &v.Number, &v.Title, &value, &value2, &v.Preview, &v.CreatedAt); err != nil {
		return nil, err
	}
	if value != nil {
		v.Value = *value
	}
	if value2 != nil {
		v.Value2 = *value2
	}
	return &v, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
