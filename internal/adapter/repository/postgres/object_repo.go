package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/repository"
	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/pagination"
)

// ObjectRepo persists objects and their bounds field. The field's columns live
// in the objects table and are mirrored into objects_query for listing.
type ObjectRepo struct {
	pool    *pgxpool.Pool
	field   *fielddef.Geobounds
	columns []string
}

func NewObjectRepo(pool *pgxpool.Pool, field *fielddef.Geobounds) *ObjectRepo {
	return &ObjectRepo{
		pool:    pool,
		field:   field,
		columns: field.ColumnNames(),
	}
}

func (r *ObjectRepo) Create(ctx context.Context, obj *entity.Object) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO objects (id, user_id, title, %s, search_data, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.columnList(""))

	args := []any{obj.ID, obj.UserID, obj.Title}
	args = append(args, r.columnArgs(r.field.DataForResource(obj.Bounds))...)
	args = append(args, obj.SearchData, obj.Version, obj.CreatedAt, obj.UpdatedAt)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting object: %w", err)
	}

	queryInsert := fmt.Sprintf(`
		INSERT INTO objects_query (id, %s)
		VALUES ($1, $2, $3, $4, $5)
	`, r.columnList(""))

	args = append([]any{obj.ID}, r.columnArgs(r.field.DataForQueryResource(obj.Bounds))...)
	if _, err := tx.Exec(ctx, queryInsert, args...); err != nil {
		return fmt.Errorf("inserting object query row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *ObjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Object, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, %s, search_data, version, created_at, updated_at, deleted_at
		FROM objects
		WHERE id = $1
	`, r.columnList(""))

	obj, err := r.scanObject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("querying object: %w", err)
	}
	return obj, nil
}

func (r *ObjectRepo) List(ctx context.Context, userID uuid.UUID, params repository.ObjectListParams) ([]entity.Object, *pagination.Info, error) {
	var conditions []string
	args := []any{userID}

	conditions = append(conditions, "o.user_id = $1")
	if !params.IncludeDeleted {
		conditions = append(conditions, "o.deleted_at IS NULL")
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM objects o WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting objects: %w", err)
	}

	// Grid rows take the bounds from the query table.
	query := fmt.Sprintf(`
		SELECT o.id, o.user_id, o.title, %s, o.search_data, o.version, o.created_at, o.updated_at, o.deleted_at
		FROM objects o
		JOIN objects_query q ON q.id = o.id
		WHERE %s
		ORDER BY o.updated_at DESC
		LIMIT $2 OFFSET $3
	`, r.columnList("q"), whereClause)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	objects, err := r.queryObjects(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	pageInfo := pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total)
	return objects, pageInfo, nil
}

func (r *ObjectRepo) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Object, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, %s, search_data, version, created_at, updated_at, deleted_at
		FROM objects
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`, r.columnList(""))

	return r.queryObjects(ctx, query, userID)
}

func (r *ObjectRepo) Update(ctx context.Context, obj *entity.Object) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		UPDATE objects
		SET title = $2, %s, search_data = $7, version = $8, updated_at = $9, deleted_at = $10
		WHERE id = $1
	`, r.assignments(2))

	args := []any{obj.ID, obj.Title}
	args = append(args, r.columnArgs(r.field.DataForResource(obj.Bounds))...)
	args = append(args, obj.SearchData, obj.Version, obj.UpdatedAt, obj.DeletedAt)

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating object: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrObjectNotFound
	}

	queryUpdate := fmt.Sprintf(`
		UPDATE objects_query
		SET %s
		WHERE id = $1
	`, r.assignments(1))

	args = append([]any{obj.ID}, r.columnArgs(r.field.DataForQueryResource(obj.Bounds))...)
	if _, err := tx.Exec(ctx, queryUpdate, args...); err != nil {
		return fmt.Errorf("updating object query row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *ObjectRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE objects
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft deleting object: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *ObjectRepo) queryObjects(ctx context.Context, query string, args ...any) ([]entity.Object, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying objects: %w", err)
	}
	defer rows.Close()

	var objects []entity.Object
	for rows.Next() {
		obj, err := r.scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning object: %w", err)
		}
		objects = append(objects, *obj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objects: %w", err)
	}
	return objects, nil
}

func (r *ObjectRepo) scanObject(row pgx.Row) (*entity.Object, error) {
	var obj entity.Object
	values := make([]*float64, len(r.columns))

	dest := []any{&obj.ID, &obj.UserID, &obj.Title}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &obj.SearchData, &obj.Version, &obj.CreatedAt, &obj.UpdatedAt, &obj.DeletedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	cols := make(fielddef.Columns, len(r.columns))
	for i, name := range r.columns {
		cols[name] = values[i]
	}
	obj.Bounds = r.field.DataFromResource(cols, &valueobject.Owner{
		ObjectID:  obj.ID,
		FieldName: r.field.GetName(),
	})

	return &obj, nil
}

func (r *ObjectRepo) columnList(alias string) string {
	quoted := make([]string, len(r.columns))
	for i, c := range r.columns {
		ident := pgx.Identifier{c}
		if alias != "" {
			ident = pgx.Identifier{alias, c}
		}
		quoted[i] = ident.Sanitize()
	}
	return strings.Join(quoted, ", ")
}

// assignments renders "col = $n" pairs for the bounds columns, numbering
// placeholders from start.
func (r *ObjectRepo) assignments(start int) string {
	parts := make([]string, len(r.columns))
	for i, c := range r.columns {
		parts[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{c}.Sanitize(), start+i+1)
	}
	return strings.Join(parts, ", ")
}

func (r *ObjectRepo) columnArgs(cols fielddef.Columns) []any {
	args := make([]any, len(r.columns))
	for i, c := range r.columns {
		args[i] = cols[c]
	}
	return args
}
