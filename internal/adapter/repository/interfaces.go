package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ObjectRepository interface {
	Create(ctx context.Context, obj *entity.Object) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Object, error)
	List(ctx context.Context, userID uuid.UUID, params ObjectListParams) ([]entity.Object, *pagination.Info, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Object, error)
	Update(ctx context.Context, obj *entity.Object) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type ObjectListParams struct {
	Pagination     pagination.Params
	IncludeDeleted bool
}

type VersionRepository interface {
	Create(ctx context.Context, version *entity.Version) error
	ListByObjectID(ctx context.Context, objectID uuid.UUID) ([]entity.Version, error)
	GetByNumber(ctx context.Context, objectID uuid.UUID, number int) (*entity.Version, error)
}

// PackedCache keeps the packed encoding of an object's bounds field.
// Get returns nil, nil on a miss.
type PackedCache interface {
	Get(ctx context.Context, objectID uuid.UUID) (*fielddef.PackedPair, error)
	Set(ctx context.Context, objectID uuid.UUID, packed *fielddef.PackedPair) error
	Delete(ctx context.Context, objectID uuid.UUID) error
}
