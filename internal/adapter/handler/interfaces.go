package handler

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/pagination"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/transfer"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ObjectService interface {
	Create(ctx context.Context, input object.CreateInput) (*entity.Object, error)
	List(ctx context.Context, input object.ListInput) ([]entity.Object, *pagination.Info, error)
	GetByID(ctx context.Context, userID, objectID uuid.UUID) (*entity.Object, error)
	GetBounds(ctx context.Context, objectID uuid.UUID) (*valueobject.GeoBounds, error)
	Update(ctx context.Context, userID, objectID uuid.UUID, input object.UpdateInput) (*entity.Object, error)
	Delete(ctx context.Context, userID, objectID uuid.UUID) error
	ListVersions(ctx context.Context, userID, objectID uuid.UUID) ([]entity.Version, error)
	GetVersion(ctx context.Context, userID, objectID uuid.UUID, number int) (*object.VersionDetail, error)
}

type TransferService interface {
	WriteCSV(ctx context.Context, userID uuid.UUID) ([]byte, int, error)
	Export(ctx context.Context, userID uuid.UUID) (*transfer.ExportResult, error)
	Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*transfer.ImportResult, error)
}
