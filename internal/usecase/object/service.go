package object

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/repository"
	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/pagination"
)

type Service struct {
	objectRepo  repository.ObjectRepository
	versionRepo repository.VersionRepository
	cache       repository.PackedCache
	field       *fielddef.Geobounds
	logger      *zap.Logger
}

func NewService(
	objectRepo repository.ObjectRepository,
	versionRepo repository.VersionRepository,
	cache repository.PackedCache,
	field *fielddef.Geobounds,
	logger *zap.Logger,
) *Service {
	return &Service{
		objectRepo:  objectRepo,
		versionRepo: versionRepo,
		cache:       cache,
		field:       field,
		logger:      logger,
	}
}

type CreateInput struct {
	UserID uuid.UUID
	Title  string
	Bounds *valueobject.GeoBounds
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Object, error) {
	if err := s.field.CheckValidity(input.Bounds, false); err != nil {
		return nil, err
	}

	obj := entity.NewObject(input.UserID, input.Title, input.Bounds)
	obj.SearchData = s.searchData(obj)

	if err := s.objectRepo.Create(ctx, obj); err != nil {
		return nil, fmt.Errorf("creating object: %w", err)
	}

	if err := s.versionRepo.Create(ctx, s.snapshot(obj)); err != nil {
		return nil, fmt.Errorf("creating version: %w", err)
	}

	s.storePacked(ctx, obj.ID, obj.Bounds)

	return obj, nil
}

type ListInput struct {
	UserID  uuid.UUID
	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Object, *pagination.Info, error) {
	params := repository.ObjectListParams{
		Pagination:     pagination.NewParams(input.Page, input.PerPage),
		IncludeDeleted: false,
	}

	objects, pageInfo, err := s.objectRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing objects: %w", err)
	}
	return objects, pageInfo, nil
}

func (s *Service) GetByID(ctx context.Context, userID, objectID uuid.UUID) (*entity.Object, error) {
	return s.loadOwned(ctx, userID, objectID)
}

// GetBounds returns the bounds of any live object, reading the packed cache
// before storage. A nil result with a nil error means the field is empty.
func (s *Service) GetBounds(ctx context.Context, objectID uuid.UUID) (*valueobject.GeoBounds, error) {
	owner := &valueobject.Owner{ObjectID: objectID, FieldName: s.field.GetName()}

	packed, err := s.cache.Get(ctx, objectID)
	if err != nil {
		s.logger.Warn("packed cache read failed", zap.String("object_id", objectID.String()), zap.Error(err))
	}
	if packed != nil {
		if cols := s.field.Unpack(packed); cols != nil {
			return s.field.DataFromResource(cols, owner), nil
		}
		observability.DecodeFailures.WithLabelValues("cache").Inc()
		s.logger.Warn("unreadable packed cache entry", zap.String("object_id", objectID.String()))
	}

	obj, err := s.objectRepo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if obj.IsDeleted() {
		return nil, domain.ErrObjectNotFound
	}

	s.storePacked(ctx, obj.ID, obj.Bounds)

	return obj.Bounds, nil
}

// UpdateInput carries optional changes. SetBounds distinguishes clearing the
// field (SetBounds with a nil Bounds) from leaving it untouched.
type UpdateInput struct {
	Title     *string
	Bounds    *valueobject.GeoBounds
	SetBounds bool
}

func (s *Service) Update(ctx context.Context, userID, objectID uuid.UUID, input UpdateInput) (*entity.Object, error) {
	obj, err := s.loadOwned(ctx, userID, objectID)
	if err != nil {
		return nil, err
	}

	title := obj.Title
	bounds := obj.Bounds

	if input.Title != nil {
		title = *input.Title
	}
	if input.SetBounds {
		if err := s.field.CheckValidity(input.Bounds, false); err != nil {
			return nil, err
		}
		bounds = input.Bounds
	}

	if title == obj.Title && s.field.IsEqual(obj.Bounds, bounds) {
		return obj, nil
	}

	obj.Update(title, bounds)
	obj.BumpVersion()
	obj.SearchData = s.searchData(obj)

	if err := s.objectRepo.Update(ctx, obj); err != nil {
		return nil, fmt.Errorf("updating object: %w", err)
	}

	if err := s.versionRepo.Create(ctx, s.snapshot(obj)); err != nil {
		return nil, fmt.Errorf("creating version: %w", err)
	}

	s.storePacked(ctx, obj.ID, obj.Bounds)

	return obj, nil
}

func (s *Service) Delete(ctx context.Context, userID, objectID uuid.UUID) error {
	obj, err := s.objectRepo.GetByID(ctx, objectID)
	if err != nil {
		return err
	}

	if obj.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.objectRepo.SoftDelete(ctx, objectID); err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}

	if err := s.cache.Delete(ctx, objectID); err != nil {
		s.logger.Warn("packed cache delete failed", zap.String("object_id", objectID.String()), zap.Error(err))
	}

	return nil
}

func (s *Service) ListVersions(ctx context.Context, userID, objectID uuid.UUID) ([]entity.Version, error) {
	if _, err := s.loadOwned(ctx, userID, objectID); err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.ListByObjectID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	return versions, nil
}

type VersionDetail struct {
	Version *entity.Version
	Bounds  *valueobject.GeoBounds
}

func (s *Service) GetVersion(ctx context.Context, userID, objectID uuid.UUID, number int) (*VersionDetail, error) {
	if _, err := s.loadOwned(ctx, userID, objectID); err != nil {
		return nil, err
	}

	v, err := s.versionRepo.GetByNumber(ctx, objectID, number)
	if err != nil {
		return nil, err
	}

	var bounds *valueobject.GeoBounds
	if v.Value != "" || v.Value2 != "" {
		cols := s.field.Unpack(&fielddef.PackedPair{Value: v.Value, Value2: v.Value2})
		if cols == nil {
			observability.DecodeFailures.WithLabelValues("version").Inc()
		} else {
			bounds = s.field.DataFromResource(cols, nil)
		}
	}

	return &VersionDetail{Version: v, Bounds: bounds}, nil
}

func (s *Service) loadOwned(ctx context.Context, userID, objectID uuid.UUID) (*entity.Object, error) {
	obj, err := s.objectRepo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if obj.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if obj.IsDeleted() {
		return nil, domain.ErrObjectNotFound
	}

	return obj, nil
}

func (s *Service) snapshot(obj *entity.Object) *entity.Version {
	var value, value2 string
	if packed := s.field.Pack(obj.Bounds); packed != nil {
		value, value2 = packed.Value, packed.Value2
	}
	return entity.NewVersion(obj.ID, obj.Version, obj.Title, value, value2, s.field.VersionPreview(obj.Bounds))
}

func (s *Service) storePacked(ctx context.Context, objectID uuid.UUID, bounds *valueobject.GeoBounds) {
	if err := s.cache.Set(ctx, objectID, s.field.Pack(bounds)); err != nil {
		s.logger.Warn("packed cache write failed", zap.String("object_id", objectID.String()), zap.Error(err))
	}
}

func (s *Service) searchData(obj *entity.Object) string {
	return strings.TrimSpace(obj.Title + " " + s.field.DataForSearchIndex(obj.Bounds))
}
