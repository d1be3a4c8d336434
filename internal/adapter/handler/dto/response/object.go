package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/pagination"
)

type ObjectResponse struct {
	ID        uuid.UUID               `json:"id"`
	Title     string                  `json:"title"`
	Bounds    *fielddef.EditorPayload `json:"bounds"`
	Version   int                     `json:"version"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type BoundsResponse struct {
	ObjectID uuid.UUID               `json:"object_id"`
	Bounds   *fielddef.EditorPayload `json:"bounds"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ObjectsListResponse struct {
	Objects    []ObjectResponse   `json:"objects"`
	Pagination PaginationResponse `json:"pagination"`
}

type VersionResponse struct {
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	Preview      string    `json:"preview"`
	DiffEditable bool      `json:"diff_editable"`
	CreatedAt    time.Time `json:"created_at"`
}

type VersionDetailResponse struct {
	VersionResponse
	Bounds *fielddef.EditorPayload `json:"bounds"`
}

// ObjectFromEntity renders the editmode payload of the bounds field.
func ObjectFromEntity(o *entity.Object, field *fielddef.Geobounds) ObjectResponse {
	return ObjectResponse{
		ID:        o.ID,
		Title:     o.Title,
		Bounds:    field.DataForEditmode(o.Bounds),
		Version:   o.Version,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// GridRowFromEntity renders the grid payload of the bounds field.
func GridRowFromEntity(o *entity.Object, field *fielddef.Geobounds) ObjectResponse {
	return ObjectResponse{
		ID:        o.ID,
		Title:     o.Title,
		Bounds:    field.DataForGrid(o.Bounds),
		Version:   o.Version,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func GridFromEntities(objects []entity.Object, field *fielddef.Geobounds) []ObjectResponse {
	result := make([]ObjectResponse, 0, len(objects))
	for _, o := range objects {
		result = append(result, GridRowFromEntity(&o, field))
	}
	return result
}

func VersionFromEntity(v *entity.Version, field *fielddef.Geobounds) VersionResponse {
	return VersionResponse{
		Number:       v.Number,
		Title:        v.Title,
		Preview:      v.Preview,
		DiffEditable: field.IsDiffChangeAllowed(),
		CreatedAt:    v.CreatedAt,
	}
}

func VersionsFromEntities(versions []entity.Version, field *fielddef.Geobounds) []VersionResponse {
	result := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		result = append(result, VersionFromEntity(&v, field))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
