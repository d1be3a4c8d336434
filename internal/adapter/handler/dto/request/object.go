package request

import (
	"github.com/goccy/go-json"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
)

type CreateObjectRequest struct {
	Title  string                  `json:"title" binding:"required,max=255"`
	Bounds *fielddef.EditorPayload `json:"bounds"`
}

// UpdateObjectRequest leaves the bounds untouched when the key is absent. An
// explicit null, or a payload with any null corner, clears the field.
type UpdateObjectRequest struct {
	Title  *string        `json:"title" binding:"omitempty,max=255"`
	Bounds OptionalBounds `json:"bounds"`
}

// OptionalBounds records whether the "bounds" key was sent at all.
type OptionalBounds struct {
	Set     bool
	Payload *fielddef.EditorPayload
}

func (o *OptionalBounds) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Payload = nil
	if string(data) == "null" {
		return nil
	}

	var p fielddef.EditorPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	o.Payload = &p
	return nil
}

type ListObjectsRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}
