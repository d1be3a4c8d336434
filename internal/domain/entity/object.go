package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
)

type Object struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Bounds     *valueobject.GeoBounds
	SearchData string
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

func NewObject(userID uuid.UUID, title string, bounds *valueobject.GeoBounds) *Object {
	now := time.Now().UTC()
	return &Object{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Bounds:    bounds,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (o *Object) Update(title string, bounds *valueobject.GeoBounds) {
	o.Title = title
	o.Bounds = bounds
	o.UpdatedAt = time.Now().UTC()
}

func (o *Object) BumpVersion() {
	o.Version++
}

func (o *Object) SoftDelete() {
	now := time.Now().UTC()
	o.DeletedAt = &now
	o.UpdatedAt = now
}

func (o *Object) IsDeleted() bool {
	return o.DeletedAt != nil
}
