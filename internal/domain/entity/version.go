package entity

import (
	"time"

	"github.com/google/uuid"
)

// Version is a snapshot of an object's bounds field. The bounds are kept in
// their packed form; Value and Value2 are empty when the field had no value.
type Version struct {
	ID        uuid.UUID
	ObjectID  uuid.UUID
	Number    int
	Title     string
	Value     string
	Value2    string
	Preview   string
	CreatedAt time.Time
}

func NewVersion(objectID uuid.UUID, number int, title, value, value2, preview string) *Version {
	return &Version{
		ID:        uuid.New(),
		ObjectID:  objectID,
		Number:    number,
		Title:     title,
		Value:     value,
		Value2:    value2,
		Preview:   preview,
		CreatedAt: time.Now().UTC(),
	}
}
