package valueobject

import "github.com/google/uuid"

// GeoBounds is a rectangular region given by its north-east and south-west
// corners. A nil *GeoBounds means the attribute has no value.
type GeoBounds struct {
	NorthEast GeoCoordinate
	SouthWest GeoCoordinate

	owner *Owner
}

func NewGeoBounds(northEast, southWest GeoCoordinate) *GeoBounds {
	return &GeoBounds{
		NorthEast: northEast,
		SouthWest: southWest,
	}
}

// Owner identifies the record slot a reconstructed value was read from.
// It is informational only and plays no part in equality or encoding.
type Owner struct {
	ObjectID  uuid.UUID
	FieldName string
	Language  string
}

func (b *GeoBounds) SetOwner(owner Owner) {
	b.owner = &owner
}

// Owner returns the back-reference, or nil if the value was built without one.
func (b *GeoBounds) Owner() *Owner {
	if b.owner == nil {
		return nil
	}
	o := *b.owner
	return &o
}
