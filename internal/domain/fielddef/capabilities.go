// Package fielddef holds class field descriptors and the codecs that move
// field values between their domain type and the representations the rest of
// the system persists, indexes, edits and exchanges.
package fielddef

import "github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"

// StorageCodec converts a value to and from its primary storage columns.
type StorageCodec interface {
	DataForResource(b *valueobject.GeoBounds) Columns
	DataFromResource(cols Columns, owner *valueobject.Owner) *valueobject.GeoBounds
}

// QueryCodec converts a value to the columns of the query table.
type QueryCodec interface {
	DataForQueryResource(b *valueobject.GeoBounds) Columns
}

type EqualityComparable interface {
	IsEqual(oldValue, newValue *valueobject.GeoBounds) bool
}

type TypeDescriptor interface {
	GetName() string
	IsMandatory() bool
	FieldType() string
	ColumnType() map[string]string
	QueryColumnType() map[string]string
}

var (
	_ StorageCodec       = (*Geobounds)(nil)
	_ QueryCodec         = (*Geobounds)(nil)
	_ EqualityComparable = (*Geobounds)(nil)
	_ TypeDescriptor     = (*Geobounds)(nil)
)
