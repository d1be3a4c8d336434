package valueobject_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
)

func TestNewGeoBounds(t *testing.T) {
	ne := valueobject.NewGeoCoordinate(12.5, -3.1)
	sw := valueobject.NewGeoCoordinate(10.0, -5.0)

	b := valueobject.NewGeoBounds(ne, sw)

	assert.Equal(t, 12.5, b.NorthEast.Latitude)
	assert.Equal(t, -3.1, b.NorthEast.Longitude)
	assert.Equal(t, 10.0, b.SouthWest.Latitude)
	assert.Equal(t, -5.0, b.SouthWest.Longitude)
	assert.Nil(t, b.Owner())
}

func TestGeoBounds_Owner(t *testing.T) {
	b := valueobject.NewGeoBounds(valueobject.NewGeoCoordinate(1, 2), valueobject.NewGeoCoordinate(3, 4))
	id := uuid.New()

	b.SetOwner(valueobject.Owner{ObjectID: id, FieldName: "area", Language: "de"})

	owner := b.Owner()
	require.NotNil(t, owner)
	assert.Equal(t, id, owner.ObjectID)
	assert.Equal(t, "area", owner.FieldName)
	assert.Equal(t, "de", owner.Language)

	owner.FieldName = "changed"
	assert.Equal(t, "area", b.Owner().FieldName)
}
