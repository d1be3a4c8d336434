package fielddef

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
)

const (
	FieldTypeGeobounds = "geobounds"

	SuffixNElongitude = "NElongitude"
	SuffixNElatitude  = "NElatitude"
	SuffixSWlongitude = "SWlongitude"
	SuffixSWlatitude  = "SWlatitude"

	columnSeparator = "__"
)

var boundsColumnType = map[string]string{
	SuffixNElongitude: "double",
	SuffixNElatitude:  "double",
	SuffixSWlongitude: "double",
	SuffixSWlatitude:  "double",
}

// Geobounds describes a bounding box field of a class and converts its values.
// A descriptor is immutable once built and may be shared by any number of
// goroutines.
type Geobounds struct {
	Name      string
	Title     string
	Mandatory bool
}

func NewGeobounds(name, title string, mandatory bool) *Geobounds {
	return &Geobounds{
		Name:      name,
		Title:     title,
		Mandatory: mandatory,
	}
}

func (f *Geobounds) GetName() string   { return f.Name }
func (f *Geobounds) IsMandatory() bool { return f.Mandatory }
func (f *Geobounds) FieldType() string { return FieldTypeGeobounds }

func (f *Geobounds) ColumnType() map[string]string {
	return copyColumnType()
}

func (f *Geobounds) QueryColumnType() map[string]string {
	return copyColumnType()
}

// Column returns the storage column name for one of the Suffix constants.
func (f *Geobounds) Column(suffix string) string {
	return f.Name + columnSeparator + suffix
}

// ColumnNames lists the storage columns in a stable order.
func (f *Geobounds) ColumnNames() []string {
	return []string{
		f.Column(SuffixNElongitude),
		f.Column(SuffixNElatitude),
		f.Column(SuffixSWlongitude),
		f.Column(SuffixSWlatitude),
	}
}

func (f *Geobounds) DataForResource(b *valueobject.GeoBounds) Columns {
	if b == nil {
		return Columns{
			f.Column(SuffixNElongitude): nil,
			f.Column(SuffixNElatitude):  nil,
			f.Column(SuffixSWlongitude): nil,
			f.Column(SuffixSWlatitude):  nil,
		}
	}

	return Columns{
		f.Column(SuffixNElongitude): float64Ptr(b.NorthEast.Longitude),
		f.Column(SuffixNElatitude):  float64Ptr(b.NorthEast.Latitude),
		f.Column(SuffixSWlongitude): float64Ptr(b.SouthWest.Longitude),
		f.Column(SuffixSWlatitude):  float64Ptr(b.SouthWest.Latitude),
	}
}

// DataFromResource rebuilds the bounds only when all four columns are set and
// non-zero. A corner lying exactly on the equator or the prime meridian reads
// back as no value.
func (f *Geobounds) DataFromResource(cols Columns, owner *valueobject.Owner) *valueobject.GeoBounds {
	neLng := cols[f.Column(SuffixNElongitude)]
	neLat := cols[f.Column(SuffixNElatitude)]
	swLng := cols[f.Column(SuffixSWlongitude)]
	swLat := cols[f.Column(SuffixSWlatitude)]

	if !truthy(neLng) || !truthy(neLat) || !truthy(swLng) || !truthy(swLat) {
		return nil
	}

	b := valueobject.NewGeoBounds(
		valueobject.NewGeoCoordinate(*neLat, *neLng),
		valueobject.NewGeoCoordinate(*swLat, *swLng),
	)
	if owner != nil {
		b.SetOwner(*owner)
	}
	return b
}

func (f *Geobounds) DataForQueryResource(b *valueobject.GeoBounds) Columns {
	return f.DataForResource(b)
}

func (f *Geobounds) DataForEditmode(b *valueobject.GeoBounds) *EditorPayload {
	if b == nil {
		return nil
	}
	return &EditorPayload{
		NElongitude: float64Ptr(b.NorthEast.Longitude),
		NElatitude:  float64Ptr(b.NorthEast.Latitude),
		SWlongitude: float64Ptr(b.SouthWest.Longitude),
		SWlatitude:  float64Ptr(b.SouthWest.Latitude),
	}
}

func (f *Geobounds) DataForGrid(b *valueobject.GeoBounds) *EditorPayload {
	return f.DataForEditmode(b)
}

// DataFromEditmode accepts zero coordinates; only missing fields make the
// result empty.
func (f *Geobounds) DataFromEditmode(p *EditorPayload) *valueobject.GeoBounds {
	if p == nil || p.NElongitude == nil || p.NElatitude == nil || p.SWlongitude == nil || p.SWlatitude == nil {
		return nil
	}
	return valueobject.NewGeoBounds(
		valueobject.NewGeoCoordinate(*p.NElatitude, *p.NElongitude),
		valueobject.NewGeoCoordinate(*p.SWlatitude, *p.SWlongitude),
	)
}

func (f *Geobounds) VersionPreview(b *valueobject.GeoBounds) string {
	if b == nil {
		return ""
	}
	return formatPoint(b.NorthEast) + " " + formatPoint(b.SouthWest)
}

func (f *Geobounds) ForCsvExport(b *valueobject.GeoBounds) string {
	if b == nil {
		return ""
	}
	return formatPoint(b.NorthEast) + "|" + formatPoint(b.SouthWest)
}

// FromCsvImport parses "lon,lat|lon,lat". Anything it cannot read yields nil.
// Components that are empty or the literal "0" count as missing, and NaN or
// infinite components are unreadable.
func (f *Geobounds) FromCsvImport(value string) *valueobject.GeoBounds {
	points := strings.Split(value, "|")
	if len(points) != 2 {
		return nil
	}

	northEast := strings.Split(points[0], ",")
	southWest := strings.Split(points[1], ",")
	if len(northEast) < 2 || len(southWest) < 2 {
		return nil
	}

	parts := []string{northEast[0], northEast[1], southWest[0], southWest[1]}
	nums := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "0" {
			return nil
		}
		n, err := strconv.ParseFloat(p, 64)
		if err != nil || !finite(n) {
			return nil
		}
		nums[i] = n
	}

	return valueobject.NewGeoBounds(
		valueobject.NewGeoCoordinate(nums[1], nums[0]),
		valueobject.NewGeoCoordinate(nums[3], nums[2]),
	)
}

func (f *Geobounds) DataForSearchIndex(_ *valueobject.GeoBounds) string {
	return ""
}

func (f *Geobounds) IsDiffChangeAllowed() bool {
	return true
}

// Pack encodes the bounds into two text slots. It returns nil for no value.
// Every read path yields finite coordinates, so encoding only fails for bounds
// built by hand from NaN or infinity; those pack to nil like no value.
func (f *Geobounds) Pack(b *valueobject.GeoBounds) *PackedPair {
	if b == nil {
		return nil
	}

	value, err := json.Marshal([]float64{b.NorthEast.Latitude, b.NorthEast.Longitude})
	if err != nil {
		return nil
	}
	value2, err := json.Marshal([]float64{b.SouthWest.Latitude, b.SouthWest.Longitude})
	if err != nil {
		return nil
	}

	return &PackedPair{
		Value:  string(value),
		Value2: string(value2),
	}
}

// Unpack expands a packed pair back into storage columns. It returns nil when
// either slot is empty or cannot be decoded.
func (f *Geobounds) Unpack(p *PackedPair) Columns {
	if p == nil || p.Value == "" || p.Value2 == "" {
		return nil
	}

	ne, ok := decodePair(p.Value)
	if !ok {
		return nil
	}
	sw, ok := decodePair(p.Value2)
	if !ok {
		return nil
	}

	return Columns{
		f.Column(SuffixNElatitude):  ne[0],
		f.Column(SuffixNElongitude): ne[1],
		f.Column(SuffixSWlatitude):  sw[0],
		f.Column(SuffixSWlongitude): sw[1],
	}
}

// IsEqual compares exactly; there is no floating point tolerance.
func (f *Geobounds) IsEqual(oldValue, newValue *valueobject.GeoBounds) bool {
	if oldValue == nil && newValue == nil {
		return true
	}
	if oldValue == nil || newValue == nil {
		return false
	}

	return oldValue.NorthEast.Longitude == newValue.NorthEast.Longitude &&
		oldValue.NorthEast.Latitude == newValue.NorthEast.Latitude &&
		oldValue.SouthWest.Longitude == newValue.SouthWest.Longitude &&
		oldValue.SouthWest.Latitude == newValue.SouthWest.Latitude
}

// CheckValidity fails when value is set but is not a bounds, or when the field
// is mandatory and value is empty. Coordinates themselves are not checked.
func (f *Geobounds) CheckValidity(value any, omitMandatoryCheck bool) error {
	isEmpty := true

	switch v := value.(type) {
	case nil:
	case *valueobject.GeoBounds:
		isEmpty = v == nil
	case valueobject.GeoBounds:
		isEmpty = false
	default:
		return &ValidationError{Field: f.Name, Err: domain.ErrTypeMismatch}
	}

	if !omitMandatoryCheck && f.Mandatory && isEmpty {
		return &ValidationError{Field: f.Name, Err: domain.ErrMissingRequiredValue}
	}

	return nil
}

func decodePair(s string) ([2]*float64, bool) {
	var pair []*float64
	if err := json.Unmarshal([]byte(s), &pair); err != nil || len(pair) < 2 {
		return [2]*float64{}, false
	}
	return [2]*float64{pair[0], pair[1]}, true
}

func formatPoint(c valueobject.GeoCoordinate) string {
	return formatFloat(c.Longitude) + "," + formatFloat(c.Latitude)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truthy(v *float64) bool {
	return v != nil && *v != 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func float64Ptr(v float64) *float64 {
	return &v
}

func copyColumnType() map[string]string {
	m := make(map[string]string, len(boundsColumnType))
	for k, v := range boundsColumnType {
		m[k] = v
	}
	return m
}
