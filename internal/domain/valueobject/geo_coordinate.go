package valueobject

type GeoCoordinate struct {
	Latitude  float64
	Longitude float64
}

func NewGeoCoordinate(lat, lng float64) GeoCoordinate {
	return GeoCoordinate{
		Latitude:  lat,
		Longitude: lng,
	}
}
