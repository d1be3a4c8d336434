package fielddef

// Columns maps a column name to its nullable value.
type Columns map[string]*float64

// EditorPayload is the flat shape exchanged with the editor and grid UIs.
type EditorPayload struct {
	NElongitude *float64 `json:"NElongitude"`
	NElatitude  *float64 `json:"NElatitude"`
	SWlongitude *float64 `json:"SWlongitude"`
	SWlatitude  *float64 `json:"SWlatitude"`
}

// PackedPair is the two-slot single-column encoding. Each slot holds a JSON
// array of [latitude, longitude].
type PackedPair struct {
	Value  string `json:"value"`
	Value2 string `json:"value2"`
}
