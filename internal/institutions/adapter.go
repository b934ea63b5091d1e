// Package institutions adapts the raw school dataset into the two views the
// survey form consumes: a flat list of display names for the school picker
// and a normalized record shape.
package institutions

// RawSchool is one row of the source dataset, with the field names the
// dataset publishes them under.
type RawSchool struct {
	Naam          string `json:"naam" yaml:"naam"`
	Soort         string `json:"soort" yaml:"soort"`
	Provincie     string `json:"provincie" yaml:"provincie"`
	Straatnaam    string `json:"straatnaam" yaml:"straatnaam"`
	Huisnummer    string `json:"huisnummer" yaml:"huisnummer"`
	Postcode      string `json:"postcode" yaml:"postcode"`
	Plaatsnaam    string `json:"plaatsnaam" yaml:"plaatsnaam"`
	Internetadres string `json:"internetadres" yaml:"internetadres"`
	Brinnummer    string `json:"brinnummer" yaml:"brinnummer"`
}

// Institution is the normalized record shape.
type Institution struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Province    string `json:"province" yaml:"province"`
	StreetName  string `json:"streetName" yaml:"streetName"`
	HouseNumber string `json:"houseNumber" yaml:"houseNumber"`
	PostalCode  string `json:"postalCode" yaml:"postalCode"`
	City        string `json:"city" yaml:"city"`
	Website     string `json:"website" yaml:"website"`
	ID          string `json:"id" yaml:"id"`
}

// Adapter projects an injected raw dataset. It never filters, validates or
// deduplicates; both views preserve source order.
type Adapter struct {
	records []RawSchool
}

// NewAdapter creates an adapter over the given dataset.
func NewAdapter(records []RawSchool) *Adapter {
	return &Adapter{records: records}
}

// Names returns the display names of all known institutions in source
// order. The slice is rebuilt on every call.
func (a *Adapter) Names() []string {
	names := make([]string, 0, len(a.records))
	for _, r := range a.records {
		names = append(names, r.Naam)
	}
	return names
}

// Normalized returns the full dataset projected to the normalized shape.
func (a *Adapter) Normalized() []Institution {
	out := make([]Institution, 0, len(a.records))
	for _, r := range a.records {
		out = append(out, Institution{
			Name:        r.Naam,
			Type:        r.Soort,
			Province:    r.Provincie,
			StreetName:  r.Straatnaam,
			HouseNumber: r.Huisnummer,
			PostalCode:  r.Postcode,
			City:        r.Plaatsnaam,
			Website:     r.Internetadres,
			ID:          r.Brinnummer,
		})
	}
	return out
}
