// Package record defines the typed in-memory row for one 311 service
// request and the decoder that builds it from a split CSV row.
//
// One record covers the fixed 43-column layout of the NYC 311 2010-2019
// extract. Fields use the most compact primitive that fits so that tens
// of millions of records stay resident: fixed-width integers for IDs and
// state-plane coordinates, float64 for latitude/longitude, datetime.DateTime
// for the four timestamp columns, and strings for categorical or free text.
//
// Numeric columns that are empty or unparseable decode to a sentinel
// rather than an error: 0 for the zip, BBL and state-plane coordinates,
// -1 for the council district, 0.0 for latitude/longitude. A genuinely
// empty zip and a zip of "0" are therefore indistinguishable; the same
// holds for a (0, 0) coordinate reading. This is a known precision loss
// preserved for compatibility with downstream statistics; callers must
// not treat it as a bug.
package record

import (
	"strconv"

	"github.com/opencivic/nyc311/datetime"
)

// MinFields is the smallest column count a row may have and still decode.
// The trailing 44th "Location" WKT column is optional and always ignored;
// it only duplicates Latitude and Longitude.
const MinFields = 43

// ServiceRequest models one row of the dataset. Built once by FromFields
// and never mutated afterwards.
type ServiceRequest struct {
	// Identifier
	UniqueKey uint64 // col 0

	// Timestamps
	CreatedDate           datetime.DateTime // col 1
	ClosedDate            datetime.DateTime // col 2
	DueDate               datetime.DateTime // col 21
	ResolutionUpdatedDate datetime.DateTime // col 23

	// Agency
	Agency     string // col 3, e.g. "DOHMH"
	AgencyName string // col 4

	// Complaint
	ComplaintType     string // col 5
	Descriptor        string // col 6
	AdditionalDetails string // col 7

	// Location text
	LocationType        string // col 8
	IncidentZip         uint32 // col 9, 0 if empty/invalid
	IncidentAddress     string // col 10
	StreetName          string // col 11
	CrossStreet1        string // col 12
	CrossStreet2        string // col 13
	IntersectionStreet1 string // col 14
	IntersectionStreet2 string // col 15
	AddressType         string // col 16
	City                string // col 17
	Landmark            string // col 18
	FacilityType        string // col 19

	// Status / resolution
	Status                string // col 20
	ResolutionDescription string // col 22

	// Administrative
	CommunityBoard  string // col 24
	CouncilDistrict int16  // col 25, -1 if empty
	PolicePrecinct  string // col 26
	BBL             uint64 // col 27, 10-digit Borough-Block-Lot, 0 if empty
	Borough         string // col 28

	// Coordinates
	XCoordinate int32   // col 29, State Plane (ft), 0 = absent
	YCoordinate int32   // col 30
	Latitude    float64 // col 41, 0.0 = absent
	Longitude   float64 // col 42

	// Channel
	ChannelType string // col 31, e.g. "PHONE", "ONLINE"

	// Park / vehicle / bridge fields, usually empty
	ParkFacilityName       string // col 32
	ParkBorough            string // col 33
	VehicleType            string // col 34
	TaxiCompanyBorough     string // col 35
	TaxiPickupLocation     string // col 36
	BridgeHighwayName      string // col 37
	BridgeHighwayDirection string // col 38
	RoadRamp               string // col 39
	BridgeHighwaySegment   string // col 40
}

// FromFields builds a ServiceRequest from an already-split row.
//
// It reports false when the row has fewer than MinFields columns; that is
// the only decode failure. Numeric fields never fail: malformed content
// falls back to the field's sentinel (see the package comment).
func FromFields(f []string) (ServiceRequest, bool) {
	if len(f) < MinFields {
		return ServiceRequest{}, false
	}

	r := ServiceRequest{
		UniqueKey:              parseUint64(f[0]),
		CreatedDate:            datetime.Parse(f[1]),
		ClosedDate:             datetime.Parse(f[2]),
		Agency:                 f[3],
		AgencyName:             f[4],
		ComplaintType:          f[5],
		Descriptor:             f[6],
		AdditionalDetails:      f[7],
		LocationType:           f[8],
		IncidentZip:            parseZip(f[9]),
		IncidentAddress:        f[10],
		StreetName:             f[11],
		CrossStreet1:           f[12],
		CrossStreet2:           f[13],
		IntersectionStreet1:    f[14],
		IntersectionStreet2:    f[15],
		AddressType:            f[16],
		City:                   f[17],
		Landmark:               f[18],
		FacilityType:           f[19],
		Status:                 f[20],
		DueDate:                datetime.Parse(f[21]),
		ResolutionDescription:  f[22],
		ResolutionUpdatedDate:  datetime.Parse(f[23]),
		CommunityBoard:         f[24],
		CouncilDistrict:        parseInt16(f[25]),
		PolicePrecinct:         f[26],
		BBL:                    parseUint64(f[27]),
		Borough:                f[28],
		XCoordinate:            parseInt32(f[29]),
		YCoordinate:            parseInt32(f[30]),
		ChannelType:            f[31],
		ParkFacilityName:       f[32],
		ParkBorough:            f[33],
		VehicleType:            f[34],
		TaxiCompanyBorough:     f[35],
		TaxiPickupLocation:     f[36],
		BridgeHighwayName:      f[37],
		BridgeHighwayDirection: f[38],
		RoadRamp:               f[39],
		BridgeHighwaySegment:   f[40],
		Latitude:               parseFloat(f[41]),
		Longitude:              parseFloat(f[42]),
	}
	// f[43], the "Location" WKT string, is skipped when present.

	return r, true
}

// digitPrefix returns the leading run of decimal digits in s, skipping an
// optional sign when signed is set. Mirrors strtol-style parsing: trailing
// junk after the digits is ignored rather than rejected. Empty result
// means no digits were consumed.
func digitPrefix(s string, signed bool) string {
	i := 0
	if signed && i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// parseZip decodes a zip column; 0 for empty or non-numeric content.
func parseZip(s string) uint32 {
	d := digitPrefix(s, false)
	if d == "" {
		return 0
	}
	v, err := strconv.ParseUint(d, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// parseInt16 decodes the council-district column; -1 for empty or
// non-numeric content.
func parseInt16(s string) int16 {
	d := digitPrefix(s, true)
	if d == "" {
		return -1
	}
	v, err := strconv.ParseInt(d, 10, 16)
	if err != nil {
		return -1
	}
	return int16(v)
}

// parseInt32 decodes a state-plane coordinate column; 0 for empty or
// non-numeric content.
func parseInt32(s string) int32 {
	d := digitPrefix(s, true)
	if d == "" {
		return 0
	}
	v, err := strconv.ParseInt(d, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

// parseUint64 decodes the unique key and BBL columns; 0 for empty or
// non-numeric content.
func parseUint64(s string) uint64 {
	d := digitPrefix(s, false)
	if d == "" {
		return 0
	}
	v, err := strconv.ParseUint(d, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFloat decodes a latitude/longitude column; 0.0 for empty or
// non-numeric content.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
