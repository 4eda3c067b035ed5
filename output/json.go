package output

import (
	"encoding/json"
	"io"

	"github.com/opencivic/nyc311/datetime"
	"github.com/opencivic/nyc311/record"
)

// JSONFormatter outputs records as JSON Lines, one object per line.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per record. Timestamps render as their
// display form; invalid timestamps and numeric sentinels render as null
// so consumers can distinguish "absent" without knowing the sentinel
// scheme.
func (j *JSONFormatter) Format(recs []*record.ServiceRequest) error {
	encoder := json.NewEncoder(j.writer)
	for _, r := range recs {
		if err := encoder.Encode(jsonRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// jsonRow maps a record onto the JSON field set.
func jsonRow(r *record.ServiceRequest) map[string]interface{} {
	row := map[string]interface{}{
		"unique_key":       r.UniqueKey,
		"created_date":     jsonDate(r.CreatedDate),
		"closed_date":      jsonDate(r.ClosedDate),
		"due_date":         jsonDate(r.DueDate),
		"agency":           r.Agency,
		"agency_name":      r.AgencyName,
		"complaint_type":   r.ComplaintType,
		"descriptor":       r.Descriptor,
		"location_type":    r.LocationType,
		"incident_zip":     jsonUint(uint64(r.IncidentZip)),
		"incident_address": r.IncidentAddress,
		"city":             r.City,
		"status":           r.Status,
		"community_board":  r.CommunityBoard,
		"council_district": jsonDistrict(r.CouncilDistrict),
		"bbl":              jsonUint(r.BBL),
		"borough":          r.Borough,
		"channel_type":     r.ChannelType,
		"latitude":         jsonFloat(r.Latitude),
		"longitude":        jsonFloat(r.Longitude),
	}
	return row
}

func jsonDate(dt datetime.DateTime) interface{} {
	if !dt.Valid {
		return nil
	}
	return dt.String()
}

func jsonUint(v uint64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

func jsonDistrict(v int16) interface{} {
	if v == -1 {
		return nil
	}
	return v
}

func jsonFloat(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
