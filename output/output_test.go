package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opencivic/nyc311/datetime"
	"github.com/opencivic/nyc311/record"
)

func sampleRecords() []*record.ServiceRequest {
	return []*record.ServiceRequest{
		{
			UniqueKey:       100,
			CreatedDate:     datetime.Parse("06/15/2015 02:00:00 PM"),
			Agency:          "NYPD",
			ComplaintType:   "Noise - Residential",
			Status:          "Closed",
			Borough:         "BROOKLYN",
			IncidentZip:     11217,
			CouncilDistrict: 35,
			Latitude:        40.68,
			Longitude:       -73.97,
		},
		{
			UniqueKey:       101,
			Agency:          "DOT",
			ComplaintType:   "Pothole",
			Status:          "Open",
			Borough:         "QUEENS",
			CouncilDistrict: -1,
		},
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	if err := f.Format(sampleRecords()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first["borough"] != "BROOKLYN" {
		t.Errorf("borough = %v", first["borough"])
	}
	if first["created_date"] != "2015-06-15 14:00:00" {
		t.Errorf("created_date = %v", first["created_date"])
	}
	if first["incident_zip"] != float64(11217) {
		t.Errorf("incident_zip = %v", first["incident_zip"])
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	// Sentinels render as null, not as 0 / -1.
	if second["created_date"] != nil {
		t.Errorf("invalid created_date = %v, want null", second["created_date"])
	}
	if second["incident_zip"] != nil {
		t.Errorf("sentinel zip = %v, want null", second["incident_zip"])
	}
	if second["council_district"] != nil {
		t.Errorf("sentinel council_district = %v, want null", second["council_district"])
	}
	if second["latitude"] != nil {
		t.Errorf("sentinel latitude = %v, want null", second["latitude"])
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)
	if err := f.Format(sampleRecords()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "unique_key,created_date,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Noise - Residential") || !strings.Contains(lines[1], "BROOKLYN") {
		t.Errorf("first row = %q", lines[1])
	}
	// Sentinel zip renders empty, not "0".
	if strings.Contains(lines[2], ",0,") {
		t.Errorf("second row leaks numeric sentinels: %q", lines[2])
	}
}

func TestCSVFormatter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)
	if err := f.Format(nil); err != nil {
		t.Fatalf("Format failed on empty input: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty result should print only the header, got %d lines", len(lines))
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	if err := f.Format(sampleRecords()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "BROOKLYN") || !strings.Contains(out, "Pothole") {
		t.Errorf("table output missing rows:\n%s", out)
	}
	if !strings.Contains(strings.ToUpper(out), "COMPLAINT_TYPE") {
		t.Errorf("table output missing header:\n%s", out)
	}
}
