// Generates a small sample of 311-shaped data for manual CLI runs:
// sample.csv in the raw export layout and sample.parquet with the same
// rows under the canonical column names.
//
// Run from this directory:
//
//	go run generate.go
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

type row struct {
	UniqueKey     int64   `parquet:"unique_key"`
	CreatedDate   string  `parquet:"created_date"`
	ClosedDate    string  `parquet:"closed_date"`
	Agency        string  `parquet:"agency"`
	ComplaintType string  `parquet:"complaint_type"`
	Descriptor    string  `parquet:"descriptor"`
	IncidentZip   string  `parquet:"incident_zip"`
	Status        string  `parquet:"status"`
	Borough       string  `parquet:"borough"`
	Latitude      float64 `parquet:"latitude"`
	Longitude     float64 `parquet:"longitude"`
}

var rows = []row{
	{26589676, "09/29/2013 12:00:00 AM", "10/01/2013 03:30:00 PM", "NYPD", "Noise - Street/Sidewalk", "Loud Music/Party", "11217", "Closed", "BROOKLYN", 40.68358, -73.97668},
	{26593698, "01/15/2015 10:30:00 AM", "01/16/2015 08:00:00 AM", "DOT", "Street Condition", "Pothole", "11354", "Closed", "QUEENS", 40.76486, -73.83154},
	{26594139, "07/04/2015 11:45:00 PM", "", "NYPD", "Noise - Residential", "Loud Talking", "10002", "Open", "MANHATTAN", 40.71704, -73.98926},
	{26595721, "03/22/2016 02:15:00 PM", "03/25/2016 09:00:00 AM", "DOHMH", "Rodent", "Rat Sighting", "10456", "Closed", "BRONX", 40.83166, -73.90592},
	{26598210, "11/02/2017 08:05:00 AM", "", "DSNY", "Missed Collection (All Materials)", "1 Missed Collection", "10301", "Open", "STATEN ISLAND", 40.64261, -74.07673},
}

const header = "Unique Key,Created Date,Closed Date,Agency,Agency Name," +
	"Complaint Type,Descriptor,Additional Details,Location Type,Incident Zip," +
	"Incident Address,Street Name,Cross Street 1,Cross Street 2," +
	"Intersection Street 1,Intersection Street 2,Address Type,City,Landmark," +
	"Facility Type,Status,Due Date,Resolution Description," +
	"Resolution Action Updated Date,Community Board,Council District," +
	"Police Precinct,BBL,Borough,X Coordinate,Y Coordinate," +
	"Open Data Channel Type,Park Facility Name,Park Borough,Vehicle Type," +
	"Taxi Company Borough,Taxi Pick Up Location,Bridge Highway Name," +
	"Bridge Highway Direction,Road Ramp,Bridge Highway Segment," +
	"Latitude,Longitude,Location"

func main() {
	writeCSV()
	writeParquet()
}

func writeCSV() {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, r := range rows {
		fields := make([]string, 44)
		fields[0] = strconv.FormatInt(r.UniqueKey, 10)
		fields[1] = r.CreatedDate
		fields[2] = r.ClosedDate
		fields[3] = r.Agency
		fields[5] = quote(r.ComplaintType)
		fields[6] = quote(r.Descriptor)
		fields[9] = r.IncidentZip
		fields[20] = r.Status
		fields[28] = r.Borough
		fields[41] = strconv.FormatFloat(r.Latitude, 'f', 5, 64)
		fields[42] = strconv.FormatFloat(r.Longitude, 'f', 5, 64)
		b.WriteString(strings.Join(fields, ",") + "\n")
	}

	if err := os.WriteFile("sample.csv", []byte(b.String()), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated sample.csv with %d rows", len(rows))
}

func writeParquet() {
	f, err := os.Create("sample.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[row](f)
	if _, err := writer.Write(rows); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated sample.parquet with %d rows", len(rows))
}

// quote wraps a field in CSV quotes when it needs them.
func quote(s string) string {
	if strings.ContainsAny(s, ",\"") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
