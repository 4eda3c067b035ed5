package record

// Columns lists the canonical column names in dataset order. Index i is
// the name of column i as fed to FromFields. The trailing "location"
// column is listed for completeness even though the decoder discards it.
//
// The parquet source uses these names to reassemble a positional row from
// a name-keyed parquet record.
var Columns = []string{
	"unique_key",               // 0
	"created_date",             // 1
	"closed_date",              // 2
	"agency",                   // 3
	"agency_name",              // 4
	"complaint_type",           // 5
	"descriptor",               // 6
	"additional_details",       // 7
	"location_type",            // 8
	"incident_zip",             // 9
	"incident_address",         // 10
	"street_name",              // 11
	"cross_street_1",           // 12
	"cross_street_2",           // 13
	"intersection_street_1",    // 14
	"intersection_street_2",    // 15
	"address_type",             // 16
	"city",                     // 17
	"landmark",                 // 18
	"facility_type",            // 19
	"status",                   // 20
	"due_date",                 // 21
	"resolution_description",   // 22
	"resolution_updated_date",  // 23
	"community_board",          // 24
	"council_district",         // 25
	"police_precinct",          // 26
	"bbl",                      // 27
	"borough",                  // 28
	"x_coordinate",             // 29
	"y_coordinate",             // 30
	"channel_type",             // 31
	"park_facility_name",       // 32
	"park_borough",             // 33
	"vehicle_type",             // 34
	"taxi_company_borough",     // 35
	"taxi_pickup_location",     // 36
	"bridge_highway_name",      // 37
	"bridge_highway_direction", // 38
	"road_ramp",                // 39
	"bridge_highway_segment",   // 40
	"latitude",                 // 41
	"longitude",                // 42
	"location",                 // 43 (ignored)
}
