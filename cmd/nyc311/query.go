package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencivic/nyc311/datetime"
	"github.com/opencivic/nyc311/output"
	"github.com/opencivic/nyc311/record"
	"github.com/opencivic/nyc311/store"
)

var (
	queryBorough   string
	queryAgency    string
	queryStatus    string
	queryComplaint string
	queryZip       uint32
	queryDistrict  int16
	queryFrom      string
	queryTo        string
	queryBBox      []float64
	queryFormat    string
	queryLimit     int
	queryStream    bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter the dataset and print matching records",
	Long: `Query runs one linear scan per predicate flag and intersects the
results. Text predicates fold ASCII case; --complaint is a substring
match, the rest are exact.

Dates for --from/--to use the dataset's own timestamp format,
"M/D/YYYY H:MM:SS AM". With --stream the input is filtered during the
load without building the in-memory store, which is the cheaper path
for one-shot queries over very large files.`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryBorough, "borough", "", "Exact borough, e.g. BROOKLYN")
	queryCmd.Flags().StringVar(&queryAgency, "agency", "", "Exact agency code, e.g. NYPD")
	queryCmd.Flags().StringVar(&queryStatus, "status", "", "Exact status, e.g. Open")
	queryCmd.Flags().StringVar(&queryComplaint, "complaint", "", "Complaint-type substring, e.g. noise")
	queryCmd.Flags().Uint32Var(&queryZip, "zip", 0, "Exact incident zip code")
	queryCmd.Flags().Int16Var(&queryDistrict, "district", 0, "Exact council district")
	queryCmd.Flags().StringVar(&queryFrom, "from", "", "Created-date lower bound (inclusive)")
	queryCmd.Flags().StringVar(&queryTo, "to", "", "Created-date upper bound (inclusive)")
	queryCmd.Flags().Float64SliceVar(&queryBBox, "bbox", nil, "Bounding box: minLat,maxLat,minLon,maxLon")
	queryCmd.Flags().StringVarP(&queryFormat, "format", "f", "jsonl", "Output format: jsonl, csv, table")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Limit number of rows (0 = unlimited)")
	queryCmd.Flags().BoolVar(&queryStream, "stream", false, "Filter during load instead of building the store")
}

// queryPlan is the set of predicates assembled from the flags.
type queryPlan struct {
	useBorough   bool
	useAgency    bool
	useStatus    bool
	useComplaint bool
	useZip       bool
	useDistrict  bool
	useDates     bool
	useBBox      bool

	from, to datetime.DateTime
}

func buildPlan(cmd *cobra.Command) (queryPlan, error) {
	p := queryPlan{
		useBorough:   queryBorough != "",
		useAgency:    queryAgency != "",
		useStatus:    queryStatus != "",
		useComplaint: queryComplaint != "",
		useZip:       cmd.Flags().Changed("zip"),
		useDistrict:  cmd.Flags().Changed("district"),
		useBBox:      len(queryBBox) > 0,
	}

	if queryFrom != "" || queryTo != "" {
		p.useDates = true
		if queryFrom != "" {
			p.from = datetime.Parse(queryFrom)
			if !p.from.Valid {
				return p, fmt.Errorf("invalid --from date %q (want M/D/YYYY H:MM:SS AM)", queryFrom)
			}
		}
		p.to = datetime.Parse(queryTo)
		if queryTo != "" && !p.to.Valid {
			return p, fmt.Errorf("invalid --to date %q (want M/D/YYYY H:MM:SS AM)", queryTo)
		}
		if queryTo == "" {
			// Unbounded upper end.
			p.to = datetime.DateTime{Year: 9999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Valid: true}
		}
	}

	if p.useBBox && len(queryBBox) != 4 {
		return p, fmt.Errorf("--bbox needs exactly 4 values, got %d", len(queryBBox))
	}
	return p, nil
}

// match applies the plan's predicates to one record. Used by the
// streaming path; the stored path goes through the DataStore filters.
func (p queryPlan) match(r *record.ServiceRequest) bool {
	if p.useDates && !(r.CreatedDate.Valid && p.from.LessEq(r.CreatedDate) && r.CreatedDate.LessEq(p.to)) {
		return false
	}
	if p.useBorough && !store.EqualFold(r.Borough, queryBorough) {
		return false
	}
	if p.useAgency && !store.EqualFold(r.Agency, queryAgency) {
		return false
	}
	if p.useStatus && !store.EqualFold(r.Status, queryStatus) {
		return false
	}
	if p.useComplaint && !store.ContainsFold(r.ComplaintType, queryComplaint) {
		return false
	}
	if p.useZip && r.IncidentZip != queryZip {
		return false
	}
	if p.useDistrict && r.CouncilDistrict != queryDistrict {
		return false
	}
	if p.useBBox {
		if r.Latitude < queryBBox[0] || r.Latitude > queryBBox[1] ||
			r.Longitude < queryBBox[2] || r.Longitude > queryBBox[3] {
			return false
		}
	}
	return true
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := requireInput(); err != nil {
		return err
	}
	plan, err := buildPlan(cmd)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(queryFormat)
	if err != nil {
		return err
	}

	if queryStream {
		return runStreamingQuery(plan, formatter)
	}
	return runStoredQuery(plan, formatter)
}

// runStoredQuery loads the full store, runs each selected filter, and
// intersects the results.
func runStoredQuery(plan queryPlan, formatter output.Formatter) error {
	st := newStore(inputPath)

	start := time.Now()
	n, err := st.Load(inputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d records in %s (%d of %d rows skipped)\n",
		n, time.Since(start).Round(time.Millisecond), st.SkippedRows(), st.TotalRows())

	results := collectResults(st, plan)

	// No predicate flags: the whole store matches.
	res := st.FilterByComplaintType("")
	for _, r := range results {
		res = res.Intersect(r)
	}

	recs, err := res.Records()
	if err != nil {
		return err
	}
	if queryLimit > 0 && len(recs) > queryLimit {
		recs = recs[:queryLimit]
	}

	fmt.Fprintf(os.Stderr, "%d records matched\n", res.Len())
	return formatter.Format(recs)
}

// collectResults runs one store filter per selected predicate.
func collectResults(st *store.DataStore, plan queryPlan) []store.Result {
	var results []store.Result
	if plan.useDates {
		results = append(results, st.FilterByDateRange(plan.from, plan.to))
	}
	if plan.useBorough {
		results = append(results, st.FilterByBorough(queryBorough))
	}
	if plan.useAgency {
		results = append(results, st.FilterByAgency(queryAgency))
	}
	if plan.useStatus {
		results = append(results, st.FilterByStatus(queryStatus))
	}
	if plan.useComplaint {
		results = append(results, st.FilterByComplaintType(queryComplaint))
	}
	if plan.useZip {
		results = append(results, st.FilterByZip(queryZip))
	}
	if plan.useDistrict {
		results = append(results, st.FilterByCouncilDistrict(queryDistrict))
	}
	if plan.useBBox {
		results = append(results, st.FilterByLatLonBox(queryBBox[0], queryBBox[1], queryBBox[2], queryBBox[3]))
	}
	return results
}

// runStreamingQuery filters during the load, keeping only matches.
func runStreamingQuery(plan queryPlan, formatter output.Formatter) error {
	src := newSource(inputPath)
	if err := src.Open(inputPath); err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	start := time.Now()
	var matched []record.ServiceRequest
	total, err := src.ReadChunk(func(r record.ServiceRequest) {
		if queryLimit > 0 && len(matched) >= queryLimit {
			return
		}
		if plan.match(&r) {
			matched = append(matched, r)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Scanned %d rows in %s (%d skipped), %d matched\n",
		total, time.Since(start).Round(time.Millisecond), src.SkippedRows(), len(matched))

	recs := make([]*record.ServiceRequest, len(matched))
	for i := range matched {
		recs[i] = &matched[i]
	}
	return formatter.Format(recs)
}

// newFormatter maps the --format flag to an output formatter.
func newFormatter(name string) (output.Formatter, error) {
	switch name {
	case "json", "jsonl":
		return output.NewJSONFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want jsonl, csv, or table)", name)
	}
}
