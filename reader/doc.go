// Package reader provides data sources for loading 311 service requests.
//
// A Source produces decoded records from some transport. Two concrete
// sources exist:
//
//   - CSVSource reads the raw comma-delimited export with a hand-rolled
//     quote-aware line tokenizer, transparently decompressing .gz and
//     .zst inputs.
//   - ParquetSource reads a parquet encoding of the same dataset via
//     github.com/parquet-go/parquet-go.
//
// Both feed the shared record.FromFields decoder, so the default/sentinel
// policy for malformed fields is identical regardless of transport.
//
// # Basic Usage
//
//	src := reader.NewCSVSource()
//	if err := src.Open("311_2010_2019.csv"); err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	recs, err := src.ReadAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d, skipped %d of %d rows\n",
//	    len(recs), src.SkippedRows(), src.TotalRows())
//
// # Streaming
//
// ReadChunk never materializes the full collection; it invokes a callback
// once per decoded record, which is the cheaper path when the caller
// filters during the load:
//
//	_, err := src.ReadChunk(func(r record.ServiceRequest) {
//	    if r.Borough == "QUEENS" {
//	        matched++
//	    }
//	})
//
// # Resource Management
//
// Close releases the underlying handles and is safe to call more than
// once.
package reader
