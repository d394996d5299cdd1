package report

import(
	"encoding/csv"
	"io"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	for _,row := range r.RowsText {
		if err := csvWriter.Write(row); err != nil { return err }
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// Filename is where the report's table lands inside an export directory.
func (r *Report)Filename() string { return r.Name + ".csv" }
