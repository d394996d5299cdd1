package publish

import(
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
)

func TestNames(t *testing.T) {
	p := Publisher{Bucket: "bkt", Folder: "routeprofit/20260101-1200"}
	assert.Equal(t, "routeprofit/20260101-1200/routes.csv", p.ObjectName("routes.csv"))
	assert.Equal(t, "gs://bkt/routeprofit/20260101-1200/routes.csv", p.GCSURI("routes.csv"))

	p.Folder = ""
	assert.Equal(t, "gs://bkt/x.pdf", p.GCSURI("x.pdf"))
}

func TestContentTypeFor(t *testing.T) {
	tests := map[string]string{
		"routes.csv":          "text/csv",
		SummariesFile:         "application/json",
		"charts.PDF":          "application/pdf",
		"manifest.yaml":       "application/yaml",
		"README":              "application/octet-stream",
	}
	for file,want := range tests {
		assert.Equal(t, want, ContentTypeFor(file), file)
	}
}

func TestEncodeSummaries(t *testing.T) {
	r,err := rp.NewRoute("SFO", "SMF", 90)
	require.NoError(t, err)
	r.DailyFlights = 4

	ok := rp.RouteSummary{Route: r, AnnualRevenue: 10, AnnualCost: 8, AnnualProfit: 2,
		MarginPct: rp.Defined(20), ROIPct: rp.Defined(25), Recommendation: rp.Expand}
	zero := rp.RouteSummary{Route: r, AnnualCost: 8, AnnualProfit: -8, ROIPct: rp.Defined(-100),
		Recommendation: rp.Review}

	var buf bytes.Buffer
	n,err := EncodeSummaries(&buf, "run-1", []rp.RouteSummary{ok, zero})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows := []map[string]interface{}{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		m := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		rows = append(rows, m)
	}
	require.Len(t, rows, 2)

	assert.Equal(t, "run-1", rows[0]["RunID"])
	assert.Equal(t, "SFO-SMF", rows[0]["RouteID"])
	assert.Equal(t, "Expand", rows[0]["Recommendation"])
	assert.Equal(t, 20.0, rows[0]["MarginPct"])

	assert.Nil(t, rows[1]["MarginPct"])
	assert.Contains(t, rows[1], "MarginPct")
	assert.Equal(t, "Review", rows[1]["Recommendation"])
}
