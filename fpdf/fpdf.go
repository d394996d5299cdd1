// Provides routines to render an analysis run as PDF charts
package fpdf

import(
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/analysis"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

var(
	ChartOffsetU = 30.0
	ChartWidth   = 230.0
	ChartHeight  = 120.0
	ChartOffsetV = 30.0

	ProfitColor = []int{0x00, 0xC2, 0x66}
	LossColor   = []int{0xDA, 0x06, 0x00}
	RevenueColor = []int{0x25, 0x6F, 0xCC}
	CostColor    = []int{0xD3, 0x9D, 0x00}

	RecommendationColors = map[rp.Recommendation][]int{
		rp.Expand:   {0x00, 0xC2, 0x66},
		rp.Optimize: {0xD3, 0x9D, 0x00},
		rp.Stable:   {0x70, 0x70, 0x70},
		rp.Review:   {0xDA, 0x06, 0x00},
	}
)

// }}}
// {{{ niceStep, niceRange

// niceStep picks a gridline spacing of 1, 2 or 5 times a power of ten, giving
// roughly n lines over span.
func niceStep(span float64, n int) float64 {
	if span <= 0 || n <= 0 { return 1 }
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _,m := range []float64{1, 2, 5, 10} {
		if m*mag >= raw { return m*mag }
	}
	return 10*mag
}

// niceRange widens [lo,hi] to multiples of step, always including zero.
func niceRange(lo, hi float64, n int) (float64, float64, float64) {
	lo,hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi { hi = lo + 1 }
	step := niceStep(hi-lo, n)
	return math.Floor(lo/step)*step, math.Ceil(hi/step)*step, step
}

// }}}
// {{{ newGrid, DrawTitle, DrawKey

func newGrid(pdf *gofpdf.Fpdf, minX,maxX, minY,maxY,step float64, tickFmt string) BaseGrid {
	return BaseGrid{
		Fpdf: pdf,
		OffsetU: ChartOffsetU,
		OffsetV: ChartOffsetV,
		W: ChartWidth,
		H: ChartHeight,
		MinX: minX, MaxX: maxX,
		MinY: minY, MaxY: maxY,
		YGridlineEvery: step,
		YTickFmt: tickFmt,
		LineColor: []int{0,0,0},
	}
}

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0,0,0)
	pdf.SetXY(ChartOffsetU, 12)
	pdf.Cell(ChartWidth, 10, title)
	pdf.SetFont("Arial", "", 10)
}

func DrawKey(pdf *gofpdf.Fpdf, labels []string, colors [][]int) {
	width,height := 8.0,4.0
	y := ChartOffsetV + ChartHeight + 22.0
	for i,rgb := range colors {
		x := ChartOffsetU + float64(i)*50.0
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.Rect(x, y, width, height, "F")
		pdf.SetXY(x+width+1.0, y)
		pdf.Cell(40, height, labels[i])
	}
}

// xLabel writes a small label centred under slot x of a grid.
func xLabel(bg BaseGrid, x float64, s string) {
	u,_ := bg.U(x)
	bg.SetFont("Arial", "", 6)
	bg.SetTextColor(0,0,0)
	bg.SetXY(u-6, bg.OffsetV+bg.H+1)
	bg.CellFormat(12, 3, s, "", 0, "C", false, 0, "")
}

// }}}

// {{{ DrawProfitChart

// DrawProfitChart adds a page with one bar per route, ordered by annual profit.
func DrawProfitChart(pdf *gofpdf.Fpdf, summaries []rp.RouteSummary) error {
	ranked,err := analysis.MostProfitable(summaries, len(summaries))
	if err != nil { return err }

	pdf.AddPage()
	DrawTitle(pdf, fmt.Sprintf("Annual profit by route ($M), %d routes", len(ranked)))
	if len(ranked) == 0 { return nil }

	lo,hi := 0.0,0.0
	for _,s := range ranked {
		lo,hi = math.Min(lo, s.AnnualProfit/1e6), math.Max(hi, s.AnnualProfit/1e6)
	}
	minY,maxY,step := niceRange(lo, hi, 8)

	bg := newGrid(pdf, 0, float64(len(ranked)), minY, maxY, step, "%.1f")
	bg.DrawGridlines()

	labelEvery := int(math.Ceil(float64(len(ranked)) / 40.0))
	for i,s := range ranked {
		rgb := ProfitColor
		if !s.Profitable() { rgb = LossColor }
		bg.Bar(float64(i)+0.1, float64(i)+0.9, 0, s.AnnualProfit/1e6, rgb)
		if i % labelEvery == 0 { xLabel(bg, float64(i)+0.5, s.ID) }
	}
	bg.DrawFrame()
	DrawKey(pdf, []string{"Profitable", "Loss-making"}, [][]int{ProfitColor, LossColor})
	return nil
}

// }}}
// {{{ DrawRecommendationChart

// DrawRecommendationChart adds a page with route counts per recommendation.
func DrawRecommendationChart(pdf *gofpdf.Fpdf, counts map[rp.Recommendation]int) {
	pdf.AddPage()
	DrawTitle(pdf, "Routes per recommendation")

	hi := 0.0
	for _,n := range counts { hi = math.Max(hi, float64(n)) }
	minY,maxY,step := niceRange(0, hi, 5)

	bg := newGrid(pdf, 0, float64(len(rp.Recommendations)), minY, maxY, step, "%.0f")
	bg.DrawGridlines()

	labels,colors := []string{}, [][]int{}
	for i,rec := range rp.Recommendations {
		n := float64(counts[rec])
		bg.Bar(float64(i)+0.2, float64(i)+0.8, 0, n, RecommendationColors[rec])

		u,_ := bg.U(float64(i)+0.5)
		v,_ := bg.V(n)
		pdf.SetFont("Arial", "", 9)
		pdf.SetXY(u-10, v-5)
		pdf.CellFormat(20, 4, fmt.Sprintf("%d", counts[rec]), "", 0, "C", false, 0, "")
		xLabel(bg, float64(i)+0.5, rec.String())

		labels = append(labels, rec.String())
		colors = append(colors, RecommendationColors[rec])
	}
	bg.DrawFrame()
	DrawKey(pdf, labels, colors)
}

// }}}
// {{{ DrawSeasonalChart

// DrawSeasonalChart adds a page with network revenue and cost per month.
func DrawSeasonalChart(pdf *gofpdf.Fpdf, monthly []rp.ProfitabilityRecord) {
	pdf.AddPage()
	DrawTitle(pdf, "Network revenue and cost by month ($M)")

	rev,cost := [12]float64{}, [12]float64{}
	for _,p := range monthly {
		rev[p.Month-1] += p.Revenue / 1e6
		cost[p.Month-1] += p.Cost / 1e6
	}
	hi := 0.0
	for i := range rev { hi = math.Max(hi, math.Max(rev[i], cost[i])) }
	minY,maxY,step := niceRange(0, hi, 6)

	bg := newGrid(pdf, 0, 12, minY, maxY, step, "%.1f")
	bg.DrawGridlines()

	for i:=0; i<12; i++ {
		x := float64(i)
		bg.Bar(x+0.10, x+0.48, 0, rev[i], RevenueColor)
		bg.Bar(x+0.52, x+0.90, 0, cost[i], CostColor)
		xLabel(bg, x+0.5, rp.MonthName(i+1))
	}
	bg.DrawFrame()
	DrawKey(pdf, []string{"Revenue", "Cost"}, [][]int{RevenueColor, CostColor})
}

// }}}

// {{{ NewChartPdf, WriteAnalysis

func NewChartPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// WriteAnalysis renders the charts for a run as a three page PDF.
func WriteAnalysis(output io.Writer, a *analysis.Analysis) error {
	pdf := NewChartPdf()
	if err := DrawProfitChart(pdf, a.Summaries); err != nil { return err }
	DrawRecommendationChart(pdf, a.Stats.Counts)
	DrawSeasonalChart(pdf, a.Monthly)
	if pdf.Err() { return pdf.Error() }
	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
