package fpdf

import (
	"fmt"
	"github.com/jung-kurt/gofpdf"
)

// Describes a chart area we're going to plot over, and where it sits on the page
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the grid is drawn over (labels go outside of this)
	OffsetU     float64 // top-left corner, in PDF coords
	OffsetV     float64 // top-left corner, in PDF coords
	W,H         float64 // width and height of the grid, in PDF units (mm)

	// How (x,y) vals are mapped into (u,v) vals. The origin is bottom-left.
	MinX,MinY,MaxX,MaxY float64

	// How to draw gridlines
	YGridlineEvery float64 // From MinY to MaxY
	YTickFmt       string  // Will be passed a float64 via fmt.Sprintf; blank==none

	LineColor []int // rgb, each [0,255] - axis labels
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H)) // In PDF, v goes down the page
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveTo, LineTo, Line, Bar

func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	bg.MaybeSetDrawColor()
	bg.MoveTo(x1,y1)
	bg.LineTo(x2,y2)
	bg.DrawPath("D")
}

// Bar fills the box spanning [x1,x2] horizontally and [y1,y2] vertically, clamped to
// the grid. Either y may be the larger; negative values hang below zero.
func (bg BaseGrid)Bar(x1,x2,y1,y2 float64, rgb []int) {
	clamp := func(y float64) float64 {
		if y < bg.MinY { return bg.MinY }
		if y > bg.MaxY { return bg.MaxY }
		return y
	}
	if y1 > y2 { y1,y2 = y2,y1 }
	u1,_ := bg.U(x1)
	u2,_ := bg.U(x2)
	vTop,_ := bg.V(clamp(y2))
	vBot,_ := bg.V(clamp(y1))

	bg.SetFillColor(rgb[0], rgb[1], rgb[2])
	bg.Rect(u1, vTop, u2-u1, vBot-vTop, "F")
}

// }}}
// {{{ bg.MaybeSet{Draw|Text}Color

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}
// {{{ bg.DrawGridlines, DrawFrame

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 7)
	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)

	if bg.YGridlineEvery <= 0 { return }
	for y := bg.MinY; y <= bg.MaxY; y += bg.YGridlineEvery {
		bg.MoveTo(bg.MinX, y)
		bg.LineTo(bg.MaxX, y)
		bg.DrawPath("D")

		if bg.YTickFmt != "" {
			u,v,_ := bg.UV(bg.MinX, y)
			bg.SetXY(u-19, v-2)
			bg.MaybeSetTextColor()
			bg.CellFormat(18, 4, fmt.Sprintf(bg.YTickFmt, y), "", 0, "R", false, 0, "")
		}
	}

	// The zero line, if it's in range, is what bars hang off
	if bg.MinY < 0 && bg.MaxY > 0 {
		bg.SetLineWidth(0.2)
		bg.SetDrawColor(0x40, 0x40, 0x40)
		bg.MoveTo(bg.MinX, 0)
		bg.LineTo(bg.MaxX, 0)
		bg.DrawPath("D")
	}
}

func (bg BaseGrid)DrawFrame() {
	bg.SetDrawColor(0x0, 0x00, 0x00)
	bg.SetLineWidth(0.3)
	bg.Fpdf.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
