package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/accrete/internal/accrete"
)

const (
	psBase  = 50.0
	psWidth = 450.0
)

// PostScript writes a minimal Level 1 document. Coordinates passed to the
// drawing methods are in window units set by Window. The first write error
// is kept and later calls become no-ops.
type PostScript struct {
	w      io.Writer
	err    error
	page   int
	xscale float64
	yscale float64
	xoff   float64
	yoff   float64
}

func NewPostScript(w io.Writer) *PostScript {
	return &PostScript{w: w, xscale: 1, yscale: 1}
}

func (ps *PostScript) Err() error { return ps.err }

func (ps *PostScript) printf(format string, args ...any) {
	if ps.err != nil {
		return
	}
	_, ps.err = fmt.Fprintf(ps.w, format, args...)
}

// Window maps the rectangle (x1,y1)-(x2,y2) onto the square drawing area.
func (ps *PostScript) Window(x1, y1, x2, y2 float64) {
	ps.xscale = psWidth / (x2 - x1)
	ps.yscale = psWidth / (y2 - y1)
	ps.xoff = -ps.xscale * x1
	ps.yoff = -ps.yscale * y1
}

func (ps *PostScript) Begin(pages int) {
	ps.printf("%%!PS-Adobe-2.1\n")
	ps.printf("%%%%Pages: %d\n", pages)
	ps.printf("%%%%EndComments\n")
	ps.printf("/Helvetica findfont 12 scalefont setfont\n")
	ps.printf("0 setlinewidth\n")
	ps.printf("newpath\n")
	ps.printf("%%%%EndProlog\n")
	ps.BeginPage()
}

func (ps *PostScript) BeginPage() {
	ps.page++
	ps.printf("%%%%Page: %d %d\n", ps.page, ps.page)
	ps.printf("%s %s translate\n", num(ps.xoff+psBase), num(ps.yoff+psBase))
	ps.printf("%s %s scale\n", num(ps.xscale), num(ps.yscale))
	ps.printf("/Helvetica findfont %s scalefont setfont\n", num(9/ps.xscale))
	ps.printf("0 setlinewidth\n")
}

func (ps *PostScript) ShowPage() { ps.printf("showpage\n") }

func (ps *PostScript) End() {
	ps.printf("%%%%Trailer\n")
	ps.printf("end\n")
}

func (ps *PostScript) Circle(x, y, radius float64, fill bool) {
	op := "stroke"
	if fill {
		op = "fill"
	}
	ps.printf("%s %s %s 0 360 arc %s\n", num(x), num(y), num(radius), op)
}

func (ps *PostScript) Line(x1, y1, x2, y2 float64) {
	ps.printf("%s %s moveto %s %s lineto stroke\n", num(x1), num(y1), num(x2), num(y2))
}

func (ps *PostScript) Text(x, y float64, s string) {
	ps.printf("%s %s moveto (%s) show newpath\n", num(x), num(y), s)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WritePostScript renders one page with the AU scale along the top edge and
// the planets on the center line.
func WritePostScript(w io.Writer, planets accrete.Planets) error {
	ps := NewPostScript(w)
	ps.Window(minLogAU, -1, maxLogAU, 1)
	ps.Begin(1)

	ps.Line(minLogAU, -1, maxLogAU, -1)
	ps.Line(maxLogAU, -1, maxLogAU, 1)
	ps.Line(minLogAU, 1, maxLogAU, 1)
	ps.Line(minLogAU, -1, minLogAU, 1)
	for _, t := range ticks() {
		ps.Line(t, 1, t, 0.95)
	}
	for _, l := range tickLabels {
		ps.Text(l.LogAU, 1, l.Label)
	}
	ps.Text(maxLogAU-0.2, 1, "AU")

	for _, m := range markers(planets) {
		ps.Circle(m.X, 0, m.Radius, m.Filled)
	}

	ps.ShowPage()
	ps.End()
	return ps.Err()
}
