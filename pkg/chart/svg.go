package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/ped-tools/ped-go/pkg/ped"
)

// Renderer draws a rule's boundary chart with a classified operating point.
// Implementations must take the category from result and never recompute it.
type Renderer interface {
	Render(w io.Writer, spec ped.ChartSpec, result ped.Result) error
}

// Options controls the SVG output.
type Options struct {
	// Width and Height of the document in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Grid draws major and minor gridlines.
	Grid bool `yaml:"grid"`
	// Samples is the number of points used per iso-product curve.
	Samples int `yaml:"samples"`
}

// DefaultOptions returns a 10x7 aspect chart with grid and 300 curve samples.
func DefaultOptions() Options {
	return Options{
		Width:   1000,
		Height:  700,
		Grid:    true,
		Samples: 300,
	}
}

// plot margins in pixels
const (
	marginLeft   = 80
	marginRight  = 30
	marginTop    = 50
	marginBottom = 60
)

// SVGRenderer renders charts as standalone SVG documents.
type SVGRenderer struct {
	opts Options
}

// NewSVGRenderer creates an SVGRenderer. Zero-valued options fall back to
// DefaultOptions.
func NewSVGRenderer(opts Options) *SVGRenderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Samples <= 0 {
		opts.Samples = def.Samples
	}
	return &SVGRenderer{opts: opts}
}

// Render writes the SVG document to w.
func (r *SVGRenderer) Render(w io.Writer, spec ped.ChartSpec, result ped.Result) error {
	c := r.canvas()
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		r.opts.Width, r.opts.Height, r.opts.Width, r.opts.Height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&b, `<clipPath id="plot"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		c.x.from, c.y.to, c.x.to-c.x.from, c.y.from-c.y.to)

	if r.opts.Grid {
		c.writeGrid(&b)
	}
	c.writeAxes(&b, spec.Title)

	b.WriteString(`<g clip-path="url(#plot)">` + "\n")
	for _, region := range spec.Regions {
		c.writeRegion(&b, region)
	}
	for _, seg := range spec.Segments {
		c.writeSegment(&b, seg)
	}
	for _, curve := range spec.Curves {
		c.writeCurve(&b, curve, r.opts.Samples)
	}
	for _, l := range spec.Labels {
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" font-size="13">%s</text>`+"\n",
			c.x.pos(l.DN), c.y.pos(l.PS), html.EscapeString(l.Text))
	}
	b.WriteString("</g>\n")

	c.writePoint(&b, result)
	c.writeLegend(&b, spec, result)

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// canvas holds the axis mappings for one document.
type canvas struct {
	x, y          logAxis
	width, height float64
}

func (r *SVGRenderer) canvas() canvas {
	w, h := float64(r.opts.Width), float64(r.opts.Height)
	return canvas{
		x:      logAxis{min: ped.ChartDNMin, max: ped.ChartDNMax, from: marginLeft, to: w - marginRight},
		y:      logAxis{min: ped.ChartPSMin, max: ped.ChartPSMax, from: h - marginBottom, to: marginTop},
		width:  w,
		height: h,
	}
}

func (c canvas) writeGrid(b *strings.Builder) {
	xMajor, xMinor := c.x.ticks()
	yMajor, yMinor := c.y.ticks()

	b.WriteString(`<g stroke="#cccccc" stroke-width="0.5" stroke-dasharray="4 3">` + "\n")
	for _, v := range append(xMajor, xMinor...) {
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", c.x.pos(v), c.y.from, c.x.pos(v), c.y.to)
	}
	for _, v := range append(yMajor, yMinor...) {
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", c.x.from, c.y.pos(v), c.x.to, c.y.pos(v))
	}
	b.WriteString("</g>\n")
}

func (c canvas) writeAxes(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="black"/>`+"\n",
		c.x.from, c.y.to, c.x.to-c.x.from, c.y.from-c.y.to)

	xMajor, _ := c.x.ticks()
	for _, v := range xMajor {
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="11" text-anchor="middle">%g</text>`+"\n", c.x.pos(v), c.y.from+16, v)
	}
	yMajor, _ := c.y.ticks()
	for _, v := range yMajor {
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="11" text-anchor="end">%g</text>`+"\n", c.x.from-6, c.y.pos(v)+4, v)
	}

	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="13" text-anchor="middle">DN (mm)</text>`+"\n",
		(c.x.from+c.x.to)/2, c.height-20)
	fmt.Fprintf(b, `<text x="20" y="%.2f" font-size="13" text-anchor="middle" transform="rotate(-90 20 %.2f)">PS (bar)</text>`+"\n",
		(c.y.from+c.y.to)/2, (c.y.from+c.y.to)/2)
	fmt.Fprintf(b, `<text x="%.2f" y="30" font-size="16" text-anchor="middle">%s</text>`+"\n",
		c.width/2, html.EscapeString(title))
}

func (c canvas) writeRegion(b *strings.Builder, region ped.Region) {
	pts := make([]string, len(region.Vertices))
	for i, v := range region.Vertices {
		pts[i] = fmt.Sprintf("%.2f,%.2f", c.x.pos(v.DN), c.y.pos(v.PS))
	}
	fmt.Fprintf(b, `<polygon points="%s" fill="%s" fill-opacity="0.5" stroke="none"/>`+"\n",
		strings.Join(pts, " "), colorOr(region.Color, "lightgray"))
}

func (c canvas) writeSegment(b *strings.Builder, seg ped.Segment) {
	var x1, y1, x2, y2 float64
	switch seg.Orientation {
	case ped.Vertical:
		if !c.x.contains(seg.At) {
			return
		}
		x1, x2 = c.x.pos(seg.At), c.x.pos(seg.At)
		y1, y2 = c.y.pos(c.y.clamp(seg.From)), c.y.pos(c.y.clamp(seg.To))
	default:
		if !c.y.contains(seg.At) {
			return
		}
		y1, y2 = c.y.pos(seg.At), c.y.pos(seg.At)
		x1, x2 = c.x.pos(c.x.clamp(seg.From)), c.x.pos(c.x.clamp(seg.To))
	}

	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"%s><title>%s</title></line>`+"\n",
		x1, y1, x2, y2, colorOr(seg.Color, "black"), dashAttr(seg.Reference), html.EscapeString(seg.Label))
}

func (c canvas) writeCurve(b *strings.Builder, curve ped.IsoProduct, samples int) {
	// restrict DN to the span where the curve stays inside the PS axis
	lo := max(curve.DNFrom, curve.K/c.y.max, c.x.min)
	hi := min(curve.DNTo, curve.K/c.y.min, c.x.max)
	if lo >= hi {
		return
	}

	pts := make([]string, 0, samples)
	for _, dn := range logspace(lo, hi, samples) {
		pts = append(pts, fmt.Sprintf("%.2f,%.2f", c.x.pos(dn), c.y.pos(curve.PS(dn))))
	}
	fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"><title>%s</title></polyline>`+"\n",
		strings.Join(pts, " "), colorOr(curve.Color, "black"), html.EscapeString(curve.Label))
}

func (c canvas) writePoint(b *strings.Builder, result ped.Result) {
	dn, ps := c.x.clamp(result.Point.DN), c.y.clamp(result.Point.PS)
	x, y := c.x.pos(dn), c.y.pos(ps)
	const arm = 7.0

	fmt.Fprintf(b, `<g stroke="blue" stroke-width="3"><line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/><line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/></g>`+"\n",
		x-arm, y-arm, x+arm, y+arm, x-arm, y+arm, x+arm, y-arm)

	note := result.Category.String()
	if dn != result.Point.DN || ps != result.Point.PS {
		note += " (outside chart: " + result.Point.String() + ")"
	}
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="12" fill="blue">%s</text>`+"\n",
		x+arm+3, y-arm-3, html.EscapeString(note))
}

func (c canvas) writeLegend(b *strings.Builder, spec ped.ChartSpec, result ped.Result) {
	type entry struct {
		label, color string
		dashed       bool
	}
	var entries []entry
	for _, seg := range spec.Segments {
		entries = append(entries, entry{seg.Label, colorOr(seg.Color, "black"), seg.Reference})
	}
	for _, curve := range spec.Curves {
		entries = append(entries, entry{curve.Label, colorOr(curve.Color, "black"), false})
	}

	const rowHeight, boxWidth = 16.0, 190.0
	height := rowHeight*float64(len(entries)+1) + 8
	left := c.x.to - boxWidth - 8
	top := c.y.from - height - 8

	fmt.Fprintf(b, `<g font-size="11"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white" fill-opacity="0.85" stroke="#999999"/>`+"\n",
		left, top, boxWidth, height)
	for i, e := range entries {
		y := top + 4 + rowHeight*float64(i+1) - 4
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"%s/>`+"\n",
			left+6, y-4, left+30, y-4, e.color, dashAttr(e.dashed))
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f">%s</text>`+"\n", left+36, y, html.EscapeString(e.label))
	}
	y := top + 4 + rowHeight*float64(len(entries)+1) - 4
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="blue">x Operating Point: %s</text>`+"\n",
		left+10, y, html.EscapeString(result.Category.String()))
	b.WriteString("</g>\n")
}

func colorOr(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}

func dashAttr(dashed bool) string {
	if dashed {
		return ` stroke-dasharray="6 4"`
	}
	return ""
}

// Compile-time interface satisfaction check.
var _ Renderer = (*SVGRenderer)(nil)
