// Package visualization renders a reconstructed hemisphere as an SVG
// all-sky image. It is a display adapter around the numeric core: it
// consumes the brightness array, the pixel geometry and the summary
// statistics, and emits markup. Nothing here feeds back into imaging.
package visualization

import (
	"bytes"
	"fmt"
	"math"

	"github.com/tart-telescope/web-app/internal/models"
	"github.com/tart-telescope/web-app/pkg/sphere"
)

// Options selects the optional overlays of a rendering.
type Options struct {
	// Width is the SVG canvas edge in pixels; zero means 4000.
	Width int

	// ShowGrid draws elevation rings and azimuth spokes
	ShowGrid bool

	// ShowStats prints the summary statistics block
	ShowStats bool

	// ShowColorbar draws the brightness color scale
	ShowColorbar bool

	// Sources are drawn as labelled markers when non-empty
	Sources []models.Source
}

// Renderer draws one hemisphere. Build it with NewRenderer after
// reconstruction has filled the brightness array.
type Renderer struct {
	sky   *sphere.Hemisphere
	stats models.Stats
	opts  Options
	pc    plotCoords
}

// plotCoords maps unit-disk sky projections onto the SVG canvas. The
// 2.1 divisor leaves a margin outside the horizon circle.
type plotCoords struct {
	width    int
	center   int
	scale    float64
	lineSize int
}

func newPlotCoords(w int) plotCoords {
	lineSize := w / 400
	if lineSize < 1 {
		lineSize = 1
	}
	return plotCoords{
		width:    w,
		center:   int(math.Round(float64(w) / 2)),
		scale:    float64(w) / 2.1,
		lineSize: lineSize,
	}
}

func (pc plotCoords) fromXY(x, y float64) (int, int) {
	return int(math.Round(x*pc.scale)) + pc.center, int(math.Round(y*pc.scale)) + pc.center
}

func (pc plotCoords) fromElAz(el, az float64) (int, int) {
	x, y := sphere.HpFromElAz(el, az).Proj()
	return pc.fromXY(x, y)
}

// NewRenderer builds a renderer for the given hemisphere and its
// brightness statistics.
func NewRenderer(sky *sphere.Hemisphere, stats models.Stats, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 4000
	}
	return &Renderer{
		sky:   sky,
		stats: stats,
		opts:  opts,
		pc:    newPlotCoords(opts.Width),
	}
}

// RenderSVG produces the SVG document.
func (r *Renderer) RenderSVG() []byte {
	var buf bytes.Buffer
	w := r.pc.width

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, w, w, w)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#0b0b1a"/>`+"\n", w, w)

	r.writePixels(&buf)

	// Horizon circle on top of the pixels
	cx, cy := r.pc.fromXY(0, 0)
	fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#888" stroke-width="%d"/>`+"\n",
		cx, cy, int(math.Round(r.pc.scale)), r.pc.lineSize)

	if r.opts.ShowGrid {
		r.writeGrid(&buf)
	}
	if len(r.opts.Sources) > 0 {
		r.writeSources(&buf)
	}
	if r.opts.ShowColorbar {
		r.writeColorbar(&buf)
	}
	if r.opts.ShowStats {
		r.writeStats(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writePixels draws one disk per visible pixel, color-mapped over the
// brightness range. Disks use the equal-area angular radius of a
// HEALPix pixel, slightly inflated so neighbours touch.
func (r *Renderer) writePixels(buf *bytes.Buffer) {
	span := r.stats.Max - r.stats.Min
	invSpan := 0.0
	if span > 0 {
		invSpan = 1 / span
	}

	angRadius := math.Sqrt(4.0 / float64(sphere.Npix(r.sky.Nside)))
	radius := int(math.Round(r.pc.scale * angRadius * 1.15))
	if radius < 1 {
		radius = 1
	}

	for p := 0; p < r.sky.NumPixels(); p++ {
		x, y := r.pc.fromElAz(r.sky.El[p], r.sky.Az[p])
		c := heatColor((r.sky.Pixels[p] - r.stats.Min) * invSpan)
		fmt.Fprintf(buf, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n", x, y, radius, c)
	}
}

// writeGrid draws elevation rings every 30 degrees and azimuth spokes
// every 30 degrees.
func (r *Renderer) writeGrid(buf *bytes.Buffer) {
	cx, cy := r.pc.fromXY(0, 0)
	for _, elDeg := range []float64{30, 60} {
		ringR := int(math.Round(r.pc.scale * math.Cos(elDeg*math.Pi/180)))
		fmt.Fprintf(buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#666" stroke-width="%d" stroke-dasharray="20,20"/>`+"\n",
			cx, cy, ringR, r.pc.lineSize)
	}
	for azDeg := 0.0; azDeg < 360; azDeg += 30 {
		x, y := r.pc.fromElAz(0, azDeg*math.Pi/180)
		fmt.Fprintf(buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#666" stroke-width="%d" stroke-dasharray="20,20"/>`+"\n",
			cx, cy, x, y, r.pc.lineSize)
	}
}

// writeSources marks the known celestial sources. Source directions
// arrive in degrees.
func (r *Renderer) writeSources(buf *bytes.Buffer) {
	markerR := r.pc.width / 100
	fontSize := r.pc.width / 80
	for _, s := range r.opts.Sources {
		if s.El < 0 {
			continue
		}
		x, y := r.pc.fromElAz(s.El*math.Pi/180, s.Az*math.Pi/180)
		fmt.Fprintf(buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#ffd700" stroke-width="%d"/>`+"\n",
			x, y, markerR, r.pc.lineSize*2)
		fmt.Fprintf(buf, `<text x="%d" y="%d" fill="#ffd700" font-size="%d">%s</text>`+"\n",
			x+markerR*2, y, fontSize, svgEscape(s.Name))
	}
}

// writeColorbar draws a vertical gradient bar on the right edge with the
// brightness extremes as labels.
func (r *Renderer) writeColorbar(buf *bytes.Buffer) {
	w := r.pc.width
	barW := w / 40
	barH := w / 2
	x := w - barW*2
	y := w / 4
	fontSize := w / 80

	buf.WriteString(`<defs><linearGradient id="bar" x1="0" y1="1" x2="0" y2="0">` + "\n")
	for i := 0; i <= 10; i++ {
		frac := float64(i) / 10
		fmt.Fprintf(buf, `<stop offset="%d%%" stop-color="%s"/>`+"\n", i*10, heatColor(frac))
	}
	buf.WriteString(`</linearGradient></defs>` + "\n")

	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="url(#bar)" stroke="#888"/>`+"\n", x, y, barW, barH)
	fmt.Fprintf(buf, `<text x="%d" y="%d" fill="#ccc" font-size="%d">%.3g</text>`+"\n", x, y-fontSize/2, fontSize, r.stats.Max)
	fmt.Fprintf(buf, `<text x="%d" y="%d" fill="#ccc" font-size="%d">%.3g</text>`+"\n", x, y+barH+fontSize, fontSize, r.stats.Min)
}

// writeStats prints the summary statistics block in the top-left corner.
func (r *Renderer) writeStats(buf *bytes.Buffer) {
	fontSize := r.pc.width / 80
	x := fontSize
	y := fontSize * 2

	lines := []string{
		fmt.Sprintf("pixels: %d", r.sky.NumPixels()),
		fmt.Sprintf("min: %.4g", r.stats.Min),
		fmt.Sprintf("max: %.4g", r.stats.Max),
		fmt.Sprintf("mean: %.4g", r.stats.Mean),
		fmt.Sprintf("sdev: %.4g", r.stats.StdDev),
		fmt.Sprintf("median: %.4g", r.stats.Median),
		fmt.Sprintf("mad: %.4g", r.stats.MAD),
	}
	for i, line := range lines {
		fmt.Fprintf(buf, `<text x="%d" y="%d" fill="#ccc" font-size="%d" font-family="monospace">%s</text>`+"\n",
			x, y+i*fontSize*3/2, fontSize, line)
	}
}

// heatColor maps a normalized brightness in [0, 1] onto a dark-to-hot
// color ramp (deep blue, magenta, orange, near-white).
func heatColor(frac float64) string {
	if math.IsNaN(frac) {
		frac = 0
	}
	frac = math.Max(0, math.Min(1, frac))

	ramp := [][3]float64{
		{13, 8, 135},
		{156, 23, 158},
		{237, 121, 83},
		{240, 249, 33},
	}
	pos := frac * float64(len(ramp)-1)
	lo := int(pos)
	if lo >= len(ramp)-1 {
		lo = len(ramp) - 2
	}
	t := pos - float64(lo)

	c := [3]int{}
	for i := 0; i < 3; i++ {
		c[i] = int(math.Round(ramp[lo][i] + t*(ramp[lo+1][i]-ramp[lo][i])))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func svgEscape(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		case '&':
			out.WriteString("&amp;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
