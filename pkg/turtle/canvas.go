package turtle

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"goturtle/pkg/interp"
)

// Canvas is a raster Surface. The turtle starts in the centre of the image,
// facing east with the pen down, drawing black on white.
type Canvas struct {
	img      *image.RGBA
	ras      *vector.Rasterizer
	pose     Pose
	penWidth float64
	bg       color.RGBA
	text     []string
	textOut  io.Writer
}

var _ interp.Surface = (*Canvas)(nil)

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithPenWidth sets the stroke width in pixels (default 2).
func WithPenWidth(w float64) CanvasOption {
	return func(c *Canvas) { c.penWidth = w }
}

// WithBackground sets the background color (default white).
func WithBackground(bg color.RGBA) CanvasOption {
	return func(c *Canvas) { c.bg = bg }
}

// WithTextOutput also writes every emitted line to w.
func WithTextOutput(w io.Writer) CanvasOption {
	return func(c *Canvas) { c.textOut = w }
}

func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:      vector.NewRasterizer(width, height),
		pose:     HomePose(),
		penWidth: 2,
		bg:       Palette["white"],
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Clear()
	return c
}

// Clear paints the background and sends the turtle home. Emitted text is
// discarded.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
	c.pose = HomePose()
	c.text = nil
}

func (c *Canvas) Forward(distance float64) {
	from := c.pose
	c.pose = c.pose.Advance(distance)
	if from.PenDown {
		x0, y0 := c.toScreen(from.X, from.Y)
		x1, y1 := c.toScreen(c.pose.X, c.pose.Y)
		c.strokeSegment(x0, y0, x1, y1, lookupColor(from.Color))
	}
}

func (c *Canvas) TurnRight(degrees float64) { c.pose = c.pose.TurnRight(degrees) }
func (c *Canvas) PenUp()                    { c.pose.PenDown = false }
func (c *Canvas) PenDown()                  { c.pose.PenDown = true }
func (c *Canvas) SetColor(name string)      { c.pose.Color = name }

func (c *Canvas) EmitText(text string) {
	c.text = append(c.text, text)
	if c.textOut != nil {
		fmt.Fprintln(c.textOut, text)
	}
}

// Pose returns the turtle's current pose.
func (c *Canvas) Pose() Pose { return c.pose }

// Text returns every emitted line in order.
func (c *Canvas) Text() []string { return c.text }

// Image returns the live image. It changes as the turtle draws.
func (c *Canvas) Image() *image.RGBA { return c.img }

// toScreen maps turtle coordinates (origin at the centre, Y up) to pixels.
func (c *Canvas) toScreen(x, y float64) (float32, float32) {
	b := c.img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	return float32(cx + x), float32(cy - y)
}

// strokeSegment fills the rectangle around the segment, extended by half the
// pen width at both ends.
func (c *Canvas) strokeSegment(x0, y0, x1, y1 float32, ink color.RGBA) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := c.penWidth / 2
	ux, uy := dx/length*half, dy/length*half // along the segment
	nx, ny := float32(-uy), float32(ux)      // across the segment
	ax, ay := x0-float32(ux), y0-float32(uy)
	bx, by := x1+float32(ux), y1+float32(uy)

	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.MoveTo(ax+nx, ay+ny)
	c.ras.LineTo(bx+nx, by+ny)
	c.ras.LineTo(bx-nx, by-ny)
	c.ras.LineTo(ax-nx, ay-ny)
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(ink), image.Point{})
}

// SnapshotOptions selects overlays for Snapshot.
type SnapshotOptions struct {
	Cursor bool // draw the turtle as a small arrowhead
	Text   bool // draw emitted lines in the top-left corner
}

// Snapshot returns a copy of the image with the requested overlays.
func (c *Canvas) Snapshot(opts SnapshotOptions) *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	if opts.Cursor {
		c.drawCursor(out)
	}
	if opts.Text {
		drawLines(out, c.text)
	}
	return out
}

const cursorSize = 10

func (c *Canvas) drawCursor(dst *image.RGBA) {
	rad := c.pose.Heading * math.Pi / 180
	tipX, tipY := c.toScreen(c.pose.X+cursorSize*math.Cos(rad), c.pose.Y+cursorSize*math.Sin(rad))
	back := rad + math.Pi
	side := math.Pi / 6
	lx, ly := c.toScreen(c.pose.X+cursorSize/2*math.Cos(back-side), c.pose.Y+cursorSize/2*math.Sin(back-side))
	rx, ry := c.toScreen(c.pose.X+cursorSize/2*math.Cos(back+side), c.pose.Y+cursorSize/2*math.Sin(back+side))

	b := dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.MoveTo(tipX, tipY)
	ras.LineTo(lx, ly)
	ras.LineTo(rx, ry)
	ras.ClosePath()
	ras.Draw(dst, b, image.NewUniform(lookupColor(c.pose.Color)), image.Point{})
}

// drawLines renders text with the 7x13 bitmap face, one line per entry.
func drawLines(dst *image.RGBA, lines []string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	lineHeight := face.Metrics().Height
	for i, line := range lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(4),
			Y: fixed.I(4) + face.Metrics().Ascent + lineHeight.Mul(fixed.I(i)),
		}
		d.DrawString(line)
	}
}

// EncodePNG writes the canvas, with overlays, as PNG.
func (c *Canvas) EncodePNG(w io.Writer, opts SnapshotOptions) error {
	return png.Encode(w, c.Snapshot(opts))
}

// SavePNG encodes the canvas as a PNG and writes it to filename.
func (c *Canvas) SavePNG(filename string, opts SnapshotOptions) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
