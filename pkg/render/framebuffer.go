package render

import (
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is a software Canvas backed by an RGBA image.
// In the terminal each cell shows two vertical pixels using half blocks (▀).
type Framebuffer struct {
	Width  int
	Height int
	img    *image.RGBA
	face   font.Face
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// For terminal output height should be 2x the terminal rows.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		face:   basicfont.Face7x13,
	}
}

// Resize reallocates the pixel buffer when the dimensions change.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width, fb.Height = width, height
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image returns the backing image. It is reused across frames.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	draw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// DrawLine draws a one pixel line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	fb.bresenham(x0, y0, x1, y1, func(x, y int) {
		fb.SetPixel(x, y, c)
	})
}

func (fb *Framebuffer) bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// StrokeLine draws a line with a square pen of the given width.
func (fb *Framebuffer) StrokeLine(a, b image.Point, width int, c color.RGBA) {
	if width <= 1 {
		fb.DrawLine(a.X, a.Y, b.X, b.Y, c)
		return
	}
	off := (width - 1) / 2
	fb.bresenham(a.X, a.Y, b.X, b.Y, func(x, y int) {
		fb.DrawRect(x-off, y-off, width, width, c)
	})
}

// StrokePolygon outlines a closed polygon.
func (fb *Framebuffer) StrokePolygon(pts []image.Point, width int, c color.RGBA) {
	for i := range pts {
		fb.StrokeLine(pts[i], pts[(i+1)%len(pts)], width, c)
	}
}

// FillPolygon fills a polygon with the even-odd rule, sampling pixel centres.
func (fb *Framebuffer) FillPolygon(pts []image.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, fb.Height-1)

	xs := make([]float64, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= sy) == (by <= sy) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i]-0.5)), 0)
			x1 := min(int(math.Ceil(xs[i+1]-0.5)), fb.Width)
			for x := x0; x < x1; x++ {
				fb.img.SetRGBA(x, y, c)
			}
		}
	}
}

// FillDisc fills every pixel within radius of center.
func (fb *Framebuffer) FillDisc(center image.Point, radius int, c color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				fb.SetPixel(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// DrawText draws text with its baseline starting at at.
func (fb *Framebuffer) DrawText(at image.Point, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(c),
		Face: fb.face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// TextWidth returns the advance of text in pixels.
func (fb *Framebuffer) TextWidth(text string) int {
	return font.MeasureString(fb.face, text).Ceil()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ Canvas = (*Framebuffer)(nil)
