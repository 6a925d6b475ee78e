package effects

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Palette sets the colours used when rasterising a field.
type Palette struct {
	Top, Bottom color.RGBA // background gradient
	Particle    color.RGBA // alpha is scaled per particle
	Link        color.RGBA // alpha is scaled per link
	LinkWidth   float64
	LinkDist    float64
}

// DefaultPalette is the dark hero look.
var DefaultPalette = Palette{
	Top:       color.RGBA{0x00, 0x00, 0x00, 0xff},
	Bottom:    color.RGBA{0x12, 0x12, 0x12, 0xff},
	Particle:  color.RGBA{0xb4, 0xc8, 0xff, 0xff},
	Link:      color.RGBA{0x96, 0x96, 0xff, 0xff},
	LinkWidth: 0.8,
	LinkDist:  120,
}

// Image rasterises the field at its configured size.
func (f *Field) Image(p Palette) *image.RGBA {
	w := int(math.Ceil(f.cfg.Width))
	h := int(math.Ceil(f.cfg.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillGradient(img, p.Top, p.Bottom)

	for _, l := range f.Links(p.LinkDist) {
		a, b := f.Particles[l.A], f.Particles[l.B]
		fillPolygon(img, segment(a.X, a.Y, b.X, b.Y, p.LinkWidth/2), fade(p.Link, l.Alpha*0.6))
	}
	for _, pt := range f.Particles {
		fillPolygon(img, circle(pt.X, pt.Y, pt.Radius), fade(p.Particle, pt.Alpha*2))
	}
	return img
}

// RenderPNG writes the rasterised field as a PNG.
func (f *Field) RenderPNG(w io.Writer, p Palette) error {
	if err := png.Encode(w, f.Image(p)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Thumbnail scales src down to width pixels, keeping the aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(src image.Image, width int) image.Image {
	b := src.Bounds()
	if width <= 0 || b.Dx() <= width {
		return src
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = clamp(alpha, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * alpha))}
}

func fillGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if b.Dy() > 1 {
			t = float64(y-b.Min.Y) / float64(b.Dy()-1)
		}
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

type point struct{ x, y float64 }

func circle(cx, cy, r float64) []point {
	const n = 16
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// segment returns the quad covering the line from (x0, y0) to (x1, y1)
// with half-width hw.
func segment(x0, y0, x1, y1, hw float64) []point {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*hw, dx/l*hw
	return []point{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
}

// fillPolygon composites a filled polygon onto img, rasterising only its
// bounding box.
func fillPolygon(img *image.RGBA, pts []point, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	clip := box.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}

	// The mask is anchored at clip.Min; path segments outside it are
	// clamped by the rasterizer.
	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	z.DrawOp = draw.Over
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	z.MoveTo(float32(pts[0].x-ox), float32(pts[0].y-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.x-ox), float32(p.y-oy))
	}
	z.ClosePath()
	z.Draw(img, clip, image.NewUniform(c), image.Point{})
}
