// Package renderer rasterizes replayed frames: element quads, labels and the cursor ring.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/geom"
	"github.com/ivlev/focuscursor/internal/system"
)

// Style controls how scene elements are painted
type Style struct {
	Element        color.RGBA
	FocusedElement color.RGBA
	Label          color.RGBA
	RingWidth      float64 // Cursor outline thickness in pixels; 0 fills the cursor
	Labels         bool
	HUD            bool
}

// DefaultStyle returns the preview palette
func DefaultStyle() Style {
	return Style{
		Element:        color.RGBA{R: 0x3a, G: 0x3f, B: 0x4b, A: 0xff},
		FocusedElement: color.RGBA{R: 0x4f, G: 0x56, B: 0x66, A: 0xff},
		Label:          color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
		RingWidth:      3,
		Labels:         true,
		HUD:            true,
	}
}

// Renderer draws frames of a fixed size. It is safe for concurrent use.
type Renderer struct {
	width, height int
	style         Style
	pool          *system.ImagePool
}

// New creates a renderer for a w x h viewport using the shared image pool
func New(w, h int, style Style) *Renderer {
	return &Renderer{width: w, height: h, style: style}
}

// WithPool makes the renderer draw into frames from p instead of the shared pool
func (r *Renderer) WithPool(p *system.ImagePool) *Renderer {
	r.pool = p
	return r
}

// Bounds is the frame rectangle
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Render paints f over bg. The result comes from the pool; hand it back with Release.
func (r *Renderer) Render(bg image.Image, f director.Frame) *image.RGBA {
	dst := r.get()
	if bg != nil {
		draw.Draw(dst, dst.Bounds(), bg, bg.Bounds().Min, draw.Src)
	}

	z := vector.NewRasterizer(r.width, r.height)
	for _, el := range f.Elements {
		if !el.Active {
			continue
		}
		fill := r.style.Element
		if el.Focused {
			fill = r.style.FocusedElement
		}
		z.Reset(r.width, r.height)
		z.DrawOp = draw.Over
		quad(z, el.Quad, false)
		z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})

		if r.style.Labels {
			c := el.Quad[0].Add(el.Quad[2]).Scale(0.5)
			r.text(dst, el.Name, c, true)
		}
	}

	if cur := f.Cursor; cur.Visible && cur.Color.A > 0 {
		z.Reset(r.width, r.height)
		z.DrawOp = draw.Over
		cursorShape(z, cur.Position.XY(), cur.Size.Mul(cur.Scale.XY().Abs()), r.style.RingWidth)
		z.Draw(dst, dst.Bounds(), image.NewUniform(cur.Color.RGBA()), image.Point{})
	}

	if r.style.HUD {
		hud := fmt.Sprintf("t=%.2fs x%.2f focus=%s blend=%.2f", f.Time, f.TimeScale, orDash(f.Focus), f.Cursor.Blend)
		r.text(dst, hud, geom.V2(6, 14), false)
	}
	return dst
}

// Release returns a rendered frame to the pool
func (r *Renderer) Release(img *image.RGBA) {
	if r.pool != nil {
		r.pool.Put(img)
		return
	}
	system.PutImage(img)
}

func (r *Renderer) get() *image.RGBA {
	if r.pool != nil {
		return r.pool.Get(r.Bounds())
	}
	return system.GetImage(r.Bounds())
}

func (r *Renderer) text(dst draw.Image, s string, at geom.Vec2, centered bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.style.Label),
		Face: basicfont.Face7x13,
	}
	x := at.X
	y := at.Y
	if centered {
		x -= float64(d.MeasureString(s).Round()) / 2
		y += float64(basicfont.Face7x13.Ascent) / 2
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(s)
}

// quad traces the four corners, optionally in reverse to cut a hole
func quad(z *vector.Rasterizer, q [4]geom.Vec2, reverse bool) {
	if reverse {
		q[1], q[3] = q[3], q[1]
	}
	z.MoveTo(float32(q[0].X), float32(q[0].Y))
	for _, p := range q[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// cursorShape traces an axis-aligned box, hollowed out to a ring when width > 0
func cursorShape(z *vector.Rasterizer, center, size geom.Vec2, width float64) {
	outer := box(center, size)
	quad(z, outer, false)
	inner := size.Sub(geom.V2(2*width, 2*width))
	if width > 0 && inner.X > 0 && inner.Y > 0 {
		quad(z, box(center, inner), true)
	}
}

func box(center, size geom.Vec2) [4]geom.Vec2 {
	r := geom.RectCentered(size.X, size.Y)
	var q [4]geom.Vec2
	for i, c := range r.Corners() {
		q[i] = c.Add(center)
	}
	return q
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
