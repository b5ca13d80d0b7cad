package analyzer

import (
	"image"
	"image/draw"
	"math"

	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/geom"
)

// ContrastDetector groups strong luminance edges into boxes
type ContrastDetector struct {
	MinBlockArea  int     // Minimum box area in pixels
	EdgeThreshold float64 // Sobel magnitude above which a pixel is an edge
	Grow          int     // Dilation radius joining nearby edges
}

// NewContrastDetector creates a detector tuned for UI screenshots
func NewContrastDetector() *ContrastDetector {
	return &ContrastDetector{
		MinBlockArea:  400,
		EdgeThreshold: 48,
		Grow:          3,
	}
}

// Detect returns blocks in reading order
func (d *ContrastDetector) Detect(img image.Image) ([]Block, error) {
	gray := toGray(img)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	if w < 3 || h < 3 {
		return nil, nil
	}

	edges := sobel(gray, d.EdgeThreshold)
	mask := dilate(edges, w, h, d.Grow)

	var blocks []Block
	for _, c := range components(mask, w, h) {
		if c.rect.Dx()*c.rect.Dy() < d.MinBlockArea {
			continue
		}
		blocks = append(blocks, Block{
			Rect:    c.rect.Add(gray.Rect.Min),
			Density: edgeDensity(edges, w, c.rect),
		})
	}

	SortReadingOrder(blocks, 20)
	return blocks, nil
}

// SortReadingOrder orders blocks top to bottom, then left to right within a row
func SortReadingOrder(blocks []Block, rowSlack int) {
	director.ReadingOrder(blocks, func(b Block) geom.Vec2 {
		return geom.V2(float64(b.Rect.Min.X), float64(b.Rect.Min.Y))
	}, float64(rowSlack))
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)
	return g
}

// sobel marks pixels whose gradient magnitude exceeds threshold. Border pixels stay unset.
func sobel(g *image.Gray, threshold float64) []bool {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	out := make([]bool, w*h)
	px := func(x, y int) float64 { return float64(g.Pix[y*g.Stride+x]) }
	t2 := threshold * threshold

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := px(x+1, y-1) + 2*px(x+1, y) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x-1, y) - px(x-1, y+1)
			gy := px(x-1, y+1) + 2*px(x, y+1) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x, y-1) - px(x+1, y-1)
			out[y*w+x] = gx*gx+gy*gy > t2
		}
	}
	return out
}

// dilate grows set pixels by r in both axes with two separable passes
func dilate(src []bool, w, h, r int) []bool {
	if r <= 0 {
		return src
	}
	tmp := make([]bool, len(src))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			if !src[row+x] {
				continue
			}
			for k := max(0, x-r); k <= min(w-1, x+r); k++ {
				tmp[row+k] = true
			}
		}
	}
	out := make([]bool, len(src))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !tmp[y*w+x] {
				continue
			}
			for k := max(0, y-r); k <= min(h-1, y+r); k++ {
				out[k*w+x] = true
			}
		}
	}
	return out
}

type component struct {
	rect image.Rectangle
}

// components labels 4-connected regions and returns their bounding boxes
func components(mask []bool, w, h int) []component {
	seen := make([]bool, len(mask))
	var out []component
	var queue []int

	for start, set := range mask {
		if !set || seen[start] {
			continue
		}
		minX, minY := start%w, start/w
		maxX, maxY := minX, minY

		seen[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			x, y := i%w, i/w
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)

			for _, n := range [4]int{i - 1, i + 1, i - w, i + w} {
				switch {
				case n < 0 || n >= len(mask):
					continue
				case (n == i-1 && x == 0) || (n == i+1 && x == w-1):
					continue
				case !mask[n] || seen[n]:
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
		out = append(out, component{rect: image.Rect(minX, minY, maxX+1, maxY+1)})
	}
	return out
}

func edgeDensity(edges []bool, w int, r image.Rectangle) float64 {
	area := r.Dx() * r.Dy()
	if area == 0 {
		return 0
	}
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if edges[y*w+x] {
				n++
			}
		}
	}
	return math.Min(1, float64(n)/float64(area))
}
