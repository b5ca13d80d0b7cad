// Package source supplies the backdrop preview frames are drawn on.
package source

import (
	"image"
	"image/color"
	"image/draw"
)

// Source produces the background for a viewport of the given size.
// Implementations must be safe for concurrent use.
type Source interface {
	Background(w, h int) (*image.RGBA, error)
	Close() error
}

// SolidSource fills the viewport with one color
type SolidSource struct {
	Color color.RGBA
}

// NewSolidSource creates a SolidSource
func NewSolidSource(c color.RGBA) *SolidSource {
	return &SolidSource{Color: c}
}

func (s *SolidSource) Background(w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.Color), image.Point{}, draw.Src)
	return img, nil
}

func (s *SolidSource) Close() error {
	return nil
}
