package analyzer

import (
	"fmt"
	"image"

	"github.com/ivlev/focuscursor/internal/director"
)

// Scenario builds a scenario whose elements are the detected blocks.
// Each block becomes a root element positioned at its center.
func Scenario(viewport image.Rectangle, blocks []Block, fps, duration float64) *director.Scenario {
	s := &director.Scenario{
		Version:  "1.0",
		FPS:      fps,
		Duration: duration,
		Viewport: director.Size{W: viewport.Dx(), H: viewport.Dy()},
	}
	for i, b := range blocks {
		r := b.Rect.Sub(viewport.Min)
		w, h := float64(r.Dx()), float64(r.Dy())
		s.Elements = append(s.Elements, director.ElementSpec{
			ID:       fmt.Sprintf("block_%d", i+1),
			Position: []float64{float64(r.Min.X) + w/2, float64(r.Min.Y) + h/2},
			Rect:     &director.Rectangle{X: -w / 2, Y: -h / 2, W: w, H: h},
		})
	}
	return s
}
