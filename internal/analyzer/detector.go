// Package analyzer finds rectangular UI regions in a screenshot so they can
// become focusable scene elements.
package analyzer

import (
	"fmt"
	"image"
)

// Block is a detected region of interest
type Block struct {
	Rect image.Rectangle
	// Density is the share of edge pixels inside Rect, in [0,1]
	Density float64
}

// Detector finds blocks in an image
type Detector interface {
	Detect(img image.Image) ([]Block, error)
}

// NewDetector creates a detector by name
func NewDetector(variant string) (Detector, error) {
	switch variant {
	case "contrast", "":
		return NewContrastDetector(), nil
	default:
		return nil, fmt.Errorf("unknown detector variant: %s", variant)
	}
}
