package video

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSequence writes every frame as <Dir>/<Prefix>_00000.png
type PNGSequence struct {
	Dir    string
	Prefix string // Defaults to "frame"
}

func (p *PNGSequence) Open(_ context.Context, _, _ int, _ float64) (FrameSink, error) {
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	prefix := p.Prefix
	if prefix == "" {
		prefix = "frame"
	}
	return &pngSink{dir: p.Dir, prefix: prefix, enc: &png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

type pngSink struct {
	dir    string
	prefix string
	enc    *png.Encoder
	index  int
}

func (s *pngSink) WriteFrame(img image.Image) error {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%05d.png", s.prefix, s.index))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	s.index++
	return f.Close()
}

func (s *pngSink) Close() error { return nil }

// Discard drops frames; useful for timing the render path alone
type Discard struct{}

func (Discard) Open(context.Context, int, int, float64) (FrameSink, error) { return discardSink{}, nil }

type discardSink struct{}

func (discardSink) WriteFrame(image.Image) error { return nil }
func (discardSink) Close() error                 { return nil }
