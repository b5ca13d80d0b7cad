package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/focuscursor/internal/system"
)

// ImageSource stretches a jpeg or png file over the viewport
type ImageSource struct {
	path string

	mu     sync.Mutex
	img    image.Image
	scaled map[image.Point]*image.RGBA
}

// NewImageSource принимает файл изображения или директорию (берется самое свежее изображение)
func NewImageSource(path string) (*ImageSource, error) {
	resolved, err := system.FindLatestImage(path)
	if err != nil {
		return nil, err
	}
	return &ImageSource{path: resolved, scaled: make(map[image.Point]*image.RGBA)}, nil
}

// Path is the image file in use
func (s *ImageSource) Path() string { return s.path }

// GetDimensions читает размер изображения без декодирования пикселей
func (s *ImageSource) GetDimensions() (int, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Image returns the decoded image at its native size
func (s *ImageSource) Image() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		img, err := s.decode()
		if err != nil {
			return nil, err
		}
		s.img = img
	}
	return s.img, nil
}

// Background возвращает копию изображения, масштабированную до w x h.
// Результаты масштабирования кэшируются по размеру.
func (s *ImageSource) Background(w, h int) (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := image.Pt(w, h)
	cached, ok := s.scaled[size]
	if !ok {
		if s.img == nil {
			img, err := s.decode()
			if err != nil {
				return nil, err
			}
			s.img = img
		}
		cached = image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(cached, cached.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
		s.scaled[size] = cached
	}

	out := image.NewRGBA(cached.Rect)
	copy(out.Pix, cached.Pix)
	return out, nil
}

func (s *ImageSource) decode() (image.Image, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = nil
	s.scaled = make(map[image.Point]*image.RGBA)
	return nil
}
