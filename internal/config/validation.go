package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every invalid value at once
func (c *Config) Validate() error {
	var errs []error

	cc := c.Cursor
	if math.IsNaN(cc.TransitionDuration) || cc.TransitionDuration < 0 || cc.TransitionDuration > MaxTransitionDuration {
		errs = append(errs, fmt.Errorf("cursor.transition_duration must be between 0 and %g", MaxTransitionDuration))
	}
	if math.IsNaN(cc.Opacity) || cc.Opacity < 0 || cc.Opacity > 1 {
		errs = append(errs, errors.New("cursor.opacity must be between 0 and 1"))
	}
	if cc.Border.X < 0 || cc.Border.Y < 0 {
		errs = append(errs, errors.New("cursor.border must not be negative"))
	}
	if _, err := c.CursorConfig(); err != nil {
		errs = append(errs, err)
	}

	p := c.Preview
	if p.Workers < 0 {
		errs = append(errs, errors.New("preview.workers must be non-negative"))
	}
	if p.Quality < 0 || p.Quality > 100 {
		errs = append(errs, errors.New("preview.quality must be between 0 and 100"))
	}
	if p.RingWidth < 0 {
		errs = append(errs, errors.New("preview.ring_width must not be negative"))
	}

	if _, err := c.LoggingConfig(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
