package config

import (
	"fmt"

	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/easing"
	"github.com/ivlev/focuscursor/internal/geom"
	"github.com/ivlev/focuscursor/internal/logging"
)

// Config is the full application configuration
type Config struct {
	Cursor  CursorConfig  `mapstructure:"cursor" yaml:"cursor"`
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CursorConfig mirrors cursor.Config with names instead of functions and enums
type CursorConfig struct {
	UseUnscaledTime    bool         `mapstructure:"use_unscaled_time" yaml:"use_unscaled_time"`
	Border             Vec2         `mapstructure:"border" yaml:"border"`
	Opacity            float64      `mapstructure:"opacity" yaml:"opacity"`
	TransitionDuration float64      `mapstructure:"transition_duration" yaml:"transition_duration"`
	Easing             string       `mapstructure:"easing" yaml:"easing"`
	Curve              []easing.Key `mapstructure:"curve" yaml:"curve,omitempty"` // Overrides Easing when set
	Resolve            string       `mapstructure:"resolve" yaml:"resolve"`
	ColorMode          string       `mapstructure:"color_mode" yaml:"color_mode"`
	BlendSpace         string       `mapstructure:"blend_space" yaml:"blend_space"`
	TweenScale         bool         `mapstructure:"tween_scale" yaml:"tween_scale"`
	BaseScale          Vec3         `mapstructure:"base_scale" yaml:"base_scale"`
	Color              string       `mapstructure:"color" yaml:"color"`
}

// PreviewConfig controls frame rendering and encoding
type PreviewConfig struct {
	Workers    int     `mapstructure:"workers" yaml:"workers"` // 0 picks the physical core count
	Encoder    string  `mapstructure:"encoder" yaml:"encoder"` // "auto" probes ffmpeg
	Quality    int     `mapstructure:"quality" yaml:"quality"`
	Background string  `mapstructure:"background" yaml:"background"` // Image file, directory or #rrggbb
	RingWidth  float64 `mapstructure:"ring_width" yaml:"ring_width"`
	Labels     bool    `mapstructure:"labels" yaml:"labels"`
	HUD        bool    `mapstructure:"hud" yaml:"hud"`
	Stats      bool    `mapstructure:"stats" yaml:"stats"`
}

// LogConfig selects log verbosity and output format
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Vec2 is a config-friendly 2D vector
type Vec2 struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
}

// Vec3 is a config-friendly 3D vector
type Vec3 struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
	Z float64 `mapstructure:"z" yaml:"z"`
}

// CursorConfig resolves names and keyframes into a cursor.Config
func (c *Config) CursorConfig() (cursor.Config, error) {
	cc := c.Cursor
	out := cursor.DefaultConfig()

	out.UseUnscaledTime = cc.UseUnscaledTime
	out.BorderSize = geom.V2(cc.Border.X, cc.Border.Y)
	out.Opacity = cc.Opacity
	out.TransitionDuration = cc.TransitionDuration
	out.TweenScale = cc.TweenScale
	out.BaseScale = geom.V3(cc.BaseScale.X, cc.BaseScale.Y, cc.BaseScale.Z)

	fn, err := cc.easingFunc()
	if err != nil {
		return cursor.Config{}, err
	}
	if fn != nil {
		out.Easing = fn
	}

	if out.Resolve, err = cursor.ParseResolveMode(cc.Resolve); err != nil {
		return cursor.Config{}, err
	}
	if out.ColorMode, err = cursor.ParseColorMode(cc.ColorMode); err != nil {
		return cursor.Config{}, err
	}
	if out.BlendSpace, err = cursor.ParseColorSpace(cc.BlendSpace); err != nil {
		return cursor.Config{}, err
	}
	if cc.Color != "" {
		if out.Color, err = geom.ParseColor(cc.Color); err != nil {
			return cursor.Config{}, fmt.Errorf("cursor.color: %w", err)
		}
	}
	return out, nil
}

// easingFunc returns nil when the default curve should be kept
func (cc CursorConfig) easingFunc() (easing.Func, error) {
	if len(cc.Curve) > 0 {
		curve, err := easing.NewCurve(cc.Curve...)
		if err != nil {
			return nil, fmt.Errorf("cursor.curve: %w", err)
		}
		return curve.Func(), nil
	}
	if cc.Easing == "" || cc.Easing == "default" {
		return nil, nil
	}
	fn, err := easing.Lookup(cc.Easing)
	if err != nil {
		return nil, fmt.Errorf("cursor.easing: %w", err)
	}
	return fn, nil
}

// LoggingConfig converts the log section for the logging package
func (c *Config) LoggingConfig() (logging.Config, error) {
	out := logging.DefaultConfig()
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return out, err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return out, err
	}
	out.Level = level
	out.Format = format
	return out, nil
}
