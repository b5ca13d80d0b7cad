package config

import "github.com/spf13/viper"

// MaxTransitionDuration bounds cursor.transition_duration, in seconds
const MaxTransitionDuration = 5.0

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Cursor: CursorConfig{
			UseUnscaledTime:    true,
			Opacity:            1,
			TransitionDuration: 0.125,
			Easing:             "default",
			Resolve:            "corners",
			ColorMode:          "uniform",
			BlendSpace:         "rgb",
			BaseScale:          Vec3{X: 1, Y: 1, Z: 1},
			Color:              "#ffffff",
		},
		Preview: PreviewConfig{
			Encoder:    "auto",
			Quality:    23,
			Background: "#1e2128",
			RingWidth:  3,
			Labels:     true,
			HUD:        true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("cursor.use_unscaled_time", d.Cursor.UseUnscaledTime)
	v.SetDefault("cursor.border.x", d.Cursor.Border.X)
	v.SetDefault("cursor.border.y", d.Cursor.Border.Y)
	v.SetDefault("cursor.opacity", d.Cursor.Opacity)
	v.SetDefault("cursor.transition_duration", d.Cursor.TransitionDuration)
	v.SetDefault("cursor.easing", d.Cursor.Easing)
	v.SetDefault("cursor.resolve", d.Cursor.Resolve)
	v.SetDefault("cursor.color_mode", d.Cursor.ColorMode)
	v.SetDefault("cursor.blend_space", d.Cursor.BlendSpace)
	v.SetDefault("cursor.tween_scale", d.Cursor.TweenScale)
	v.SetDefault("cursor.base_scale.x", d.Cursor.BaseScale.X)
	v.SetDefault("cursor.base_scale.y", d.Cursor.BaseScale.Y)
	v.SetDefault("cursor.base_scale.z", d.Cursor.BaseScale.Z)
	v.SetDefault("cursor.color", d.Cursor.Color)

	v.SetDefault("preview.workers", d.Preview.Workers)
	v.SetDefault("preview.encoder", d.Preview.Encoder)
	v.SetDefault("preview.quality", d.Preview.Quality)
	v.SetDefault("preview.background", d.Preview.Background)
	v.SetDefault("preview.ring_width", d.Preview.RingWidth)
	v.SetDefault("preview.labels", d.Preview.Labels)
	v.SetDefault("preview.hud", d.Preview.HUD)
	v.SetDefault("preview.stats", d.Preview.Stats)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
