package cursor

import (
	"fmt"
	"strings"

	"github.com/ivlev/focuscursor/internal/easing"
	"github.com/ivlev/focuscursor/internal/geom"
)

// Epsilon is the largest transition duration still treated as instant
const Epsilon = 1e-6

// ResolveMode selects how element bounds are converted to world space
type ResolveMode int

const (
	// ResolveCorners averages the four world-space corners. Correct under rotation and parent transforms.
	ResolveCorners ResolveMode = iota
	// ResolveCenterOffset adds the scaled local rect center to the world pivot. Only valid without rotation.
	ResolveCenterOffset
)

// ColorMode selects how the cursor color is computed
type ColorMode int

const (
	// ColorUniform keeps the cursor color and applies the configured opacity
	ColorUniform ColorMode = iota
	// ColorPerElement blends between the old and new element highlight colors
	ColorPerElement
)

// ColorSpace is the space per-element colors are blended in
type ColorSpace int

const (
	SpaceRGB ColorSpace = iota
	SpaceLab
	SpaceLuv
	SpaceHCL
)

var (
	resolveModeNames = []string{"corners", "center-offset"}
	colorModeNames   = []string{"uniform", "per-element"}
	colorSpaceNames  = []string{"rgb", "lab", "luv", "hcl"}
)

func (m ResolveMode) String() string { return enumName(resolveModeNames, int(m)) }
func (m ColorMode) String() string   { return enumName(colorModeNames, int(m)) }
func (s ColorSpace) String() string  { return enumName(colorSpaceNames, int(s)) }

// ParseResolveMode parses "corners" or "center-offset"
func ParseResolveMode(s string) (ResolveMode, error) {
	i, err := parseEnum("resolve mode", resolveModeNames, s)
	return ResolveMode(i), err
}

// ParseColorMode parses "uniform" or "per-element"
func ParseColorMode(s string) (ColorMode, error) {
	i, err := parseEnum("color mode", colorModeNames, s)
	return ColorMode(i), err
}

// ParseColorSpace parses "rgb", "lab", "luv" or "hcl"
func ParseColorSpace(s string) (ColorSpace, error) {
	i, err := parseEnum("color space", colorSpaceNames, s)
	return ColorSpace(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if key == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

// Config is supplied once when the cursor is created and never changes afterwards
type Config struct {
	// UseUnscaledTime advances transitions with the host's unscaled frame time
	UseUnscaledTime bool
	// BorderSize is added to the tracked element's scaled size
	BorderSize geom.Vec2
	// Opacity is the cursor alpha while something is focused
	Opacity float64
	// TransitionDuration is the tween length in seconds
	TransitionDuration float64
	// Easing maps normalized elapsed time to the blend factor; nil means linear
	Easing easing.Func

	Resolve    ResolveMode
	ColorMode  ColorMode
	BlendSpace ColorSpace

	// TweenScale blends the cursor scale between element scales; otherwise BaseScale is used
	TweenScale bool
	BaseScale  geom.Vec3

	// Color is the cursor's own color and the fallback for elements without an override
	Color geom.Color
}

// DefaultConfig mirrors the stock cursor: unscaled time, 0.125s ease-in-out, white, fully opaque
func DefaultConfig() Config {
	return Config{
		UseUnscaledTime:    true,
		Opacity:            1,
		TransitionDuration: 0.125,
		Easing:             easing.EaseInOut(0, 0, 1, 1).Func(),
		Resolve:            ResolveCorners,
		ColorMode:          ColorUniform,
		BlendSpace:         SpaceRGB,
		BaseScale:          geom.One3,
		Color:              geom.White,
	}
}

func (c Config) normalized() Config {
	c.Opacity = geom.Clamp01(c.Opacity)
	if !(c.TransitionDuration > 0) {
		c.TransitionDuration = 0
	}
	if c.Easing == nil {
		c.Easing = easing.Linear
	}
	if c.BaseScale == (geom.Vec3{}) {
		c.BaseScale = geom.One3
	}
	return c
}

// Instant reports whether transitions complete on the tick they start
func (c Config) Instant() bool {
	return c.TransitionDuration <= Epsilon
}
