package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ivlev/focuscursor/internal/director"
)

// TraceLine is one tick of a headless replay
type TraceLine struct {
	Tick     int        `json:"tick"`
	Time     float64    `json:"time"`
	Focus    string     `json:"focus,omitempty"`
	From     string     `json:"from,omitempty"`
	Visible  bool       `json:"visible"`
	Blend    float64    `json:"blend"`
	Position [3]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
	Scale    [3]float64 `json:"scale"`
	Color    string     `json:"color"`
}

// NewTraceLine flattens a frame
func NewTraceLine(f director.Frame) TraceLine {
	c := f.Cursor
	return TraceLine{
		Tick:     f.Index,
		Time:     f.Time,
		Focus:    f.Focus,
		From:     f.From,
		Visible:  c.Visible,
		Blend:    c.Blend,
		Position: [3]float64{c.Position.X, c.Position.Y, c.Position.Z},
		Size:     [2]float64{c.Size.X, c.Size.Y},
		Scale:    [3]float64{c.Scale.X, c.Scale.Y, c.Scale.Z},
		Color:    c.Color.Hex(),
	}
}

// WriteTrace replays d and writes one line per tick, as JSON lines or aligned text
func WriteTrace(ctx context.Context, d *director.Director, w io.Writer, jsonLines bool) error {
	enc := json.NewEncoder(w)
	if !jsonLines {
		fmt.Fprintf(w, "%5s %7s %-12s %-12s %6s %18s %16s %s\n", "tick", "time", "focus", "from", "blend", "position", "size", "color")
	}
	return d.Run(ctx, func(f director.Frame) error {
		line := NewTraceLine(f)
		if jsonLines {
			return enc.Encode(line)
		}
		_, err := fmt.Fprintf(w, "%5d %7.3f %-12s %-12s %6.3f %18s %16s %s\n",
			line.Tick, line.Time, dash(line.Focus), dash(line.From), line.Blend,
			fmt.Sprintf("(%.1f, %.1f)", line.Position[0], line.Position[1]),
			fmt.Sprintf("%.1fx%.1f", line.Size[0], line.Size[1]),
			line.Color,
		)
		return err
	})
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
