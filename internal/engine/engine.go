package engine

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/logging"
	"github.com/ivlev/focuscursor/internal/renderer"
	"github.com/ivlev/focuscursor/internal/source"
	"github.com/ivlev/focuscursor/internal/system"
	"github.com/ivlev/focuscursor/internal/video"
)

// PreviewProject turns a scenario replay into encoded frames
type PreviewProject struct {
	Director *director.Director
	Renderer *renderer.Renderer
	Source   source.Source
	Encoder  video.Encoder
	Workers  int

	ShowStats    bool
	StatsOut     io.Writer // Report destination, stderr when nil
	BenchmarkLog string    // Appends one line per run when set
	BuildVersion string
}

// Stats summarizes a preview run
type Stats struct {
	Frames       int
	Workers      int
	Replay       time.Duration
	Render       time.Duration
	Total        time.Duration
	EffectiveFPS float64
	Memory       system.MemoryStats
}

// NewPreviewProject wires a project; workers <= 0 uses the physical core count
func NewPreviewProject(d *director.Director, r *renderer.Renderer, src source.Source, enc video.Encoder, workers int) *PreviewProject {
	return &PreviewProject{
		Director: d,
		Renderer: r,
		Source:   src,
		Encoder:  enc,
		Workers:  workers,
	}
}

// Run replays the scenario, renders frames in parallel and encodes them in order
func (p *PreviewProject) Run(ctx context.Context) (*Stats, error) {
	log := logging.FromContext(ctx)
	startTime := time.Now()
	s := p.Director.Scenario()

	workers := p.Workers
	if workers <= 0 {
		workers = system.DefaultWorkers(ctx)
	}

	frames, err := p.Director.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("сценарий не содержит кадров")
	}
	replayTime := time.Since(startTime)

	// Фон общий для всех кадров, рендерер копирует его в буфер из пула
	var bg *image.RGBA
	if p.Source != nil {
		bg, err = p.Source.Background(s.Viewport.W, s.Viewport.H)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	log.Info().
		Int("frames", len(frames)).
		Str("viewport", fmt.Sprintf("%dx%d", s.Viewport.W, s.Viewport.H)).
		Float64("fps", s.FPS).
		Int("workers", workers).
		Msg("rendering preview")

	sink, err := p.Encoder.Open(ctx, s.Viewport.W, s.Viewport.H, s.FPS)
	if err != nil {
		return nil, fmt.Errorf("open encoder: %w", err)
	}

	renderStart := time.Now()
	if err := p.pipeline(ctx, frames, bg, sink, workers); err != nil {
		sink.Close()
		return nil, err
	}
	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("finish encoding: %w", err)
	}

	total := time.Since(startTime)
	stats := &Stats{
		Frames:       len(frames),
		Workers:      workers,
		Replay:       replayTime,
		Render:       time.Since(renderStart),
		Total:        total,
		EffectiveFPS: float64(len(frames)) / total.Seconds(),
	}
	if mem, err := system.ReadMemoryStats(ctx); err != nil {
		log.Debug().Err(err).Msg("memory stats unavailable")
	} else {
		stats.Memory = mem
	}

	log.Info().Dur("total", total).Float64("effective_fps", stats.EffectiveFPS).Msg("preview finished")
	if p.ShowStats {
		p.report(ctx, stats)
	}
	return stats, nil
}

// pipeline рендерит кадры ограниченным пулом и передает их в sink по порядку.
// В ожидании кодирования одновременно находится не более 2*workers кадров.
func (p *PreviewProject) pipeline(ctx context.Context, frames []director.Frame, bg image.Image, sink video.FrameSink, workers int) error {
	g, gctx := errgroup.WithContext(ctx)

	window := make(chan struct{}, 2*workers)
	ready := make([]chan *image.RGBA, len(frames))
	for i := range ready {
		ready[i] = make(chan *image.RGBA, 1)
	}

	// 1. Render Pool (CPU bound)
	g.Go(func() error {
		var rg errgroup.Group
		rg.SetLimit(workers)
		for i := range frames {
			select {
			case window <- struct{}{}:
			case <-gctx.Done():
				rg.Wait()
				return gctx.Err()
			}
			i := i
			rg.Go(func() error {
				ready[i] <- p.Renderer.Render(bg, frames[i])
				return nil
			})
		}
		return rg.Wait()
	})

	// 2. Кодирование строго в порядке кадров
	g.Go(func() error {
		log := logging.FromContext(ctx)
		step := max(len(frames)/10, 1)
		for i := range frames {
			var img *image.RGBA
			select {
			case img = <-ready[i]:
			case <-gctx.Done():
				return gctx.Err()
			}
			err := sink.WriteFrame(img)
			p.Renderer.Release(img)
			<-window
			if err != nil {
				return fmt.Errorf("encode frame %d: %w", i, err)
			}
			if (i+1)%step == 0 || i+1 == len(frames) {
				log.Debug().Int("done", i+1).Int("total", len(frames)).Msg("encoded")
			}
		}
		return nil
	})

	return g.Wait()
}

func (p *PreviewProject) report(ctx context.Context, st *Stats) {
	out := p.StatsOut
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out,
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d (workers: %d)\n"+
			"Total Time: %.2fs\n"+
			"Replay: %.3fs\n"+
			"Render+Encode: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Process RSS: %.1f MiB (host used %.0f%%)\n"+
			"----------------------------\n",
		p.BuildVersion, st.Frames, st.Workers, st.Total.Seconds(), st.Replay.Seconds(), st.Render.Seconds(),
		st.EffectiveFPS, float64(st.Memory.ProcessRSS)/(1<<20), st.Memory.UsedPercent,
	)

	if p.BenchmarkLog == "" {
		return
	}
	entry := fmt.Sprintf("[%s] Build: %s | Frames: %d | Workers: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.BuildVersion, st.Frames, st.Workers, st.Total.Seconds(), st.Render.Seconds(), st.EffectiveFPS,
	)
	if err := appendLine(p.BenchmarkLog, entry); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", p.BenchmarkLog).Msg("could not write benchmark log")
	}
}

func appendLine(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
