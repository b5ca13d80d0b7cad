package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/engine"
	"github.com/ivlev/focuscursor/internal/geom"
	"github.com/ivlev/focuscursor/internal/logging"
	"github.com/ivlev/focuscursor/internal/renderer"
	"github.com/ivlev/focuscursor/internal/source"
	"github.com/ivlev/focuscursor/internal/system"
	"github.com/ivlev/focuscursor/internal/video"
)

// watchDebounce coalesces the burst of events editors emit on save
const watchDebounce = 200 * time.Millisecond

type previewOptions struct {
	outDir    string
	videoPath string
	benchLog  string
	watch     bool
}

func newPreviewCommand(a *app) *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview [scenario.yaml]",
		Short: "Render a scenario to a PNG sequence or an mp4",
		Long: `Render every tick of a scenario. --video streams raw frames to ffmpeg,
--out writes numbered PNG files. Without either, frames go to
output/<scenario>_frames.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := scenarioPath(ctx, args)
			if err != nil {
				return err
			}
			ctx = logging.WithScenario(ctx, path)

			if !opts.watch {
				return a.preview(ctx, path, opts)
			}
			return a.watchPreview(ctx, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.outDir, "out", "o", "", "directory for the PNG sequence")
	f.StringVar(&opts.videoPath, "video", "", "mp4 file to encode with ffmpeg")
	f.String("background", "", "background image, image directory or #rrggbb color")
	f.Int("workers", 0, "render workers (0: physical cores)")
	f.String("encoder", "", "ffmpeg video codec, or auto")
	f.Int("quality", 0, "codec quality (x264 CRF, nvenc CQ, VideoToolbox bitrate/100k)")
	f.Bool("stats", false, "print a performance report")
	f.StringVar(&opts.benchLog, "benchmark-log", "", "append a line per run to this file")
	f.BoolVarP(&opts.watch, "watch", "w", false, "re-render when the scenario or config file changes")
	cmd.MarkFlagsMutuallyExclusive("out", "video")
	return cmd
}

func (a *app) preview(ctx context.Context, path string, opts previewOptions) error {
	log := logging.FromContext(ctx)

	d, _, err := a.loadDirector(ctx, []string{path})
	if err != nil {
		return err
	}
	s := d.Scenario()
	pc := a.cfg.Preview

	bgSpec := pc.Background
	if s.Background != "" {
		bgSpec = resolveRelative(path, s.Background)
	}
	src, err := newSource(bgSpec)
	if err != nil {
		return err
	}
	if src != nil {
		defer src.Close()
	}

	style := renderer.DefaultStyle()
	style.RingWidth = pc.RingWidth
	style.Labels = pc.Labels
	style.HUD = pc.HUD
	r := renderer.New(s.Viewport.W, s.Viewport.H, style)

	var enc video.Encoder
	var target string
	if opts.videoPath != "" {
		codec := pc.Encoder
		if codec == "" || codec == "auto" {
			codec = system.GetBestH264Encoder(ctx)
		}
		enc = &video.FFmpegEncoder{Output: opts.videoPath, Codec: codec, Quality: pc.Quality}
		target = opts.videoPath
	} else {
		dir := opts.outDir
		if dir == "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			dir = filepath.Join("output", base+"_frames")
		}
		enc = &video.PNGSequence{Dir: dir}
		target = dir
	}

	p := engine.NewPreviewProject(d, r, src, enc, pc.Workers)
	p.ShowStats = pc.Stats
	p.BenchmarkLog = opts.benchLog
	p.BuildVersion = a.build.Version

	if _, err := p.Run(ctx); err != nil {
		return err
	}
	log.Info().Str("output", target).Msg("preview written")
	return nil
}

// watchPreview renders once, then again on every change until ctx is done
func (a *app) watchPreview(ctx context.Context, path string, opts previewOptions) error {
	log := logging.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch directories so editors that replace files on save keep working
	watched := map[string]bool{filepath.Clean(path): true}
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if cfgFile := a.manager.FileUsed(); cfgFile != "" {
		watched[filepath.Clean(cfgFile)] = true
		if err := w.Add(filepath.Dir(cfgFile)); err != nil {
			log.Warn().Err(err).Str("path", cfgFile).Msg("config changes will not trigger a re-render")
		}
	}

	render := func() {
		if err := a.preview(ctx, path, opts); err != nil {
			log.Error().Err(err).Msg("preview failed")
		}
	}
	render()
	log.Info().Msg("watching for changes, Ctrl+C to stop")

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			debounce = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		case <-debounce:
			debounce = nil
			if err := a.reloadConfig(); err != nil {
				log.Error().Err(err).Msg("config reload failed, keeping previous config")
			}
			render()
		}
	}
}

func (a *app) reloadConfig() error {
	cfg, err := a.manager.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// newSource interprets a background spec; "" means a transparent background
func newSource(spec string) (source.Source, error) {
	switch {
	case spec == "":
		return nil, nil
	case strings.HasPrefix(spec, "#"):
		c, err := geom.ParseColor(spec)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		return source.NewSolidSource(c.RGBA()), nil
	default:
		return source.NewImageSource(spec)
	}
}

func resolveRelative(scenarioPath, p string) string {
	if strings.HasPrefix(p, "#") || filepath.IsAbs(p) {
		return p
	}
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return filepath.Join(filepath.Dir(scenarioPath), p)
}
