package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/analyzer"
	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/logging"
	"github.com/ivlev/focuscursor/internal/source"
)

func newScanCommand(a *app) *cobra.Command {
	var (
		out      string
		variant  string
		fps      float64
		duration float64
		noTour   bool
	)
	detector := analyzer.NewContrastDetector()

	cmd := &cobra.Command{
		Use:   "scan <screenshot>",
		Short: "Detect UI blocks in a screenshot and write a scenario that tours them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			src, err := source.NewImageSource(args[0])
			if err != nil {
				return err
			}
			defer src.Close()
			img, err := src.Image()
			if err != nil {
				return err
			}

			var d analyzer.Detector = detector
			if variant != "contrast" {
				if d, err = analyzer.NewDetector(variant); err != nil {
					return err
				}
			}
			blocks, err := d.Detect(img)
			if err != nil {
				return fmt.Errorf("detect: %w", err)
			}
			if len(blocks) == 0 {
				return fmt.Errorf("no blocks found in %s", src.Path())
			}
			log.Info().Str("image", src.Path()).Int("blocks", len(blocks)).Msg("blocks detected")

			s := analyzer.Scenario(img.Bounds(), blocks, fps, duration)
			s.Background = src.Path()
			if !noTour {
				if s, err = director.NewTour().Generate(s, duration); err != nil {
					return err
				}
			}

			if out == "" {
				base := strings.TrimSuffix(filepath.Base(src.Path()), filepath.Ext(src.Path()))
				out = director.GenerateScenarioPath(director.DefaultScenarioDir, base)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := director.WriteScenario(s, out); err != nil {
				return err
			}

			log.Info().Str("path", out).Int("elements", len(s.Elements)).Int("events", len(s.Events)).Msg("scenario written")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output file (default: timestamped file in ./scenarios)")
	f.StringVar(&variant, "detector", "contrast", "detector variant")
	f.Float64Var(&fps, "fps", 30, "scenario frame rate")
	f.Float64Var(&duration, "duration", 10, "scenario length in seconds")
	f.BoolVar(&noTour, "no-tour", false, "write elements only, without focus events")
	f.IntVar(&detector.MinBlockArea, "min-area", detector.MinBlockArea, "smallest block area in pixels")
	f.Float64Var(&detector.EdgeThreshold, "threshold", detector.EdgeThreshold, "edge strength threshold")
	f.IntVar(&detector.Grow, "grow", detector.Grow, "dilation radius joining nearby edges")
	return cmd
}
