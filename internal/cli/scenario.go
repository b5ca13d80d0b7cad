package cli

import (
	"context"
	"fmt"

	"github.com/ivlev/focuscursor/internal/director"
	"github.com/ivlev/focuscursor/internal/logging"
)

// scenarioPath returns the argument or the newest scenario in ./scenarios
func scenarioPath(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := director.FindLatestScenario(director.DefaultScenarioDir)
	if err != nil {
		return "", fmt.Errorf("no scenario given: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", path).Msg("using latest scenario")
	return path, nil
}

// loadDirector reads the scenario and pairs it with the configured cursor
func (a *app) loadDirector(ctx context.Context, args []string) (*director.Director, string, error) {
	path, err := scenarioPath(ctx, args)
	if err != nil {
		return nil, "", err
	}
	s, err := director.ReadScenario(path)
	if err != nil {
		return nil, path, err
	}
	cc, err := a.cfg.CursorConfig()
	if err != nil {
		return nil, path, err
	}
	return director.NewDirector(s, cc), path, nil
}
