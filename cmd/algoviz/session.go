package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/spf13/cobra"
)

// session is the resolved settings for one command: config file first,
// then a preset, then explicit flags.
type session struct {
	algorithm string
	input     algorithms.Input
	speed     float64
	interval  time.Duration
	theme     viz.Theme
}

func resolveSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fileAlgorithm := cfg.Algorithm
	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("interval") {
		cfg.BaseInterval = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, _ := cfg.Interval()

	a, err := registry.Get(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	th, ok := viz.ThemeByName(cfg.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "default", th.Name)
	}

	s := &session{
		algorithm: a.Name,
		input:     a.Default.Clone(),
		speed:     cfg.Speed,
		interval:  d,
		theme:     th,
	}
	if cfg.HasInput() && fileAlgorithm == a.Name {
		s.input = cfg.Input.Clone()
	}

	if flags.Lookup("preset") != nil && preset != "" {
		in, ok := config.GetPreset(a.Name, preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(a.Name))
		}
		s.input = in
	}

	if flags.Changed("array") {
		vals, err := parseInts(array)
		if err != nil {
			return nil, err
		}
		s.input.Array = vals
	}
	if flags.Changed("target") {
		s.input.Target = target
	}
	if flags.Changed("n") {
		s.input.N = n
	}
	if flags.Changed("start") {
		s.input.Start = start
	}

	logger.Debug("session resolved",
		"algorithm", s.algorithm,
		"speed", s.speed,
		"interval", s.interval,
		"theme", s.theme.Name,
	)
	return s, nil
}

// resolveLogLevel prefers an explicit --log-level, then the config file's
// log_level.
func resolveLogLevel(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("log-level") || configFile == "" {
		return logLevel, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.LogLevel, nil
}

// snapshot captures the resolved settings so they can be saved and
// loaded back.
func (s *session) snapshot(level string) *config.Config {
	return &config.Config{
		Algorithm:    s.algorithm,
		Speed:        s.speed,
		BaseInterval: s.interval.String(),
		Theme:        s.theme.Name,
		LogLevel:     level,
		Input:        s.input.Clone(),
	}
}

func (s *session) playbackOptions() []playback.Option {
	return []playback.Option{
		playback.WithBaseInterval(s.interval),
		playback.WithSpeed(s.speed),
		playback.WithLogger(logger),
	}
}

func (s *session) vizOptions() viz.Options {
	return viz.Options{
		BaseInterval: s.interval,
		Speed:        s.speed,
		Theme:        s.theme,
		Logger:       logger,
	}
}

// parseInts reads a comma separated list such as "5,1,4".
func parseInts(text string) ([]int, error) {
	fields := strings.Split(text, ",")
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid array value %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
