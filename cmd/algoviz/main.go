package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
	logFile   string
	logger    = logging.Discard()

	configFile string
	preset     string
	theme      string
	speed      float64
	interval   string
	array      string
	target     int
	n          int
	start      int
	output     string
	withPlot   bool
	frame      int
	svgWidth   int
	svgHeight  int
	configOut  string

	registry = algorithms.NewRegistry()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step through classic algorithms in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := resolveLogLevel(cmd)
			if err != nil {
				return err
			}
			logLevel = level
			lc := logging.Config{Level: logLevel, Format: logFormat}
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return err
				}
				lc.Output = f
			}
			l, err := logging.New(lc)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runMenu,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to a file instead of stderr")
	addPlaybackFlags(rootCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list input presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "open the interactive player",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	addPlaybackFlags(playCmd)
	addInputFlags(playCmd)

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print every frame of a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printTrace,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().BoolVar(&withPlot, "plot", false, "chart the values of each frame")

	replayCmd := &cobra.Command{
		Use:   "replay [algorithm]",
		Short: "play a trace to the end without the TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReplay,
	}
	addPlaybackFlags(replayCmd)
	addInputFlags(replayCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a trace to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a trace to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addInputFlags(exportCSVCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export one frame as an SVG bar chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addInputFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	exportSVGCmd.Flags().IntVar(&frame, "step", -1, "frame to draw (negative for the last)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 240, "image height")

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [algorithm]",
		Short: "write the resolved settings to a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveConfig,
	}
	addPlaybackFlags(saveConfigCmd)
	addInputFlags(saveConfigCmd)
	saveConfigCmd.Flags().StringVarP(&configOut, "output", "o", "algoviz.yaml", "config file to write")

	rootCmd.AddCommand(listCmd, presetsCmd, playCmd, traceCmd, replayCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, saveConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "speed multiplier")
	cmd.Flags().StringVar(&interval, "interval", config.DefaultBaseInterval, "tick interval at speed 1")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

func addInputFlags(cmd *cobra.Command) {
	if cmd.Flags().Lookup("config") == nil {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	}
	cmd.Flags().StringVar(&preset, "preset", "", "use an input preset")
	cmd.Flags().StringVar(&array, "array", "", "comma separated input values")
	cmd.Flags().IntVar(&target, "target", 0, "search target")
	cmd.Flags().IntVar(&n, "n", 0, "problem size (fibonacci)")
	cmd.Flags().IntVar(&start, "start", 0, "start node (bfs)")
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	s, err := resolveSession(cmd, nil)
	if err != nil {
		return err
	}
	menu := viz.NewMenu(registry, s.vizOptions())

	final, err := tea.NewProgram(menu, tea.WithAltScreen()).Run()
	if m, ok := final.(viz.Menu); ok {
		m.Close()
	}
	return err
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	player, err := viz.OpenPlayer(registry, s.algorithm, &s.input, s.vizOptions())
	if err != nil {
		return err
	}
	defer player.Close()

	logger.Info("opening player", "algorithm", s.algorithm, "speed", s.speed, "interval", s.interval)
	_, err = tea.NewProgram(player, tea.WithAltScreen()).Run()
	return err
}

// requireTerminal fails fast when the TUI cannot take over stdout.
func requireTerminal() error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("the player needs a terminal; try replay or trace instead")
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	sums, err := registry.Survey(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSUMMARY\tFRAMES\tPRESETS")

	for _, s := range sums {
		a, _ := registry.Get(s.Name)
		frames := fmt.Sprint(s.Frames)
		if s.Err != nil {
			logger.Warn("default input failed", "algorithm", s.Name, "err", s.Err)
			frames = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			a.Name,
			a.Summary,
			frames,
			strings.Join(config.ListPresets(s.Name), ","),
		)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := registry.Names()
	if len(args) > 0 {
		if _, err := registry.Get(args[0]); err != nil {
			return err
		}
		names = args
	}

	for _, name := range names {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			fmt.Printf("no presets for %s\n", name)
			continue
		}
		fmt.Printf("presets for %s:\n", name)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func printTrace(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	tr, err := registry.Build(s.algorithm, s.input)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", s.algorithm)
	fmt.Printf("frames: %d\n\n", tr.Len())
	for i, step := range tr.Steps() {
		fmt.Println(formatFrame(i, step))
		if withPlot {
			if chart := viz.PlotValues(step, fmt.Sprintf("step %d", i)); chart != "" {
				fmt.Println(chart)
				fmt.Println()
			}
		}
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	tr, err := registry.Build(s.algorithm, s.input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := lesson.New(tr, s.playbackOptions()...)
	defer l.Close()

	log := logger.With("algorithm", s.algorithm, "controller", l.Controller().ID())
	log.Info("replay started", "frames", tr.Len(), "interval", l.Controller().Interval())

	err = l.Replay(ctx, func(st playback.State, step algorithms.Step) {
		fmt.Println(formatFrame(st.Step, step))
	})
	if err != nil {
		log.Warn("replay interrupted", "step", l.State().Step)
		return nil
	}
	log.Info("replay finished", "step", l.State().Step)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	tr, err := registry.Build(s.algorithm, s.input)
	if err != nil {
		return err
	}

	meta := export.Meta{Algorithm: s.algorithm, Input: s.input}
	if output != "" {
		if err := export.SaveJSON(output, meta, tr); err != nil {
			return err
		}
		logger.Info("trace exported", "path", output, "frames", tr.Len())
		return nil
	}
	return export.WriteJSON(os.Stdout, meta, tr)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	tr, err := registry.Build(s.algorithm, s.input)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, tr)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	tr, err := registry.Build(s.algorithm, s.input)
	if err != nil {
		return err
	}

	if output == "" {
		return export.WriteSVG(os.Stdout, tr, frame, svgWidth, svgHeight)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteSVG(f, tr, frame, svgWidth, svgHeight); err != nil {
		return err
	}
	logger.Info("frame exported", "path", output, "step", frame)
	return nil
}

func saveConfig(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return err
	}
	if err := config.Save(configOut, s.snapshot(logLevel)); err != nil {
		return err
	}
	logger.Info("config saved", "path", configOut, "algorithm", s.algorithm)
	fmt.Printf("wrote %s\n", configOut)
	return nil
}

func formatFrame(i int, step algorithms.Step) string {
	return fmt.Sprintf("%4d  %-24s  %s", i, fmt.Sprint(step.Values), step.Note)
}
