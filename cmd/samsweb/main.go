package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/san-kum/samsweb/internal/config"
	"github.com/san-kum/samsweb/internal/motion"
	"github.com/san-kum/samsweb/internal/trace"
	"github.com/san-kum/samsweb/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	theme      string
	fps        int
	// trace
	frames    int
	viewW     float64
	viewH     float64
	ballIndex int
	series    string
	plotW     int
	plotH     int
	// config
	outFile string
)

// main registers commands and flags and runs the splash screen when no
// subcommand is given.
func main() {
	defer glog.Flush()

	rootCmd := &cobra.Command{
		Use:   "samsweb",
		Short: "bouncing portfolio splash for the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog only reads its flags once the Go flag set reports parsed.
			_ = flag.CommandLine.Parse(nil)
		},
		RunE: runSplash,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "frames per second")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run the simulation headless and plot a ball",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	traceCmd.Flags().Float64Var(&viewW, "width", 1280, "viewport width in pixels")
	traceCmd.Flags().Float64Var(&viewH, "height", 720, "viewport height in pixels")
	traceCmd.Flags().IntVar(&ballIndex, "ball", -1, "ball to plot (-1 = all)")
	traceCmd.Flags().StringVar(&series, "series", "x", "series to plot (x, y, speed)")
	traceCmd.Flags().IntVar(&plotW, "plot-width", 80, "plot width")
	traceCmd.Flags().IntVar(&plotH, "plot-height", 12, "plot height")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "list categories and their sections",
		Args:  cobra.NoArgs,
		RunE:  listSections,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  dumpConfig,
	}
	configCmd.Flags().StringVar(&outFile, "out", "", "write to file instead of stdout")

	rootCmd.AddCommand(traceCmd, sectionsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("samsweb: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

// loadConfig layers defaults, a preset, a config file and flags, in that
// order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		glog.Infof("loaded config %s", configFile)
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSplash(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	glog.V(1).Infof("starting splash: %d categories at %d fps", len(cfg.Categories), cfg.FPS)
	return viz.Run(cfg)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := trace.ParseSeries(series)
	if err != nil {
		return err
	}

	tr, err := trace.Run(cfg, trace.Options{
		Frames: frames,
		View:   motion.Size{W: viewW, H: viewH},
	})
	if err != nil {
		return err
	}

	var graph string
	if ballIndex < 0 {
		graph, err = tr.PlotAll(s, plotW, plotH)
	} else {
		graph, err = tr.Plot(ballIndex, s, plotW, plotH)
	}
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BALL\tWALLS\tOBSTACLE\tSPEED")
	for i, label := range tr.Labels {
		walls, obstacle := tr.Contacts(i)
		last := tr.Samples[i][len(tr.Samples[i])-1]
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\n", label, walls, obstacle, last.Speed)
	}
	w.Flush()

	fmt.Printf("\nframes: %d  bounces: %d  collisions: %d  speed drift: %.2e  outside: %d  (%s)\n",
		tr.Frames(), tr.Bounces, tr.Collisions, tr.MaxDrift, tr.Outside, tr.Elapsed)
	return nil
}

func listSections(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir := cfg.Directory()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKEY\tLABEL\tTITLE\tPROJECTS")
	for i, cat := range cfg.Categories {
		section, err := dir.Lookup(cat.Key)
		if err != nil {
			fmt.Fprintf(w, "%d\t%s\t%s\t-\t0\n", i+1, cat.Key, cat.Title())
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i+1, cat.Key, cat.Title(), section.Title, len(section.Projects))
	}
	return w.Flush()
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
