// Package main provides the CLI entrypoint for brisa.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brisaclima/brisa/internal/analytics"
	"github.com/brisaclima/brisa/internal/config"
	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/page"
	"github.com/brisaclima/brisa/internal/store"
	"github.com/brisaclima/brisa/internal/tui"
)

const (
	defaultScrolledAfter     = 0
	defaultTopButtonAfter    = 30
	defaultHeaderOffset      = 8
	defaultCompactBreakpoint = 80
	defaultLazyMargin        = 5
	defaultStatsThreshold    = 0.5
	defaultCounterDurationMs = 2000
	defaultScrollDurationMs  = 400
)

var startTime = time.Now()

var (
	pageScrolledAfter     int
	pageTopButtonAfter    int
	pageHeaderOffset      int
	pageCompactBreakpoint int
	pageLazyMargin        int
	pageStatsThreshold    float64
	pageCounterDuration   int
	pageScrollDuration    int
	pageAnalytics         bool

	metricsSince string
	metricsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "brisa",
		Short:         "Brisa Clima in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPageCmd,
	}

	rootCmd.Flags().IntVar(&pageScrolledAfter, "scrolled-after", defaultScrolledAfter, "rows scrolled before the header switches style")
	rootCmd.Flags().IntVar(&pageTopButtonAfter, "top-button-after", defaultTopButtonAfter, "rows scrolled before the back-to-top button appears")
	rootCmd.Flags().IntVar(&pageHeaderOffset, "header-offset", defaultHeaderOffset, "rows left above a section when jumping to it")
	rootCmd.Flags().IntVar(&pageCompactBreakpoint, "compact-breakpoint", defaultCompactBreakpoint, "terminal width at or below which the menu collapses")
	rootCmd.Flags().IntVar(&pageLazyMargin, "lazy-margin", defaultLazyMargin, "rows beyond the viewport that trigger figure loading")
	rootCmd.Flags().Float64Var(&pageStatsThreshold, "stats-threshold", defaultStatsThreshold, "visible fraction of the stats section that starts the counters (0-1)")
	rootCmd.Flags().IntVar(&pageCounterDuration, "counter-duration-ms", defaultCounterDurationMs, "counter animation duration in milliseconds")
	rootCmd.Flags().IntVar(&pageScrollDuration, "scroll-duration-ms", defaultScrollDurationMs, "smooth scroll duration in milliseconds")
	rootCmd.Flags().BoolVar(&pageAnalytics, "analytics", true, "record load timings locally")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMetricsCmd())

	return rootCmd
}

func runPageCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "scrolled-after", &pageScrolledAfter, fileCfg.Page.ScrolledAfter)
	applyIntConfig(cmd, "top-button-after", &pageTopButtonAfter, fileCfg.Page.TopButtonAfter)
	applyIntConfig(cmd, "header-offset", &pageHeaderOffset, fileCfg.Page.HeaderOffset)
	applyIntConfig(cmd, "compact-breakpoint", &pageCompactBreakpoint, fileCfg.Page.CompactBreakpoint)
	applyIntConfig(cmd, "lazy-margin", &pageLazyMargin, fileCfg.Page.LazyMargin)
	applyFloatConfig(cmd, "stats-threshold", &pageStatsThreshold, fileCfg.Page.StatsThreshold)
	applyIntConfig(cmd, "counter-duration-ms", &pageCounterDuration, fileCfg.Page.CounterDurationMs)
	applyIntConfig(cmd, "scroll-duration-ms", &pageScrollDuration, fileCfg.Page.ScrollDurationMs)
	applyBoolConfig(cmd, "analytics", &pageAnalytics, fileCfg.Page.Analytics)

	cfg := model.DefaultConfig()
	cfg.ScrolledAfter = pageScrolledAfter
	cfg.TopButtonAfter = pageTopButtonAfter
	cfg.HeaderOffset = pageHeaderOffset
	cfg.CompactBreakpoint = pageCompactBreakpoint
	cfg.LazyMargin = pageLazyMargin
	cfg.StatsThreshold = pageStatsThreshold
	cfg.CounterDuration = time.Duration(pageCounterDuration) * time.Millisecond
	cfg.ScrollDuration = time.Duration(pageScrollDuration) * time.Millisecond
	cfg.Analytics = pageAnalytics

	if err := validateConfig(cfg); err != nil {
		return err
	}

	// Load reporting degrades silently: a broken local db never blocks the page.
	var reporter analytics.Reporter
	var st *store.Store
	if cfg.Analytics {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			logErrf("failed to open metrics db: %v\n", err)
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close metrics db: %v\n", cerr)
				}
			}()
			reporter = analytics.NewStoreReporter(st, os.Getenv("TERM"))
		}
	}
	mon := analytics.NewMonitor(startTime, reporter)

	m := tui.NewModel(cfg, page.Brisa(), mon)
	program := tea.NewProgram(m, tea.WithAltScreen())
	m.SetNotify(program.Send)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show recorded load timings",
		Args:  cobra.NoArgs,
		RunE:  runMetricsCmd,
	}
	cmd.Flags().StringVar(&metricsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&metricsLast, "last", 0, "limit to last N loads")
	return cmd
}

func runMetricsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if metricsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", metricsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if metricsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open metrics db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close metrics db: %v\n", cerr)
		}
	}()

	report, err := analytics.BuildReport(context.Background(), st, model.MetricsConfig{Since: sinceTime, Last: metricsLast})
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if err := analytics.RenderReport(cmd.OutOrStdout(), report, width); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# brisa configuration
# Uncomment a value to enable it. CLI flags override config values.

[page]
# scrolled-after = %d        # Rows scrolled before the header switches style
# top-button-after = %d     # Rows scrolled before the back-to-top button appears
# header-offset = %d         # Rows left above a section when jumping to it
# compact-breakpoint = %d   # Terminal width at or below which the menu collapses
# lazy-margin = %d           # Rows beyond the viewport that trigger figure loading
# stats-threshold = %.1f     # Visible fraction of the stats section that starts the counters
# counter-duration-ms = %d # Counter animation duration
# scroll-duration-ms = %d   # Smooth scroll duration
# analytics = true           # Record load timings locally
`,
		defaultScrolledAfter,
		defaultTopButtonAfter,
		defaultHeaderOffset,
		defaultCompactBreakpoint,
		defaultLazyMargin,
		defaultStatsThreshold,
		defaultCounterDurationMs,
		defaultScrollDurationMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.ScrolledAfter < 0 {
		return fmt.Errorf("--scrolled-after must be >= 0")
	}
	if cfg.TopButtonAfter < 0 {
		return fmt.Errorf("--top-button-after must be >= 0")
	}
	if cfg.HeaderOffset < 0 {
		return fmt.Errorf("--header-offset must be >= 0")
	}
	if cfg.CompactBreakpoint <= 0 {
		return fmt.Errorf("--compact-breakpoint must be > 0")
	}
	if cfg.LazyMargin < 0 {
		return fmt.Errorf("--lazy-margin must be >= 0")
	}
	if cfg.StatsThreshold < 0 || cfg.StatsThreshold > 1 {
		return fmt.Errorf("--stats-threshold must be between 0 and 1")
	}
	if cfg.CounterDuration <= 0 {
		return fmt.Errorf("--counter-duration-ms must be > 0")
	}
	if cfg.ScrollDuration < 0 {
		return fmt.Errorf("--scroll-duration-ms must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
