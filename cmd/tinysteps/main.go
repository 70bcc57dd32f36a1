// Package main provides the CLI entrypoint for tinysteps.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/tinysteps/internal/catalog"
	"github.com/verte-zerg/tinysteps/internal/config"
	"github.com/verte-zerg/tinysteps/internal/logging"
	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
	"github.com/verte-zerg/tinysteps/internal/report"
	"github.com/verte-zerg/tinysteps/internal/session"
	"github.com/verte-zerg/tinysteps/internal/tui"
)

const (
	defaultMode         = string(model.ModePulse)
	defaultHero         = true
	defaultStickyHeader = true
)

var (
	browseAge          int
	browseMode         string
	browseCategory     string
	browseHero         bool
	browseStickyHeader bool

	catalogueFlag string
	logLevelFlag  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tinysteps",
		Short:         "Browse child development milestones and essentials by age",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runBrowseCmd,
	}

	rootCmd.PersistentFlags().StringVar(&catalogueFlag, "catalogue", "", "catalogue file (.toml, .yaml, .json, .db); empty uses the built-in catalogue")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")

	rootCmd.Flags().IntVar(&browseAge, "age", model.DefaultAgeMonths, "starting age in months (0-72)")
	rootCmd.Flags().StringVar(&browseMode, "mode", defaultMode, "starting view (pulse or library)")
	rootCmd.Flags().StringVar(&browseCategory, "category", "", "starting library category")
	rootCmd.Flags().BoolVar(&browseHero, "hero", defaultHero, "show the title banner")
	rootCmd.Flags().BoolVar(&browseStickyHeader, "sticky-header", defaultStickyHeader, "pin the age slider above the scrolling body")

	rootCmd.AddCommand(newPulseCmd())
	rootCmd.AddCommand(newLibraryCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCatalogueCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// env is what every command needs after flags and config are merged.
type env struct {
	cfg       model.BrowseConfig
	logger    *zap.Logger
	catalogue *catalog.Catalogue
}

func (e *env) close() {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

// loadEnv merges the config file into unset flags, validates the result,
// builds the logger and loads the catalogue.
func loadEnv(cmd *cobra.Command) (*env, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "age", &browseAge, fileCfg.Browse.Age)
	applyStringConfig(cmd, "mode", &browseMode, fileCfg.Browse.Mode)
	applyStringConfig(cmd, "category", &browseCategory, fileCfg.Browse.Category)
	applyBoolConfig(cmd, "hero", &browseHero, fileCfg.Browse.Hero)
	applyBoolConfig(cmd, "sticky-header", &browseStickyHeader, fileCfg.Browse.StickyHeader)
	applyStringConfig(cmd, "catalogue", &catalogueFlag, fileCfg.Browse.Catalogue)
	applyStringConfig(cmd, "log-level", &logLevelFlag, fileCfg.Log.Level)

	cfg := model.BrowseConfig{
		Age:          browseAge,
		Mode:         model.ViewMode(strings.ToLower(strings.TrimSpace(browseMode))),
		Category:     strings.TrimSpace(browseCategory),
		Hero:         browseHero,
		StickyHeader: browseStickyHeader,
		Catalogue:    strings.TrimSpace(catalogueFlag),
		LogLevel:     logLevelFlag,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logPath := config.DefaultLogPath()
	if fileCfg.Log.File != nil {
		logPath = strings.TrimSpace(*fileCfg.Log.File)
	}
	logger, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalogue)
	if err != nil {
		logger.Error("catalogue load failed", zap.String("catalogue", cfg.Catalogue), zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	logger.Info("catalogue loaded",
		zap.String("source", cat.Source()),
		zap.Int("records", cat.Len()),
		zap.Int("categories", len(cat.Categories())),
	)
	return &env{cfg: cfg, logger: logger, catalogue: cat}, nil
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	state := newSession(e)
	m := tui.NewModel(e.catalogue, state, tui.Options{
		Hero:         e.cfg.Hero,
		StickyHeader: e.cfg.StickyHeader,
		Color:        report.ShouldUseColor(os.Stdout, false),
		Logger:       e.logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		e.logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	e.logger.Info("session ended", zap.Int("age", state.Age()), zap.String("mode", string(state.Mode())))
	return nil
}

func newSession(e *env) *session.State {
	state := session.New(e.catalogue.Categories(), session.Options{
		Age:          e.cfg.Age,
		Mode:         e.cfg.Mode,
		ChangePoints: relevance.ChangePoints(e.catalogue.Records(), model.MaxAgeMonths),
		Logger:       e.logger,
	})
	if e.cfg.Category != "" && !state.SetCategory(e.cfg.Category) {
		logErrf("unknown category %q; using %q\n", e.cfg.Category, state.Category())
	}
	return state
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

// flagChanged also reports false for flags the command does not define.
func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tinysteps configuration
# Uncomment a value to enable it. CLI flags override config values.

[browse]
# age = %d                # Starting age in months (0-%d)
# mode = %q          # Starting view: "pulse" or "library"
# category = "Sleep"      # Starting library category
# hero = %t             # Show the title banner
# sticky-header = %t    # Pin the age slider while scrolling
# catalogue = ""          # Catalogue file (.toml, .yaml, .json, .db)

[log]
# level = %q          # debug, info, warn or error
# file = %q
`,
		model.DefaultAgeMonths,
		model.MaxAgeMonths,
		defaultMode,
		defaultHero,
		defaultStickyHeader,
		logging.DefaultLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.BrowseConfig) error {
	if cfg.Age < 0 || cfg.Age > model.MaxAgeMonths {
		return fmt.Errorf("--age must be between 0 and %d", model.MaxAgeMonths)
	}
	switch cfg.Mode {
	case model.ModePulse, model.ModeLibrary:
	default:
		return fmt.Errorf("--mode must be %q or %q", model.ModePulse, model.ModeLibrary)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
