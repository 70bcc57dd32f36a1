package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/tinysteps/internal/catalog"
	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
	"github.com/verte-zerg/tinysteps/internal/report"
)

var (
	exportOut    string
	exportFormat string
)

func newPulseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Print what matters at an age",
		Args:  cobra.NoArgs,
		RunE:  runPulseCmd,
	}
	cmd.Flags().IntVar(&browseAge, "age", model.DefaultAgeMonths, "age in months (0-72)")
	return cmd
}

func runPulseCmd(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	records := e.catalogue.Records()
	view := relevance.Pulse(records, e.catalogue.AgeGroups(), e.cfg.Age)
	e.logger.Debug("pulse printed",
		zap.Int("age", e.cfg.Age),
		zap.Int("spotlight", len(view.Relevance.Spotlight)),
		zap.Int("essentials", len(view.Relevance.ActiveEssentials)),
	)
	out := cmd.OutOrStdout()
	return report.RenderPulse(out, view, relevance.ChangePoints(records, model.MaxAgeMonths), report.DefaultOptions(out))
}

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Print one category's timeline and essentials",
		Args:  cobra.NoArgs,
		RunE:  runLibraryCmd,
	}
	cmd.Flags().StringVar(&browseCategory, "category", "", "category (default: first)")
	return cmd
}

func runLibraryCmd(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	state := newSession(e)
	if state.Category() == "" {
		return fmt.Errorf("catalogue %s has no categories", e.catalogue.Source())
	}
	out := cmd.OutOrStdout()
	view := relevance.Library(e.catalogue.Records(), state.Category())
	return report.RenderLibrary(out, view, report.DefaultOptions(out))
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return report.RenderCategories(cmd.OutOrStdout(), e.catalogue)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print the detail page of a record",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowCmd,
	}
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	id := strings.TrimSpace(args[0])
	rec, ok := e.catalogue.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown record %q (see: tinysteps library)", id)
	}
	out := cmd.OutOrStdout()
	return report.RenderDetail(out, rec, report.DefaultOptions(out))
}

func newCatalogueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Validate or export catalogues",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate a catalogue and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runValidateCmd,
	})

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalogue to a file",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	export.Flags().StringVar(&exportOut, "out", "", "output path")
	export.Flags().StringVar(&exportFormat, "format", "", "toml, yaml, json or sqlite (default: from --out extension)")
	cmd.AddCommand(export)
	return cmd
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			for _, problem := range verr.Problems {
				logErrln("  -", problem)
			}
		}
		return err
	}
	defer e.close()
	return report.RenderSummary(cmd.OutOrStdout(), e.catalogue)
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	out := strings.TrimSpace(exportOut)
	if out == "" {
		return fmt.Errorf("--out is required")
	}
	var (
		format catalog.Format
		err    error
	)
	if strings.TrimSpace(exportFormat) == "" {
		format, err = catalog.FormatForPath(out)
	} else {
		format, err = catalog.ParseFormat(exportFormat)
	}
	if err != nil {
		return err
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if err := catalog.WriteFile(out, format, e.catalogue); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	e.logger.Info("catalogue exported", zap.String("path", out), zap.String("format", string(format)))
	logErrf("Wrote %s\n", out)
	return nil
}
