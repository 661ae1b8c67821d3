package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/config"
	"github.com/mmynk/classboard/internal/constraints"
	"github.com/mmynk/classboard/internal/export"
	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/persist"
)

// errViolations makes check exit non-zero in strict mode.
var errViolations = errors.New("board has violations")

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect, export and analyze classboard project files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a classboard YAML config")

	loadConfig := func() (config.Config, error) {
		return config.Load(configPath, ".env")
	}

	root.AddCommand(
		newCheckCmd(loadConfig),
		newExportCmd(loadConfig),
		newSampleCmd(loadConfig),
		newMaskCmd(),
		newAnalyzeCmd(loadConfig),
	)
	return root
}

// readProject decodes and normalizes a project file.
func readProject(path string, cfg config.Config) (models.AppState, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	limits := cfg.Limits()
	state, err := persist.DecodeProject(f, models.Settings{
		CapacityClass: limits.DefaultCapacityClass,
		GroupCount:    limits.DefaultGroups,
	})
	if err != nil {
		return models.AppState{}, err
	}
	return board.Normalize(state, limits), nil
}

func newCheckCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check <project.json>",
		Short: "Report capacity and separation-rule violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := readProject(args[0], cfg)
			if err != nil {
				return err
			}
			report, err := constraints.EvaluateState(state, cfg.Limits().Capacities)
			if err != nil {
				return err
			}
			bad := printReport(cmd.OutOrStdout(), state, report)
			if strict && bad {
				return errViolations
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any violation is found")
	return cmd
}

// printReport writes one line per group and returns whether anything is wrong.
// A group exactly at capacity is reported but is not a violation.
func printReport(w io.Writer, state models.AppState, report constraints.Report) bool {
	bad := false
	for _, g := range report.Groups {
		var flags []string
		switch {
		case g.OverCapacity:
			flags = append(flags, "over capacity")
			bad = true
		case g.Full():
			flags = append(flags, "at capacity")
		}
		if g.HasViolation {
			flags = append(flags, "separation rule violated")
			bad = true
		}
		status := "ok"
		if len(flags) > 0 {
			status = strings.Join(flags, ", ")
		}
		fmt.Fprintf(w, "Group %d: %d/%d %s\n", g.Group, g.Occupancy, g.Capacity, status)
	}
	fmt.Fprintf(w, "Unassigned: %d\n", report.Unassigned)
	for _, id := range report.Violating {
		if p, ok := state.Person(id); ok {
			fmt.Fprintf(w, "Violating: %s\n", p.Name)
		}
	}
	return bad
}

func newExportCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		output string
		stats  bool
	)
	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Write the roster workbook for a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := readProject(args[0], cfg)
			if err != nil {
				return err
			}
			if output == "" {
				output = export.FileName(time.Now())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			if err := export.Write(f, export.InputFromState(state, stats, nil, cfg.Board.Locale)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: dated file name)")
	cmd.Flags().BoolVar(&stats, "stats", true, "include the group statistics sheet")
	return cmd
}

func newSampleCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a project file with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state := board.SampleState(cfg.Limits(), uuid.NewString)

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return persist.EncodeProject(w, state)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <name>...",
		Short: "Show names as they are sent for analysis",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), analysis.Mask(name))
			}
		},
	}
}

func newAnalyzeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var showPrompt bool
	cmd := &cobra.Command{
		Use:   "analyze <project.json>",
		Short: "Run the configured analysis on a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := readProject(args[0], cfg)
			if err != nil {
				return err
			}
			capacity, _ := cfg.Limits().Capacities.Capacity(state.CapacityClass)
			in := analysis.BuildInput(state, capacity)
			if showPrompt {
				fmt.Fprint(cmd.OutOrStdout(), analysis.Prompt(in))
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Analysis.Timeout)
			defer cancel()
			res, err := analyzerFor(cfg.Analysis).Analyze(ctx, in)
			if err != nil {
				res = analysis.ErrorResult(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Flatten())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPrompt, "prompt", false, "print the de-identified prompt instead of calling the model")
	return cmd
}

func analyzerFor(cfg config.AnalysisConfig) analysis.Analyzer {
	if cfg.APIKey == "" {
		return analysis.Unconfigured{}
	}
	switch cfg.Provider {
	case "openai":
		return analysis.NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "gemini":
		return analysis.NewGemini(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	}
	return analysis.Unconfigured{}
}
