package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/precond/pkg/config"
	"github.com/dmitrymomot/precond/pkg/dice"
	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/optional"
	"github.com/dmitrymomot/precond/pkg/validator"
)

func diceCmd(a *app) *cobra.Command {
	var (
		sides     int
		rolls     int
		seed      uint64
		out       string
		format    string
		errorKind string
	)

	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Roll a die many times and write the face distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg dice.Config
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("load dice config: %w", err)
			}

			kind, err := a.kind(errorKind)
			if err != nil {
				return err
			}

			fl := cmd.Flags()
			if fl.Changed("sides") {
				cfg.Sides = sides
			}
			if fl.Changed("rolls") {
				cfg.Rolls = rolls
			}
			if fl.Changed("seed") {
				cfg.Seed = seed
			}
			if fl.Changed("out") {
				cfg.ReportPath = out
			}
			if fl.Changed("format") {
				cfg.ReportFormat = format
			}

			if err := validator.First(
				validator.GreaterThan(cfg.Sides, 1, false, "--sides", kind),
				validator.Positive(cfg.Rolls, "--rolls", kind),
				validator.NotNullNorEmptyTrimmed(optional.Of(cfg.ReportPath), "--out", kind),
			); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			reportFormat, err := dice.ParseFormat(cfg.ReportFormat)
			if err != nil {
				return err
			}

			die, err := cfg.Die()
			if err != nil {
				return err
			}

			sim := dice.NewSimulator(dice.WithLogger(a.log))
			rep, err := sim.Run(cmd.Context(), die, cfg.Rolls)
			if err != nil {
				return err
			}
			if err := rep.WriteFile(cfg.ReportPath, reportFormat); err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "report written",
				logger.Path(cfg.ReportPath),
				logger.Group("report", slog.Int("sides", rep.Sides), slog.Int("rolls", rep.Rolls)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", rep.Summary(), cfg.ReportPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&sides, "sides", dice.DefaultSides, "number of sides, overrides DICE_SIDES")
	cmd.Flags().IntVar(&rolls, "rolls", dice.DefaultRolls, "number of rolls, overrides DICE_ROLLS")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one, overrides DICE_SEED")
	cmd.Flags().StringVarP(&out, "out", "o", dice.DefaultReportPath, "report file, overrides DICE_REPORT_PATH")
	cmd.Flags().StringVar(&format, "format", string(dice.FormatText), "report format (text, yaml), overrides DICE_REPORT_FORMAT")
	cmd.Flags().StringVar(&errorKind, "error-kind", "argument", "error kind reported for bad flags, see the kinds command")
	return cmd
}
