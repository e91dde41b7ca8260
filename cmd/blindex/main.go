// Package main is the entry point for the blindex binary.
// It computes a blinding index from a 2x2 table of treatment-arm guesses.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/clinstat/blindex/pkg/blinding"
	"github.com/clinstat/blindex/pkg/config"
	"github.com/clinstat/blindex/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for blindex.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blindex [n_AA n_BA n_AB n_BB]",
		Short: "Blinding index for two-arm randomized trials",
		Long: `Estimates the difference in the probability of guessing "arm A"
between the two arms of a blinded trial, with a Newcombe hybrid score
confidence interval and the dual two-sided p-value.

Counts are (guessed arm, true arm) pairs: n_AA is arm A guessed A,
n_BA is arm A guessed B, n_AB is arm B guessed A, n_BB is arm B guessed B.

Example:
  blindex 56 14 48 32
  blindex --table "56,48;14,32" --conf-level 0.90 --json`,
		Args:         cobra.RangeArgs(0, 4),
		RunE:         runEstimate,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringP("table", "t", "", `2x2 table "n_AA,n_AB;n_BA,n_BB" (rows are guesses, columns are arms)`)
	rootCmd.Flags().Float64("conf-level", 0.95, "Two-sided confidence level of the reported interval")
	rootCmd.Flags().Float64("switch-point", 1e-12, "Degeneracy threshold for the dual z-value")
	rootCmd.Flags().Bool("json", false, "Emit the result as JSON")
	rootCmd.Flags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.Flags().StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("pretty", false, "Human-friendly log output")

	return rootCmd
}

func runEstimate(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	pretty, _ := cmd.Flags().GetBool("pretty")
	logging.SetupLogger(logging.Config{Level: logLevel, Pretty: pretty || cfg.Logging.Pretty})

	counts, err := parseCounts(cmd, args)
	if err != nil {
		return err
	}

	params := blinding.Params{
		ConfLevel:   cfg.Estimation.ConfLevel,
		SwitchPoint: cfg.Estimation.SwitchPoint,
	}
	if cmd.Flags().Changed("conf-level") {
		params.ConfLevel, _ = cmd.Flags().GetFloat64("conf-level")
	}
	if cmd.Flags().Changed("switch-point") {
		params.SwitchPoint, _ = cmd.Flags().GetFloat64("switch-point")
	}

	log.Debug().
		Float64("n_AA", counts.GuessAArmA).
		Float64("n_BA", counts.GuessBArmA).
		Float64("n_AB", counts.GuessAArmB).
		Float64("n_BB", counts.GuessBArmB).
		Float64("conf_level", params.ConfLevel).
		Msg("estimating blinding index")

	res, err := blinding.Compute(counts, params)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	format := cfg.Output.Format
	if asJSON {
		format = "json"
	}
	return writeResult(cmd.OutOrStdout(), res, format, params.ConfLevel)
}

// parseCounts normalizes the accepted input shapes (four positional
// counts or a 2x2 table flag) into the canonical counts.
func parseCounts(cmd *cobra.Command, args []string) (blinding.Counts, error) {
	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return blinding.Counts{}, fmt.Errorf("failed to get table flag: %w", err)
	}

	switch {
	case table != "" && len(args) > 0:
		return blinding.Counts{}, fmt.Errorf("provide either four counts or --table, not both")
	case table != "":
		return parseTable(table)
	case len(args) == 4:
		vals := make([]float64, 4)
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return blinding.Counts{}, fmt.Errorf("invalid count %q: %w", arg, err)
			}
			vals[i] = v
		}
		return blinding.Counts{
			GuessAArmA: vals[0],
			GuessBArmA: vals[1],
			GuessAArmB: vals[2],
			GuessBArmB: vals[3],
		}, nil
	default:
		return blinding.Counts{}, fmt.Errorf("expected four counts or --table, got %d argument(s)", len(args))
	}
}

// parseTable parses "n_AA,n_AB;n_BA,n_BB" into counts.
func parseTable(s string) (blinding.Counts, error) {
	rows := strings.Split(s, ";")
	if len(rows) != 2 {
		return blinding.Counts{}, fmt.Errorf("table %q must have exactly two rows separated by ';'", s)
	}

	var t [2][2]float64
	for i, row := range rows {
		cols := strings.Split(row, ",")
		if len(cols) != 2 {
			return blinding.Counts{}, fmt.Errorf("table row %q must have exactly two columns separated by ','", row)
		}
		for j, col := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
			if err != nil {
				return blinding.Counts{}, fmt.Errorf("invalid table entry %q: %w", col, err)
			}
			t[i][j] = v
		}
	}
	return blinding.CountsFromTable(t), nil
}

func writeResult(w io.Writer, res *blinding.Result, format string, confLevel float64) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "estimate: %.4f\n", res.Estimate)
	fmt.Fprintf(w, "%g%% CI:   [%.4f, %.4f]\n", confLevel*100, res.LowerCI, res.UpperCI)
	fmt.Fprintf(w, "p-value:  %.4f\n", res.PValue)
	fmt.Fprintf(w, "z-value:  %.4f\n", res.ZValue)
	return nil
}
