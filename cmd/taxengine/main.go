package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kredcalc/india-tax-engine/internal/calculation"
	"github.com/kredcalc/india-tax-engine/internal/config"
	"github.com/kredcalc/india-tax-engine/internal/output"
	"github.com/kredcalc/india-tax-engine/internal/server"
)

var (
	inputFile  string
	formatName string
	rulesDir   string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taxengine",
		Short: "Indian personal income-tax computation engine",
		Long: `taxengine prices an employee's annual income, exemptions and
declared deductions under the Indian income-tax rules for the declared
tax year and regime, and can compare the old and new regimes.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&rulesDir, "rules", "", "directory of per-year YAML rule files (overrides built-ins)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCalculateCmd(), newCompareCmd(), newValidateCmd(), newExampleCmd(), newServeCmd())
	return root
}

func buildEngine() (*calculation.Engine, error) {
	rules, err := config.LoadRulesDir(rulesDir)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine(rules)
	if verbose {
		engine.SetLogger(slogAdapter{slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	}
	return engine, nil
}

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate tax liability for one input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}
			input, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			result, err := engine.Calculate(input)
			if err != nil {
				return err
			}
			formatter, err := output.GetFormatterByName(formatName)
			if err != nil {
				return err
			}
			data, err := formatter.FormatResult(result)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
	addIOFlags(cmd)
	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare old and new regime liabilities for one input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}
			input, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			comparison, err := engine.CompareRegimes(input)
			if err != nil {
				return err
			}
			formatter, err := output.GetFormatterByName(formatName)
			if err != nil {
				return err
			}
			data, err := formatter.FormatComparison(comparison)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
	addIOFlags(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Statically validate an input file and list every problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}
			input, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			result := engine.Validate(input)
			if result.IsValid {
				fmt.Println("input is valid")
				return nil
			}
			for _, fe := range result.FieldErrors {
				fmt.Printf("%s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%d validation error(s)", len(result.FieldErrors))
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input YAML file (required)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a worked example input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().WriteExampleFile(outFile); err != nil {
				return err
			}
			fmt.Println("wrote", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "input.yaml", "destination file")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, server.New(engine, logger))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input YAML file (required)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: "+output.FormatterNames())
	_ = cmd.MarkFlagRequired("input")
}

// slogAdapter bridges slog to the engine's Logger interface.
type slogAdapter struct{ l *slog.Logger }

func (a slogAdapter) Debugf(format string, args ...any) { a.l.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.l.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }
