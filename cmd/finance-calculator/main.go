// Command finance-calculator serves the standard, interest and installment
// calculators over HTTP and runs them one-shot from the command line.
//
// Usage:
//
//	finance-calculator serve [--address :8080]
//	finance-calculator standard "2+3*4"
//	finance-calculator interest --principal 1000 --rate 13 --time 3
//	finance-calculator installment --principal 10000 --annual-rate 13 --months 6
//	finance-calculator config
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/calculator"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/output"
	"github.com/iwvelando/finance-calculator/pkg/validation"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadRuntime reads the configuration named by the global flags and builds
// the logger it describes.
func loadRuntime(c *cli.Context) (*config.Configuration, *zap.Logger, error) {
	configLocation := c.String("config")
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	logger, err := initializeLogger(conf.Logging, c.String("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "finance-calculator",
		Usage:     "Standard, simple interest and installment calculators",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   constants.DefaultConfigFile,
				Usage:   "path to configuration file",
				EnvVars: []string{constants.EnvPrefix + "_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level override (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			standardCommand(),
			interestCommand(),
			installmentCommand(),
			configCommand(),
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func outputFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output-format",
		Aliases: []string{"o"},
		Value:   constants.OutputFormatPretty,
		Usage:   "output format: pretty, json",
	}
}

func standardCommand() *cli.Command {
	return &cli.Command{
		Name:      "standard",
		Usage:     "Evaluate an arithmetic expression",
		ArgsUsage: "EXPRESSION",
		Flags:     []cli.Flag{outputFormatFlag()},
		Action: func(c *cli.Context) error {
			fields := calculator.Fields{
				calculator.FieldExpression: strings.Join(c.Args().Slice(), " "),
			}
			return runCalculation(c, "standard", func() (interface{}, error) {
				return calculator.EvaluateExpression(fields)
			}, func(w io.Writer, result interface{}) error {
				return output.PrettyExpression(w, result.(calculator.ExpressionResult))
			})
		},
	}
}

func interestCommand() *cli.Command {
	return &cli.Command{
		Name:  "interest",
		Usage: "Compute simple interest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "principal", Aliases: []string{"p"}, Usage: "amount borrowed or invested"},
			&cli.StringFlag{Name: "rate", Aliases: []string{"r"}, Usage: "interest rate in percent per period"},
			&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Usage: "number of periods"},
			outputFormatFlag(),
		},
		Action: func(c *cli.Context) error {
			fields := calculator.Fields{
				calculator.FieldPrincipal: c.String("principal"),
				calculator.FieldRate:      c.String("rate"),
				calculator.FieldTime:      c.String("time"),
			}
			return runCalculation(c, "interest", func() (interface{}, error) {
				return calculator.ComputeSimpleInterest(fields)
			}, func(w io.Writer, result interface{}) error {
				return output.PrettyInterest(w, result.(calculator.InterestResult))
			})
		},
	}
}

func installmentCommand() *cli.Command {
	return &cli.Command{
		Name:  "installment",
		Usage: "Compute a fixed monthly installment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "principal", Aliases: []string{"p"}, Usage: "amount borrowed"},
			&cli.StringFlag{Name: "annual-rate", Aliases: []string{"r"}, Usage: "annual rate in percent (13 or 15)"},
			&cli.StringFlag{Name: "months", Aliases: []string{"m"}, Usage: "term in months (2 to 12)"},
			outputFormatFlag(),
		},
		Action: func(c *cli.Context) error {
			fields := calculator.Fields{
				calculator.FieldPrincipal:  c.String("principal"),
				calculator.FieldAnnualRate: c.String("annual-rate"),
				calculator.FieldMonths:     c.String("months"),
			}
			return runCalculation(c, "installment", func() (interface{}, error) {
				return calculator.ComputeInstallment(fields)
			}, func(w io.Writer, result interface{}) error {
				return output.PrettyInstallment(w, result.(calculator.InstallmentResult))
			})
		},
	}
}

type cliError struct {
	Kind    calculator.Kind `json:"kind"`
	Message string          `json:"message"`
}

type cliResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  *cliError   `json:"error,omitempty"`
}

// runCalculation computes a result and prints it in the requested format. A
// calculator error is printed as well (inside the JSON document for json) and
// then returned so the process exits non-zero.
func runCalculation(c *cli.Context, name string, compute func() (interface{}, error), pretty func(io.Writer, interface{}) error) error {
	op := "main." + name
	outputFormat := c.String("output-format")
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	_, logger, err := loadRuntime(c)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	result, calcErr := compute()
	if calcErr != nil {
		logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("kind", string(calculator.KindOf(calcErr))),
			zap.Error(calcErr),
		)
	}

	w := c.App.Writer
	switch outputFormat {
	case constants.OutputFormatJSON:
		resp := cliResponse{Result: result}
		if calcErr != nil {
			kind := calculator.KindOf(calcErr)
			resp.Error = &cliError{Kind: kind, Message: kind.Message()}
		}
		if err := output.JSONFormat(w, resp); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		if calcErr == nil {
			if err := pretty(w, result); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	if calcErr != nil {
		return fmt.Errorf("%s", calculator.Message(calcErr))
	}
	return nil
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as YAML",
		Action: func(c *cli.Context) error {
			conf, _, err := loadRuntime(c)
			if err != nil {
				return err
			}
			data, err := conf.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}
