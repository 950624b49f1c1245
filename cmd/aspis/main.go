// Package main implements the aspis CLI: a single binary that runs a
// built-in saturation program to completion and reports whether at
// least one saturated model exists.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/robsimmons/aspis/internal/config"
	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/examples"
	"github.com/robsimmons/aspis/internal/logging"
	"github.com/robsimmons/aspis/internal/rule"
	"github.com/robsimmons/aspis/internal/search"
)

var (
	verbose        bool
	maxModels      int
	timeoutSeconds int
	trace          bool
	dump           bool
	configPath     string
)

// registry is the built-in program set: the external compiler that would
// turn a source file into a rule.Program is out of scope, so the CLI
// picks one of these worked programs by name instead of parsing a file.
var registry = map[string]func() rule.Program{
	"edge-path":           examples.EdgePath,
	"functional-conflict": examples.FunctionalInconsistency,
	"choice":              examples.Choice,
	"choice-constraint":   examples.ChoiceWithConstraint,
	"open-world":          examples.OpenWorldPossibility,
	"inequality-pruning":  examples.InequalityPruning,
}

var rootCmd = &cobra.Command{
	Use:   "aspis [program]",
	Short: "aspis runs a bottom-up Datalog-with-choice saturation search",
	Long: `aspis saturates a program's starting database by repeatedly
stepping its work queue until every branch is either pruned
(inconsistent) or saturated (empty queue), then reports how many
models were found (--dump also prints each one).

Exit code is 0 iff at least one saturated model was found.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if maxModels != 0 {
			cfg.MaxModels = maxModels
		}
		if timeoutSeconds != 0 {
			cfg.TimeoutSeconds = timeoutSeconds
		}
		if trace {
			cfg.Trace = true
		}
		maxModels = cfg.MaxModels
		timeoutSeconds = cfg.TimeoutSeconds
		trace = cfg.Trace

		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("config: bad log_level %q: %w", cfg.LogLevel, err)
		}
		logging.SetLevel(level)
		logging.SetOutput(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapConsoleConfig()),
			zapcore.Lock(zapcore.AddSync(os.Stderr)),
			logging.Level(),
		))
		return nil
	},
	RunE: runSaturate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().IntVar(&maxModels, "max-models", 0, "stop after this many models (0 = unbounded)")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "wall-clock search timeout in seconds (0 = unbounded)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log the search driver's branchings, prunings and models at debug level")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "print every model's facts and prefixes to stdout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func runSaturate(cmd *cobra.Command, args []string) error {
	name := args[0]
	build, ok := registry[name]
	if !ok {
		return fmt.Errorf("aspis: unknown program %q (known: %s)", name, knownNames())
	}
	program := build()

	log := logging.Get(logging.CategoryCLI)

	opts := search.Options{
		MaxModels: maxModels,
		Trace:     trace,
	}
	if timeoutSeconds > 0 {
		opts.Deadline = time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	}

	result := search.Run(program, opts)

	log.Info("search finished",
		zap.Int("models", len(result.Models)),
		zap.Bool("stopped_early", result.StoppedEarly),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "models found: %d\n", len(result.Models))
	if result.StoppedEarly {
		fmt.Fprintln(cmd.OutOrStdout(), "search stopped early")
	}

	if dump {
		for i, m := range result.Models {
			fmt.Fprintf(cmd.OutOrStdout(), "--- model %d (branch %s) ---\n", i, m.Branch)
			if err := dumpModel(cmd, m.DB); err != nil {
				return err
			}
		}
	}

	if len(result.Models) == 0 {
		os.Exit(1)
	}
	return nil
}

func dumpModel(cmd *cobra.Command, db database.Database) error {
	return db.Dump(cmd.OutOrStdout())
}

func zapConsoleConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	return cfg
}

func knownNames() string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return fmt.Sprintf("%v", names)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
