// Command numeric evaluates NUMERIC(p,s) arithmetic from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/govalues/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configFlagName   = "config"
	typeFlagName     = "type"
	roundingFlagName = "rounding"
	levelFlagName    = "log-level"
)

type app struct {
	cfg Config
	log *zap.Logger
}

func (a *app) context() numeric.Context {
	return numeric.NewContext(a.cfg.Rounding)
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: NewDefaultConfig(), log: zap.NewNop()}
	var (
		configPath string
		typ        = a.cfg.Type
		rounding   = a.cfg.Rounding
		level      string
	)

	rootCmd := &cobra.Command{
		Use:           "numeric",
		Short:         "Fixed-precision decimal arithmetic with SQL NUMERIC semantics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			flags := cmd.Flags()
			if flags.Changed(typeFlagName) {
				a.cfg.Type = typ
			}
			if flags.Changed(roundingFlagName) {
				a.cfg.Rounding = rounding
			}
			if flags.Changed(levelFlagName) {
				if err := a.cfg.Level.UnmarshalText([]byte(level)); err != nil {
					return fmt.Errorf("%s flag: %w", levelFlagName, err)
				}
			}
			log, err := newLogger(a.cfg.Level)
			if err != nil {
				return err
			}
			a.log = log
			numeric.SetLogger(log)
			log.Debug("configuration loaded",
				zap.Stringer("type", a.cfg.Type),
				zap.Stringer("rounding", a.cfg.Rounding),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, configFlagName, "", "Path to a TOML configuration file")
	pf.Var(&typ, typeFlagName, "Target type of results, for example NUMERIC(10,2)")
	pf.Var(&rounding, roundingFlagName, "Rounding mode: half_up, half_even, half_down, down, up, ceiling, floor, 05up")
	pf.StringVar(&level, levelFlagName, "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newCalcCmd(a),
		newInferCmd(a),
		newRoundCmd(a),
		newConvertCmd(a),
		newEvalCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// newLogger builds a logger writing to stderr, so that results on stdout
// stay machine readable.
// The debug level gets the console encoder, other levels get JSON.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
