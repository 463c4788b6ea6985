package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zerfoo/onnxcommon/internal/config"
	"github.com/zerfoo/onnxcommon/internal/logger"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	runID   string
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "onnxcommon",
		Short: "Build, inspect and convert ONNX models",
		Long: `onnxcommon assembles ONNX models from declarative graph descriptions and
inspects or converts the result.

Key Commands:
  build    - Build an ONNX model from a YAML graph description
  inspect  - Print a summary of an ONNX or ZMF model
  convert  - Convert an ONNX model to ZMF`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./onnxcommon.yaml or $XDG_CONFIG_HOME/onnxcommon/onnxcommon.yaml)")

	root.AddCommand(newBuildCmd(a), newInspectCmd(a), newConvertCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()

	cleanup, err := logger.Setup(logger.Config{File: cfg.Log.File, Debug: cfg.Log.Debug, RunID: a.runID})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.cleanup = cleanup
	logger.L().Info("command.start", "command", cmd.Name(), "config", a.cfgFile)
	return nil
}

// run wraps a subcommand so its outcome is logged and the log file is closed.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			logger.L().Error("command.failed", "command", cmd.Name(), "error", err)
		} else {
			logger.L().Info("command.done", "command", cmd.Name())
		}
		if a.cleanup != nil {
			if cerr := a.cleanup(); err == nil {
				err = cerr
			}
			a.cleanup = nil
		}
		return err
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
