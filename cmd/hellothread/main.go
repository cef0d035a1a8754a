// File: cmd/hellothread/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// hellothread binds one unit of work to a native thread, queries identity and
// hardware concurrency, and releases the thread by detaching (or joining with
// --join).

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/momentics/hioload-thread/control"
	"github.com/momentics/hioload-thread/facade"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := control.NewViper()
	d := control.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "hellothread",
		Short:        "Native thread lifecycle demonstration",
		Long:         `hellothread starts one native thread, reports its identity and the hardware concurrency, then detaches it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String(control.KeyConfigFile, "", "config file (YAML)")
	flags.String(control.KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	flags.String(control.KeyLogFormat, d.LogFormat, "log format: console or json")
	flags.Int(control.KeyCPU, d.CPU, "logical CPU to pin the worker thread to, -1 for none")
	flags.Bool(control.KeyJoin, d.Join, "join the worker thread instead of detaching it")
	flags.Bool(control.KeyDebug, d.Debug, "dump debug probes to stderr on exit")
	flags.Bool(control.KeyMetrics, d.Metrics, "dump lifecycle metrics to stderr on exit")
	flags.Int(control.KeyEventHistory, d.EventHistory, "lifecycle transitions kept in memory")
	_ = v.BindPFlags(flags)

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := control.LoadConfig(v)
	if err != nil {
		return err
	}
	logger, err := control.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	facade.SetLogger(logger)

	h, err := facade.New(cfg)
	if err != nil {
		return err
	}
	if _, err := runSequence(h, logger, cmd.OutOrStdout()); err != nil {
		return err
	}

	if cfg.Debug {
		if err := h.DebugProbes().Render(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if cfg.Metrics {
		samples, err := control.Snapshot(h.Gatherer())
		if err != nil {
			return err
		}
		if err := control.RenderSamples(cmd.ErrOrStderr(), samples); err != nil {
			return err
		}
	}
	return nil
}
