// Package cmd wires the plotutils command tree: iir, replay and plot all
// share the delimiter and field-selection flags and the exit-code taxonomy
// for pipes and interrupts.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apirek/plotutils/internal/stream"
)

var RootCmd = &cobra.Command{
	Use:   "plotutils",
	Short: "utilities for delimited time-series streams",
	Long:  "Smooth, replay and plot delimited time-series text streams.",

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		if cfg := viper.GetString("config"); cfg != "" {
			viper.SetConfigFile(cfg)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrap(err, "read config")
			}
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().StringP("delimiter", "d", "\t", "field delimiter")
}

// Execute runs the command tree and exits with the toolchain's exit codes:
// 0 on success, 1 on startup or I/O failure, 32 when the downstream pipe
// closed, 130 on interrupt.
func Execute() {
	viper.SetEnvPrefix("plotutils")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Error("failed to bind persistent flags")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	code := exitCode(err)
	if code == stream.ExitEPIPE {
		// The downstream reader is gone; stay quiet and report EPIPE.
		log.SetOutput(io.Discard)
	} else if code != stream.ExitInterrupt {
		log.Error(err)
	}
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case stream.IsBrokenPipe(err):
		return stream.ExitEPIPE
	case errors.Is(err, context.Canceled):
		return stream.ExitInterrupt
	default:
		return 1
	}
}

// runUntilDone drives a blocking pipeline while keeping interrupts prompt:
// the pipeline checks ctx between lines, and a signal arriving while a read
// blocks still terminates the command immediately.
func runUntilDone(ctx context.Context, run func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- run()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
