// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"code.hybscloud.com/lazy"
)

const (
	flagCount    = "count"
	flagLogLevel = "log-level"
	flagTrace    = "trace"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg    Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "lazyseq",
		Short:        "Print prefixes of infinite lazy series",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().Int(flagCount, defaultCount, "number of elements to print (env LAZYSEQ_COUNT)")
	root.PersistentFlags().String(flagLogLevel, defaultLogLevel, "log level (env LAZYSEQ_LOG_LEVEL)")
	root.PersistentFlags().Bool(flagTrace, false, "log every realized element at debug level (env LAZYSEQ_TRACE)")

	root.AddCommand(
		seriesCmd(a, "naturals", "Natural numbers from 0", naturals),
		seriesCmd(a, "fib", "Fibonacci numbers", fibonacci),
		seriesCmd(a, "primes", "Prime numbers by trial division sieve", primes),
		seriesCmd(a, "pascal", "Rows of Pascal's triangle", pascal),
		collatzCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed(flagCount) {
		if cfg.Count, err = flags.GetInt(flagCount); err != nil {
			return eris.Wrap(err, "failed to read count flag")
		}
	}
	if flags.Changed(flagLogLevel) {
		if cfg.LogLevel, err = flags.GetString(flagLogLevel); err != nil {
			return eris.Wrap(err, "failed to read log level flag")
		}
	}
	if flags.Changed(flagTrace) {
		if cfg.Trace, err = flags.GetBool(flagTrace); err != nil {
			return eris.Wrap(err, "failed to read trace flag")
		}
	}
	if err = cfg.validate(); err != nil {
		return err
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	return nil
}

func seriesCmd[T any](a *app, use, short string, series func() lazy.Seq[T]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPrefix(a, cmd.OutOrStdout(), use, series())
		},
	}
}

func collatzCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collatz N",
		Short: "Collatz trajectory of N down to 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return eris.Wrapf(err, "invalid start value %q", args[0])
			}
			return printPrefix(a, cmd.OutOrStdout(), "collatz", collatz(n))
		},
	}
}

// printPrefix writes the first cfg.Count elements of s, one per line.
func printPrefix[T any](a *app, w io.Writer, name string, s lazy.Seq[T]) error {
	if a.cfg.Trace {
		s = lazy.Trace(s, &a.logger, name)
	}
	a.logger.Info().Int("count", a.cfg.Count).Msg("printing series")
	c := s.Take(a.cfg.Count).Cursor()
	printed := 0
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return eris.Wrap(err, "failed to write element")
		}
		printed++
	}
	a.logger.Debug().Int("printed", printed).Msg("done")
	return nil
}
