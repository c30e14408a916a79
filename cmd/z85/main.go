// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command z85 encodes and decodes Z85 text and manages CURVE keys.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/destiny/z85/internal/config"
	"github.com/destiny/z85/internal/logging"
)

// app holds the state shared by all subcommands.
type app struct {
	configFile string
	logLevel   string

	cfg *config.Config
	log *logging.Logger
}

// setup loads the configuration file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(a.configFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid argument: %w", err)
	}
	a.cfg = cfg
	a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration: %+v", *cfg)
	return nil
}

// newRootCommand creates the root cobra command
func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "z85",
		Short: "ZeroMQ Base-85 (Z85) encoder and decoder",
		Long: `Encode binary data as Z85 text (RFC 32) and decode it again.

Binary input must be a multiple of 4 bytes long and Z85 input a multiple
of 5 characters long. Z85 has no padding.`,
		Example: `  # Encode a 32 byte key
  head -c 32 /dev/urandom | z85 encode

  # Decode, tolerating the output of the reference decoder
  echo 'Hell~' | z85 decode --compat | xxd

  # Encode several files concurrently, writing <file>.z85 next to each
  z85 encode --wrap 75 a.bin b.bin`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "TOML configuration file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "INFO", "logging level (ERROR, WARN, INFO, DEBUG, TRACE)")

	cmd.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newValidateCommand(a),
		newKeygenCommand(a),
		newPubkeyCommand(a),
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
