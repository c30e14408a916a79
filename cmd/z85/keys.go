// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/destiny/z85/curve"
)

func newKeygenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a CURVE key pair in Z85 form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := curve.GenerateKeyPair()
			if err != nil {
				return err
			}
			a.log.Debug("generated key pair with public key %s", kp.PublicKeyHex())
			fmt.Fprintf(cmd.OutOrStdout(), "public: %s\nsecret: %s\n", kp.PublicKeyZ85(), kp.SecretKeyZ85())
			return nil
		},
	}
}

func newPubkeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <secret-key>",
		Short: "Derive the Z85 public key of a Z85 secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := curve.NewKeyPairFromSecretZ85(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			a.log.Debug("derived public key %s", kp.PublicKeyHex())
			fmt.Fprintln(cmd.OutOrStdout(), kp.PublicKeyZ85())
			return nil
		},
	}
}
