// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/destiny/z85"
	"github.com/destiny/z85/batch"
	"github.com/destiny/z85/wrap"
)

const (
	textSuffix   = ".z85"
	binarySuffix = ".bin"
)

func readInputs(cmd *cobra.Command, files []string) ([][]byte, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return [][]byte{b}, nil
	}

	inputs := make([][]byte, len(files))
	for i, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		inputs[i] = b
	}
	return inputs, nil
}

// texts turns raw text inputs into strings, stripping white space when
// the configuration asks for it.
func (a *app) texts(inputs [][]byte) ([]string, error) {
	out := make([]string, len(inputs))
	for i, b := range inputs {
		s := string(b)
		if a.cfg.Codec.IgnoreSpace {
			var err error
			if s, err = wrap.Strip(s); err != nil {
				return nil, err
			}
		}
		out[i] = s
	}
	return out, nil
}

func (a *app) batchOptions() []batch.Option {
	return []batch.Option{
		batch.WithLimit(a.cfg.Batch.Limit),
		batch.WithCompat(a.cfg.Codec.Compat),
		batch.WithLogger(a.log),
	}
}

// decodedName maps "key.z85" to "key" and anything else to "<name>.bin".
func decodedName(name string) string {
	if trimmed := strings.TrimSuffix(name, textSuffix); trimmed != name && trimmed != "" {
		return trimmed
	}
	return name + binarySuffix
}

func newEncodeCommand(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "encode [file...]",
		Short: "Encode binary data as Z85 text",
		Long: `Encode standard input to standard output, or each named file to
<file>.z85. Input length must be a multiple of 4 bytes.`,
		RunE: func(cmd *cobra.Command, files []string) error {
			if cmd.Flags().Changed("wrap") {
				a.cfg.Codec.Wrap = width
			}
			if a.cfg.Codec.Wrap < 0 {
				return fmt.Errorf("invalid argument: --wrap must not be negative")
			}

			inputs, err := readInputs(cmd, files)
			if err != nil {
				return err
			}
			texts, err := batch.EncodeAll(cmd.Context(), inputs, a.batchOptions()...)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), wrap.Lines(texts[0], a.cfg.Codec.Wrap))
				return err
			}
			for i, name := range files {
				out := name + textSuffix
				a.log.Info("writing %s", out)
				if err := os.WriteFile(out, []byte(wrap.Lines(texts[i], a.cfg.Codec.Wrap)+"\n"), 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "wrap", "w", 0, "wrap encoded lines after this many characters (0 disables)")
	return cmd
}

func newDecodeCommand(a *app) *cobra.Command {
	var compat, ignoreSpace bool

	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode Z85 text to binary data",
		Long: `Decode standard input to standard output, or each named file to a
file without its .z85 suffix (or with .bin appended).

By default characters outside the Z85 alphabet are rejected. With --compat
they read as digit 0 and oversized groups wrap, like the RFC 32 reference
decoder.`,
		RunE: func(cmd *cobra.Command, files []string) error {
			if cmd.Flags().Changed("compat") {
				a.cfg.Codec.Compat = compat
			}
			if cmd.Flags().Changed("ignore-space") {
				a.cfg.Codec.IgnoreSpace = ignoreSpace
			}

			inputs, err := readInputs(cmd, files)
			if err != nil {
				return err
			}
			texts, err := a.texts(inputs)
			if err != nil {
				return err
			}
			decoded, err := batch.DecodeAll(cmd.Context(), texts, a.batchOptions()...)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				_, err = cmd.OutOrStdout().Write(decoded[0])
				return err
			}
			for i, name := range files {
				out := decodedName(name)
				a.log.Info("writing %s", out)
				if err := os.WriteFile(out, decoded[i], 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compat, "compat", false, "decode like the RFC 32 reference implementation")
	cmd.Flags().BoolVar(&ignoreSpace, "ignore-space", true, "remove white space before decoding")
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that input is well-formed Z85 text",
		RunE: func(cmd *cobra.Command, files []string) error {
			inputs, err := readInputs(cmd, files)
			if err != nil {
				return err
			}
			texts, err := a.texts(inputs)
			if err != nil {
				return err
			}

			failed := 0
			for i, s := range texts {
				name := "-"
				if len(files) > 0 {
					name = files[i]
				}
				if err := z85.ValidateString(s); err != nil {
					a.log.Error("%s: %v", name, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d bytes)\n", name, z85.DecodedLen(len(s)))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs are not valid Z85", failed, len(texts))
			}
			return nil
		},
	}
}
