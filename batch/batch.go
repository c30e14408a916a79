// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch encodes and decodes many independent Z85 payloads
// concurrently with a bounded number of workers.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/destiny/z85"
)

// EncodeAll encodes every input and returns the results in input order.
// The first failure cancels the remaining work.
func EncodeAll(ctx context.Context, inputs [][]byte, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)
	out := make([]string, len(inputs))

	err := run(ctx, cfg, len(inputs), func(i int) error {
		s, err := z85.EncodeToString(inputs[i])
		if err != nil {
			return err
		}
		out[i] = s
		cfg.log.Trace("encoded item %d: %d bytes", i, len(inputs[i]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll decodes every input and returns the results in input order.
// The first failure cancels the remaining work.
func DecodeAll(ctx context.Context, inputs []string, opts ...Option) ([][]byte, error) {
	cfg := newConfig(opts)
	out := make([][]byte, len(inputs))

	decode := z85.DecodeString
	if cfg.compat {
		decode = z85.DecodeCompatString
	}

	err := run(ctx, cfg, len(inputs), func(i int) error {
		b, err := decode(inputs[i])
		if err != nil {
			return err
		}
		out[i] = b
		cfg.log.Trace("decoded item %d: %d characters", i, len(inputs[i]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run calls fn for each index in [0, n) on at most cfg.limit goroutines.
func run(ctx context.Context, cfg *config, n int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit)

	cfg.log.Debug("processing %d items with %d workers", n, cfg.limit)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				cfg.log.Warn("item %d failed: %v", i, err)
				return fmt.Errorf("batch: item %d: %w", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
