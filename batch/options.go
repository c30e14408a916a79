// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"runtime"

	"github.com/destiny/z85/internal/logging"
)

// Option configures some aspect of a batch run.
// (e.g. WithLimit, WithCompat, ...)
type Option func(c *config)

type config struct {
	limit  int
	compat bool
	log    *logging.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		limit: runtime.GOMAXPROCS(0),
		log:   logging.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLimit sets the maximum number of payloads processed at once.
// Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithCompat makes DecodeAll use the permissive reference decoder
// (see z85.DecodeCompat).
func WithCompat(compat bool) Option {
	return func(c *config) {
		c.compat = compat
	}
}

// WithLogger sets a dedicated logger for the batch.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
