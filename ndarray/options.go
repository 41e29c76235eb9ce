// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for the dispatch layer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Notes:
//   - The casting policy applies to every dtype transition a call performs:
//     input → computation lane and computation lane → output.
//   - The block size only affects same-dtype typed kernels; accessor lanes
//     run the plain walker.
//   - Order decides the layout of arrays allocated by the package (Cast,
//     Add/Sub/Mul/Div results, Zeros callers pass it explicitly).
//   - The logger is consulted at Debug level only; a nil logger discards.
package ndarray

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCasting is the casting policy applied when none is given.
	DefaultCasting = dtype.CastSameKind

	// DefaultBlockSize lets the kernels derive the tile edge from the element sizes.
	DefaultBlockSize = 0

	// DefaultOrder is the layout of freshly allocated results.
	DefaultOrder = strided.RowMajor
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCastingInvalid   = "ndarray: WithCasting: unknown casting policy"
	panicBlockSizeInvalid = "ndarray: WithBlockSize: size must be non-negative"
	panicOrderInvalid     = "ndarray: WithOrder: order must be RowMajor or ColumnMajor"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	casting   dtype.Casting // DefaultCasting
	blockSize int           // >= 0; DefaultBlockSize (0 = derived)
	order     strided.Order // DefaultOrder
	logger    *slog.Logger  // never nil after gatherOptions
}

// ---------- Constructors (WithX) ----------

// WithCasting sets the casting policy checked before any kernel runs.
//
// Errors:
//   - Panics with a stable message when policy is not a known Casting.
//
// AI-Hints:
//   - Use dtype.CastUnsafe to write float results into integer outputs
//     (values saturate); use dtype.CastSafe to refuse any lossy transition.
func WithCasting(policy dtype.Casting) Option {
	if policy > dtype.CastUnsafe {
		panic(panicCastingInvalid)
	}

	return func(o *Options) { o.casting = policy }
}

// WithBlockSize fixes the tile edge, in elements, of the blocked kernels.
// Zero restores the size derived from the element widths.
func WithBlockSize(n int) Option {
	if n < 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = n }
}

// WithOrder selects the layout of arrays allocated by the call.
func WithOrder(order strided.Order) Option {
	if order != strided.RowMajor && order != strided.ColumnMajor {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithLogger routes dispatch tracing to l at Debug level.
// A nil logger disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// ---------- Internal resolution ----------

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		casting:   DefaultCasting,
		blockSize: DefaultBlockSize,
		order:     DefaultOrder,
		logger:    discardLogger,
	}
}

// gatherOptions applies user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var discardLogger = slog.New(discardHandler{})

// trace logs one dispatch decision at Debug level.
func (o Options) trace(op string, from []dtype.DataType, to dtype.DataType, path string, out *Array) {
	ctx := context.Background()
	if !o.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	in := make([]string, len(from))
	for i, dt := range from {
		in[i] = dt.String()
	}
	o.logger.LogAttrs(ctx, slog.LevelDebug, "ndarray dispatch",
		slog.String("op", op),
		slog.Any("in", in),
		slog.String("out", to.String()),
		slog.String("casting", o.casting.String()),
		slog.String("path", path),
		slog.Int("block", o.blockSize),
		slog.Any("loop_order", strided.LoopOrder(out.shape, out.strides)),
	)
}
