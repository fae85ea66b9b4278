// Package convolve implements the two separable convolution engines —
// floating point and fixed point — that apply a resize/planner.Plan along
// one axis of a channel-interleaved pixel buffer. Each engine is generic
// over its own accumulator type, mirroring the teacher corpus's split
// between floating- and fixed-point resize cores: Go cannot express a
// single constraint that supports both integer shifts and float arithmetic,
// so the two stay separate implementations sharing the same plan shape.
package convolve

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rasterkit/resize/colorgroup"
)

// Sample is the pixel channel storage type a convolution reads and writes.
type Sample = colorgroup.Sample

// FloatAccum is the accumulator constraint for the floating engine.
type FloatAccum interface{ ~float32 | ~float64 }

// FixedAccum is the accumulator constraint for the fixed-point engine;
// int32 covers 8-bit samples, int64 covers 16-bit samples (spec.md §3's
// overflow bound).
type FixedAccum interface{ ~int32 | ~int64 }

// buffers assume tightly packed, channel-interleaved, row-major storage:
// pixel (x, y) channel c lives at row*width*channels + x*channels + c.

// partitionRows splits [0, rows) into runtime.NumCPU() contiguous chunks and
// runs fn on each concurrently via errgroup, the same row-partitioning shape
// the teacher uses for its own page pipeline fan-out.
func partitionRows(rows int, fn func(start, end int) error) error {
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return fn(0, rows)
	}

	chunk := (rows + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < rows; start += chunk {
		start := start
		end := start + chunk
		if end > rows {
			end = rows
		}
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}
