// Package scanner drives a fixed pool of independent workers through the
// powers of two, each tracking only the trailing digits of its own residue
// class of exponents and printing every state whose digits are all even.
package scanner

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/vanHavel/oeis/digits"
)

// Config fixes the shape of a scan before any worker starts. It is built
// once at startup and never changed afterwards.
type Config struct {
	// Digits is the number of trailing decimal digits tracked per buffer.
	Digits int
	// Batch is the number of multiplier applications a worker performs
	// between progress lines.
	Batch uint64
	// Workers is the size of the pool. Worker i starts at 2^i and every
	// worker multiplies by 2^Workers per step, so the pool jointly visits
	// every exponent with stride Workers.
	Workers int
}

// Factor returns the constant multiplier each worker applies per step.
func (c Config) Factor() uint64 {
	return 1 << c.Workers
}

// Validate checks the internal invariants of the configuration.
func (c Config) Validate() error {
	if c.Digits < 1 {
		return fmt.Errorf("scanner: need at least one tracked digit, got %d", c.Digits)
	}
	if c.Batch < 1 {
		return fmt.Errorf("scanner: batch size must be positive, got %d", c.Batch)
	}
	if c.Workers < 1 || c.Workers > 16 {
		return fmt.Errorf("scanner: worker count %d outside 1..16", c.Workers)
	}
	return nil
}

// CheckThreads verifies that the threads the runtime actually offers match
// the configured worker count. The per-worker seeds and the step factor
// 2^Workers are fixed before the pool starts, so running with any other
// thread count would either idle workers or leave exponents uncovered;
// refusing to start is the only safe answer.
func (c Config) CheckThreads(threads int) error {
	if threads != c.Workers {
		return fmt.Errorf(
			"scanner: factor 2^%d assumes exactly %d threads but the runtime offers %d, set GOMAXPROCS=%d",
			c.Workers, c.Workers, threads, c.Workers,
		)
	}
	return nil
}

// Worker owns one digit buffer and scans the exponents congruent to its
// identity modulo the worker count. Nothing here is shared: the buffer, the
// step counter and the scratch line belong to this worker alone, and the
// output writer only ever sees whole lines.
type Worker struct {
	id     int
	factor uint64
	tail   digits.Buffer
	steps  uint64
	out    io.Writer
	line   []byte
}

func newWorker(id int, cfg Config, out io.Writer) *Worker {
	tail := digits.New(cfg.Digits)
	tail.SetUint64(1)
	for i := 0; i < id; i++ {
		tail.MulSmall(2)
	}
	return &Worker{
		id:     id,
		factor: cfg.Factor(),
		tail:   tail,
		out:    out,
		line:   make([]byte, 0, cfg.Digits+1),
	}
}

// Steps returns the cumulative number of multiplier applications so far.
func (w *Worker) Steps() uint64 {
	return w.steps
}

// Scan applies the multiplier k times, printing every state where all
// tracked digits come out even.
func (w *Worker) Scan(k uint64) {
	if w.factor == 16 {
		for i := uint64(0); i < k; i++ {
			if w.tail.Times16() {
				w.emit()
			}
		}
	} else {
		for i := uint64(0); i < k; i++ {
			if w.tail.MulSmall(w.factor) {
				w.emit()
			}
		}
	}
	w.steps += k
}

// emit writes the current buffer as one match line. The line is assembled
// in the worker's scratch slice and handed to the writer in a single call
// so concurrent workers can interleave lines but never corrupt one.
func (w *Worker) emit() {
	w.line = w.tail.AppendText(w.line[:0])
	w.line = append(w.line, '\n')
	_, _ = w.out.Write(w.line)
}

func (w *Worker) report() {
	_, _ = fmt.Fprintf(w.out, "Steps: %d from %d\n", w.steps, w.id)
}

// run loops forever over batches. The context is only consulted between
// batches, keeping the inner loop free of synchronization.
func (w *Worker) run(ctx context.Context, batch uint64) error {
	for {
		w.Scan(batch)
		w.report()
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Scanner is a fixed pool of workers over a common output stream.
type Scanner struct {
	cfg     Config
	workers []*Worker
}

// New validates the configuration and seeds one worker per residue class,
// worker i starting from 2^i. Both match and progress lines go to out.
func New(cfg Config, out io.Writer) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scanner{cfg: cfg}
	for id := 0; id < cfg.Workers; id++ {
		s.workers = append(s.workers, newWorker(id, cfg, out))
	}
	return s, nil
}

// Run drives every worker until the context is cancelled. The search space
// is unbounded, so under a background context Run only returns when the
// process is killed.
func (s *Scanner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range s.workers {
		w := w
		g.Go(func() error {
			return w.run(ctx, s.cfg.Batch)
		})
	}
	return g.Wait()
}
