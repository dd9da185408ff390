// Package stream writes generated samples to an io.Writer or exposes them as
// an io.Reader, one delimited sample at a time.
//
// Samples are produced lazily, so arbitrarily large fixtures can be written
// with constant memory:
//
//	p := rexgen.MustCompile(`[a-z]{8}@example\.com`, 0)
//	n, err := stream.Write(ctx, os.Stdout, func(i int) string {
//	    return p.Sample(seed, i)
//	}, stream.Config{Count: 1_000_000})
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// MinBufferSize is the smallest accepted write buffer.
const MinBufferSize = 16

// Source returns the i-th sample. It is called with i = 0, 1, 2, ... in order.
type Source func(i int) string

// Config configures sample streaming.
type Config struct {
	// Count is the number of samples to produce. Zero produces nothing.
	Count int

	// Delimiter is written after every sample.
	// Default: "\n".
	Delimiter string

	// BufferSize is the size of the write buffer.
	// Default: 4KB. Minimum: MinBufferSize.
	BufferSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Count:      1,
		Delimiter:  "\n",
		BufferSize: 4 * 1024,
	}
}

// ErrBufferTooSmall is returned when Config.BufferSize is below MinBufferSize.
type ErrBufferTooSmall struct {
	Requested int
	Minimum   int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: buffer size %d too small, minimum %d", e.Requested, e.Minimum)
}

// ErrNegativeCount is returned when Config.Count is negative.
type ErrNegativeCount struct {
	Count int
}

func (e ErrNegativeCount) Error() string {
	return fmt.Sprintf("stream: negative sample count %d", e.Count)
}

// Validate validates the Config and returns an error if invalid.
// A zero Delimiter or BufferSize is valid and replaced by ApplyDefaults.
func (c Config) Validate() error {
	if c.Count < 0 {
		return ErrNegativeCount{Count: c.Count}
	}
	if c.BufferSize != 0 && c.BufferSize < MinBufferSize {
		return ErrBufferTooSmall{Requested: c.BufferSize, Minimum: MinBufferSize}
	}
	return nil
}

// ApplyDefaults fills a zero Delimiter or BufferSize. Count is kept as given.
func (c Config) ApplyDefaults() Config {
	result := c
	defaults := DefaultConfig()

	if result.Delimiter == "" {
		result.Delimiter = defaults.Delimiter
	}
	if result.BufferSize == 0 {
		result.BufferSize = defaults.BufferSize
	}
	return result
}

// Write writes cfg.Count samples from src to w, each followed by the
// delimiter. It returns the number of samples written. Cancelling ctx stops
// the stream between samples.
func Write(ctx context.Context, w io.Writer, src Source, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	cfg = cfg.ApplyDefaults()

	bw := bufio.NewWriterSize(w, cfg.BufferSize)
	written := 0
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return written, ferr
			}
			return written, err
		}
		if _, err := bw.WriteString(src(i)); err != nil {
			return written, err
		}
		if _, err := bw.WriteString(cfg.Delimiter); err != nil {
			return written, err
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, err
	}
	return written, nil
}

// Reader produces delimited samples on demand.
type Reader struct {
	src     Source
	cfg     Config
	next    int
	pending []byte
}

// NewReader returns a Reader over cfg.Count samples from src.
func NewReader(src Source, cfg Config) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Reader{src: src, cfg: cfg.ApplyDefaults()}, nil
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.pending) == 0 {
			if r.next >= r.cfg.Count {
				break
			}
			r.pending = append(r.pending[:0], r.src(r.next)...)
			r.pending = append(r.pending, r.cfg.Delimiter...)
			r.next++
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Reset rewinds the reader to the first sample.
func (r *Reader) Reset() {
	r.next = 0
	r.pending = r.pending[:0]
}
