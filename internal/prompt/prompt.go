// Package prompt reads numbers from a line-oriented console stream,
// re-prompting until a line parses.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/primer/internal/errors"
	"github.com/agbru/primer/internal/logging"
	"github.com/agbru/primer/internal/metrics"
)

// DefaultRetryMessage is written after every line that fails to parse.
const DefaultRetryMessage = "Hey, input a number!"

// ParseFunc converts trimmed line text into a value of type T.
type ParseFunc[T any] func(string) (T, error)

// Reader reads lines from an input stream and reports parse failures on an
// output stream. A Reader buffers its input, so a single Reader should be
// used for all reads from the same stream.
type Reader struct {
	in           *bufio.Reader
	out          io.Writer
	logger       logging.Logger
	metrics      *metrics.Session
	retryMessage string
}

// Option configures a Reader during construction.
type Option func(*Reader)

// WithLogger sets the logger used to record rejected lines.
func WithLogger(l logging.Logger) Option {
	return func(r *Reader) { r.logger = l }
}

// WithMetrics sets the session whose counters track prompts and rejections.
func WithMetrics(m *metrics.Session) Option {
	return func(r *Reader) { r.metrics = m }
}

// WithRetryMessage overrides DefaultRetryMessage.
func WithRetryMessage(msg string) Option {
	return func(r *Reader) { r.retryMessage = msg }
}

// New creates a Reader over in, writing retry messages to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Reader {
	r := &Reader{
		in:           bufio.NewReader(in),
		out:          out,
		logger:       logging.Nop,
		retryMessage: DefaultRetryMessage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadLine returns the next line without its terminator. A final line that
// lacks a newline is still returned. When the stream ends before any text is
// read, or the read fails, it returns an apperrors.InputClosedError.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", apperrors.InputClosedError{Cause: err}
	}
	if r.metrics != nil {
		r.metrics.Prompts.Inc()
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Read blocks until a line parses with parse and returns the parsed value.
// Every rejected line produces the retry message and another read; there is
// no retry limit. The only error is an InputClosedError from ReadLine.
func Read[T any](r *Reader, parse ParseFunc[T]) (T, error) {
	for attempt := 1; ; attempt++ {
		line, err := r.ReadLine()
		if err != nil {
			var zero T
			return zero, err
		}

		text := strings.TrimSpace(line)
		value, err := parse(text)
		if err == nil {
			return value, nil
		}

		r.logger.Debug("rejected console input",
			logging.String("text", text),
			logging.Int("attempt", attempt),
			logging.Err(err))
		if r.metrics != nil {
			r.metrics.InputRejections.Inc()
		}
		fmt.Fprintln(r.out, r.retryMessage)
	}
}

// ParseUint parses a base-10 unsigned 64-bit integer. One leading '+' is
// allowed.
func ParseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
}

// ParseFloat parses a decimal 64-bit floating-point number. Magnitudes
// beyond float64 range become ±Inf instead of failing. Hexadecimal
// mantissas and digit separators are rejected.
func ParseFloat(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(s, "_") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// Int reads a non-negative integer, re-prompting until one is entered.
func Int(r *Reader) (uint64, error) {
	return Read(r, ParseUint)
}

// Float reads a floating-point number, re-prompting until one is entered.
func Float(r *Reader) (float64, error) {
	return Read(r, ParseFloat)
}
