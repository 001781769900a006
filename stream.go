// Package rin is a text tokenizing input layer in the spirit of the C++
// cin/ifstream pair. A Stream wraps any byte source, buffers it, decodes
// utf8 incrementally and hands out whitespace delimited tokens parsed into
// the caller's type. A lock guarded process wide stream over stdin backs
// the package level ReadNext, ReadSafe and Pause conveniences, so quick
// interactive programs never have to thread a handle around.
package rin

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Stream is a typed token stream over a single byte source. It is single
// owner: share one between goroutines only behind your own lock (the
// package level stdin stream already does exactly that).
type Stream struct {
	src       *source
	tokenizer *tokenizer
	closer    io.Closer
}

// New wraps a reader with the default 8kb buffer.
func New(fd io.Reader) *Stream {
	return NewSize(fd, defaultBuffSize)
}

// NewSize wraps a reader with a caller chosen buffer capacity in bytes.
func NewSize(fd io.Reader, buffSize int) *Stream {
	src := newBufferedSource(fd, buffSize)
	return &Stream{
		src:       src,
		tokenizer: newTokenizer(src),
	}
}

// FromFile wraps an open file. Close releases it.
func FromFile(f *os.File) *Stream {
	s := New(f)
	s.closer = f
	return s
}

// Open opens a file by path and returns a stream over it.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// FromBytes streams over an in-memory slice.
func FromBytes(data []byte) *Stream {
	return New(bytes.NewReader(data))
}

// FromString streams over an in-memory string.
func FromString(data string) *Stream {
	return New(strings.NewReader(data))
}

// NextToken returns the next whitespace delimited token, or false when no
// non whitespace char was left.
func (s *Stream) NextToken() (string, bool) {
	return s.tokenizer.nextToken()
}

// ReadRune returns the next char, whitespace included.
func (s *Stream) ReadRune() (rune, bool) {
	return s.src.popRune()
}

// ReadLine returns the next line without its terminator.
func (s *Stream) ReadLine() (string, bool) {
	return s.tokenizer.nextLine()
}

// SkipLine discards every char up to and including the next line feed.
func (s *Stream) SkipLine() {
	s.tokenizer.skipLine()
}

// Skip discards the next n chars, whitespace included.
func (s *Stream) Skip(n int) {
	s.tokenizer.skip(n)
}

// Valid reports whether the stream may still yield data. Once the source
// is exhausted or errored and the buffer is drained it stays false.
func (s *Stream) Valid() bool {
	return s.src.valid()
}

// Err returns what invalidated the stream, nil while it is still live. The
// token extraction calls never distinguish a clean end of data from an io
// fault; this is for the callers that care.
func (s *Stream) Err() error {
	if s.src.failure == nil {
		return nil
	}
	return s.src.failure
}

// Stats reports how much the stream pulled from its source so far.
func (s *Stream) Stats() IoStats {
	return IoStats{
		In:    s.src.bytesIn(),
		Reads: s.src.numOfReads(),
	}
}

// Close releases a file backed source. Streams over readers the caller
// owns are unaffected.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
