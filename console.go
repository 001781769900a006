package rin

import (
	"io"
	"os"
	"sync"
)

// console is the process wide stream over stdin. All callers share one
// cursor, so the lock is held for exactly one logical operation: distinct
// goroutines interleave at token or line granularity, never inside one.
type console struct {
	mu      sync.Mutex
	stream  *Stream
	out     *sink
	retries int // refill attempts for blocking reads, 0 means unbounded
}

var (
	globOnce sync.Once
	glob     *console
)

func stdin() *console {
	globOnce.Do(func() {
		glob = newConsole(os.Stdin, os.Stdout)
	})
	return glob
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{
		stream: New(in),
		out:    newSink(out, promptThreshold),
	}
}

// ReadNext reads tokens from stdin until one parses as T and returns it.
// Garbage tokens are discarded, end of data blocks on the next stdin read
// until more input arrives. By default it never gives up (see
// SetReadRetries); a malformed utf8 source yields T's zero value since no
// token can ever parse again.
func ReadNext[T Value]() T {
	return readNext[T](stdin())
}

// ReadSafe is ReadNext except it returns T's zero value as soon as stdin
// is out of data instead of blocking forever.
func ReadSafe[T Value]() T {
	return readSafe[T](stdin())
}

// TryRead makes a single attempt at the next stdin token, the per-stream
// Read semantics behind the shared lock.
func TryRead[T Value]() (T, bool) {
	return tryRead[T](stdin())
}

// Pause flushes pending prompt output, then consumes and discards one full
// line from stdin. The classic "press enter to continue".
func Pause() {
	stdin().pause()
}

// ReadLine reads the next stdin line without its terminator.
func ReadLine() (string, bool) {
	return stdin().readLine()
}

// SkipLine discards the rest of the current stdin line.
func SkipLine() {
	stdin().skipLine()
}

// ReadChar reads the next stdin char, whitespace included.
func ReadChar() (rune, bool) {
	return stdin().readChar()
}

// Prompt buffers formatted text for stdout. It is flushed when it grows
// past a threshold and always right before a blocking read, so a prompt is
// on screen before the terminal waits for input.
func Prompt(format string, a ...any) {
	stdin().prompt(format, a...)
}

// SetReadRetries bounds how many times ReadNext re-fills from an exhausted
// stdin before giving up with the zero value. Zero restores the default
// unbounded blocking.
func SetReadRetries(n int) {
	stdin().setRetries(n)
}

// ConsoleStats reports the traffic through the shared stdin stream and the
// prompt sink.
func ConsoleStats() IoStats {
	return stdin().stats()
}

func readNext[T Value](c *console) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushPrompt()
	var zero T
	for attempt := 1; ; attempt++ {
		if value, ok := Read[T](c.stream); ok {
			return value
		}
		if !c.stream.src.retry() {
			return zero
		}
		if c.retries > 0 && attempt >= c.retries {
			return zero
		}
	}
}

func readSafe[T Value](c *console) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushPrompt()
	var zero T
	for {
		if value, ok := Read[T](c.stream); ok {
			return value
		}
		if !c.stream.Valid() {
			return zero
		}
	}
}

func tryRead[T Value](c *console) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Read[T](c.stream)
}

func (c *console) pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushPrompt()
	c.stream.src.retry()
	c.stream.SkipLine()
}

func (c *console) readLine() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream.ReadLine()
}

func (c *console) skipLine() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stream.SkipLine()
}

func (c *console) readChar() (rune, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream.ReadRune()
}

func (c *console) prompt(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.printf(format, a...)
	if c.out.full() {
		c.flushPrompt()
	}
}

func (c *console) setRetries(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retries = n
}

func (c *console) stats() IoStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stream.Stats()
	s.Out = c.out.getBytesWritten()
	s.Writes = c.out.getNumberOfWrites()
	return s
}

func (c *console) flushPrompt() {
	_, _ = c.out.flush() // No error handling (best-effort basis)
}
