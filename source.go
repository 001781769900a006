package rin

import (
	"io"
	"unicode/utf8"
)

// 8kb, same default as bufio.Reader
const defaultBuffSize = 1024 * 8

type inputStream interface {
	Read(buff []byte) (n int, err error)
}

type source struct {
	fd      inputStream
	buff    []byte
	pos     int
	size    int
	failure *streamError
	pending error
	reads   int
	in      int
}

func newBufferedSource(fd inputStream, buffSize int) *source {
	if buffSize < 1 {
		buffSize = defaultBuffSize
	}
	src := new(source)
	src.fd = fd
	src.buff = make([]byte, buffSize)
	src.pos = 0
	src.size = 0
	return src
}

func (src *source) popByte() (byte, bool) {
	if !src.hasUnreadInput() {
		if !src.loadData() {
			return 0, false
		}
	}
	b := src.buff[src.pos]
	src.pos += 1
	return b, true
}

func (src *source) hasUnreadInput() bool {
	return src.size > 0 && src.pos < src.size
}

func (src *source) loadData() bool {
	if src.failed() {
		return false
	}
	if src.pending != nil {
		src.fail(src.pending)
		return false
	}

	nbytes, err := src.fd.Read(src.buff)

	if nbytes > 0 {
		src.size = nbytes
		src.pos = 0
		src.reads += 1
		src.in += nbytes
		// A reader may hand back data and an error on the same call, so
		// the error is kept for the next refill
		src.pending = err
		return true
	}

	if err == nil {
		// Zero bytes without an error means the source has nothing left
		err = io.EOF
	}
	src.fail(err)
	return false
}

func (src *source) fail(err error) {
	src.failure = newReadingError(err)
	src.pending = nil
	if !src.failure.isEOF() {
		logReadError(err)
	}
}

func (src *source) corrupt() {
	src.failure = newEncodingError()
	// End of the valid data: whatever sits buffered past the bad
	// sequence stays unread
	src.pos = src.size
	logBadEncoding()
}

func (src *source) failed() bool {
	return src.failure != nil
}

// retry clears a recoverable failure so a blocking caller can re-fill from
// a live source. Encoding failures are final.
func (src *source) retry() bool {
	if !src.failed() {
		return true
	}
	if !src.failure.recoverable() {
		return false
	}
	src.failure = nil
	src.size = 0
	src.pos = 0
	return true
}

// valid reports whether the source may still yield chars. It turns false
// once the source has failed and every buffered byte was consumed.
func (src *source) valid() bool {
	return !src.failed() || src.hasUnreadInput()
}

// popRune decodes the next utf8 char, pulling continuation bytes through
// popByte so a sequence split across two refills is assembled transparently.
func (src *source) popRune() (rune, bool) {
	c1, ok := src.popByte()
	if !ok {
		return 0, false
	}

	// Zero continuations (0 to 127)
	if c1&0x80 == 0 {
		return rune(c1), true
	}

	var continuations int
	var r rune

	switch {
	case c1&0xE0 == 0xC0:
		// One continuation (128 to 2047)
		continuations = 1
		r = rune(c1 & 0x1F)
	case c1&0xF0 == 0xE0:
		// Two continuations (2048 to 65535 minus surrogates)
		continuations = 2
		r = rune(c1 & 0x0F)
	case c1&0xF8 == 0xF0:
		// Three continuations (65536 to 1114111)
		continuations = 3
		r = rune(c1 & 0x07)
	default:
		// Orphan continuation byte or invalid leading byte
		src.corrupt()
		return 0, false
	}

	for i := 0; i < continuations; i++ {
		c, ok := src.popByte()
		if !ok {
			// Sequence truncated by the end of the data
			return 0, false
		}
		if c&0xC0 != 0x80 {
			src.corrupt()
			return 0, false
		}
		r = r<<6 | rune(c&0x3F)
	}

	if !utf8.ValidRune(r) {
		src.corrupt()
		return 0, false
	}
	return r, true
}

func (src *source) numOfReads() int {
	return src.reads
}

func (src *source) bytesIn() int {
	return src.in
}
