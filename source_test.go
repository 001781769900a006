package rin

import (
	"io"
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestBufferedReadFromSource(t *testing.T) {
	runSourceTest("42 F398BC5672A51D8D \n", t)
}

func TestBufferedReadFromSingleByteSource(t *testing.T) {
	runSourceTest("S", t)
}

func TestBufferedReadFromEmptySource(t *testing.T) {
	runSourceTest("", t)
}

func runSourceTest(fileContent string, t *testing.T) {
	assert := assert.New(t)

	fs := fstest.MapFS{
		"test/source/test.txt": {
			Data: []byte(fileContent),
		},
	}

	basicInput, err := fs.Open("test/source/test.txt")
	if err != nil {
		panic(err)
	}

	defer basicInput.Close()

	const buffSize = 8
	src := newBufferedSource(basicInput, buffSize)
	expectedInput := []byte(fileContent)

	for i, expected := range expectedInput {
		ch, ok := src.popByte()
		if !ok {
			t.Fatalf("Source dried up at byte #%v", i)
		}
		if ch != expected {
			t.Errorf("Byte read no #%v %v not equal to expected %v", i, ch, expected)
		}
	}

	_, ok := src.popByte()
	assert.False(ok)
	assert.False(src.valid())
	assert.True(src.failure.isEOF())
	assert.Equal(io.EOF, src.failure.getCause())

	expectedReads := int(math.Ceil(float64(len(expectedInput)) / buffSize))
	assert.Equal(expectedReads, src.numOfReads())
	assert.Equal(len(expectedInput), src.bytesIn())

	// Exhaustion is sticky and repeatable
	_, ok = src.popByte()
	assert.False(ok)
	assert.False(src.valid())
}

// feedReader hands out one scripted item per Read call: a string feeds
// bytes, an error is returned as is. Lets a test simulate a source that
// runs dry and then comes back to life.
type feedReader struct {
	script []any
}

func (r *feedReader) Read(p []byte) (int, error) {
	if len(r.script) == 0 {
		return 0, io.EOF
	}
	item := r.script[0]
	r.script = r.script[1:]
	switch v := item.(type) {
	case string:
		return copy(p, v), nil
	case error:
		return 0, v
	default:
		panic("bad feedReader script")
	}
}

func TestRetryAfterEndOfData(t *testing.T) {
	assert := assert.New(t)

	fd := &feedReader{script: []any{"4", io.EOF, "2"}}
	src := newBufferedSource(fd, 4)

	ch, ok := src.popByte()
	assert.True(ok)
	assert.Equal(byte('4'), ch)

	_, ok = src.popByte()
	assert.False(ok)
	assert.False(src.valid())

	// A recoverable failure can be cleared and the fill tried again
	assert.True(src.retry())
	ch, ok = src.popByte()
	assert.True(ok)
	assert.Equal(byte('2'), ch)
}

func TestEncodingFailureIsFinal(t *testing.T) {
	assert := assert.New(t)

	src := newBufferedSource(&feedReader{script: []any{"\x80abc"}}, 4)

	_, ok := src.popRune()
	assert.False(ok)
	assert.False(src.valid())
	assert.False(src.failure.recoverable())
	assert.False(src.retry())
}
