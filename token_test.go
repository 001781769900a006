package rin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimpleInput(t *testing.T) {
	assert := assert.New(t)

	stream := FromString("  42   7\n")

	token, ok := stream.NextToken()
	assert.True(ok)
	assert.Equal("42", token)

	token, ok = stream.NextToken()
	assert.True(ok)
	assert.Equal("7", token)

	_, ok = stream.NextToken()
	assert.False(ok)
	assert.False(stream.Valid())
	assert.False(stream.Valid()) // stays false
}

func TestTokenizeCollapsesWhitespaceRuns(t *testing.T) {
	assert := assert.New(t)

	content := "\t alpha\v beta\r\n\f gamma  \t delta\n\n"
	stream := FromString(content)

	var tokens []string
	for {
		token, ok := stream.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}

	assert.Equal("alpha beta gamma delta", strings.Join(tokens, " "))
}

func TestTokenSpanningBufferRefills(t *testing.T) {
	assert := assert.New(t)

	// Both tokens are longer than the buffer, so each is merged across
	// several refills
	stream := NewSize(strings.NewReader("F398BC5672A51D8D 71A79DF49BDC291E"), 4)

	token, ok := stream.NextToken()
	assert.True(ok)
	assert.Equal("F398BC5672A51D8D", token)

	token, ok = stream.NextToken()
	assert.True(ok)
	assert.Equal("71A79DF49BDC291E", token)

	_, ok = stream.NextToken()
	assert.False(ok)
}

func TestReadLines(t *testing.T) {
	assert := assert.New(t)

	stream := FromString("first line\nsecond line\nlast one")

	line, ok := stream.ReadLine()
	assert.True(ok)
	assert.Equal("first line", line)

	stream.SkipLine()

	line, ok = stream.ReadLine()
	assert.True(ok)
	assert.Equal("last one", line)

	_, ok = stream.ReadLine()
	assert.False(ok)
	assert.False(stream.Valid())
}

func TestReadEmptyLine(t *testing.T) {
	assert := assert.New(t)

	stream := FromString("\nafter\n")

	line, ok := stream.ReadLine()
	assert.True(ok)
	assert.Equal("", line)

	line, ok = stream.ReadLine()
	assert.True(ok)
	assert.Equal("after", line)

	_, ok = stream.ReadLine()
	assert.False(ok)
}

func TestSkipFixedWidthChars(t *testing.T) {
	assert := assert.New(t)

	// Fixed width prefix, whitespace included, then a value
	stream := FromString("id: 042")
	stream.Skip(4)

	value, ok := Read[int](stream)
	assert.True(ok)
	assert.Equal(42, value)
}

func TestSkipCountsCharsNotBytes(t *testing.T) {
	assert := assert.New(t)

	stream := FromString("€€€7")
	stream.Skip(3)

	ch, ok := stream.ReadRune()
	assert.True(ok)
	assert.Equal('7', ch)
}

func TestReadRuneReturnsWhitespace(t *testing.T) {
	assert := assert.New(t)

	stream := FromString("a b")

	expected := []rune{'a', ' ', 'b'}
	for _, want := range expected {
		ch, ok := stream.ReadRune()
		assert.True(ok)
		assert.Equal(want, ch)
	}

	_, ok := stream.ReadRune()
	assert.False(ok)
}
