package rin

import (
	"encoding"
	"strconv"
	"unicode/utf8"
)

// Char is a rune read as a whole token: the token must be exactly one char.
// It is a separate type because rune is an alias of int32, which Read
// parses numerically.
type Char rune

// Value enumerates the types Read knows how to parse from a token.
// Anything else can implement encoding.TextUnmarshaler and go through
// Stream.ReadInto instead.
type Value interface {
	string | bool | Char |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Read extracts the next token and parses it as T. A token that fails to
// parse stays consumed: "17GARBAGE" read as int yields no value at all,
// it does not give back 17 and leave GARBAGE behind.
func Read[T Value](s *Stream) (T, bool) {
	var zero T
	text, ok := s.NextToken()
	if !ok {
		return zero, false
	}
	return parseValue[T](text)
}

// Scan is the extraction operator idiom: it stores the next T in dst and
// reports success, so `for rin.Scan(s, &x) { ... }` walks a stream until
// the data runs out or a token refuses to parse.
func Scan[T Value](s *Stream, dst *T) bool {
	value, ok := Read[T](s)
	if !ok {
		return false
	}
	*dst = value
	return true
}

func parseValue[T Value](text string) (T, bool) {
	var value T

	switch dst := any(&value).(type) {
	case *string:
		*dst = text
	case *bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return value, false
		}
		*dst = b
	case *Char:
		ch, size := utf8.DecodeRuneInString(text)
		if ch == utf8.RuneError || size != len(text) {
			return value, false
		}
		*dst = Char(ch)
	case *int:
		return parseSigned[T](text, strconv.IntSize)
	case *int8:
		return parseSigned[T](text, 8)
	case *int16:
		return parseSigned[T](text, 16)
	case *int32:
		return parseSigned[T](text, 32)
	case *int64:
		return parseSigned[T](text, 64)
	case *uint:
		return parseUnsigned[T](text, strconv.IntSize)
	case *uint8:
		return parseUnsigned[T](text, 8)
	case *uint16:
		return parseUnsigned[T](text, 16)
	case *uint32:
		return parseUnsigned[T](text, 32)
	case *uint64:
		return parseUnsigned[T](text, 64)
	case *float32:
		return parseFloat[T](text, 32)
	case *float64:
		return parseFloat[T](text, 64)
	}

	return value, true
}

func parseSigned[T Value](text string, bits int) (T, bool) {
	var value T
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return value, false
	}
	switch dst := any(&value).(type) {
	case *int:
		*dst = int(n)
	case *int8:
		*dst = int8(n)
	case *int16:
		*dst = int16(n)
	case *int32:
		*dst = int32(n)
	case *int64:
		*dst = n
	}
	return value, true
}

func parseUnsigned[T Value](text string, bits int) (T, bool) {
	var value T
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return value, false
	}
	switch dst := any(&value).(type) {
	case *uint:
		*dst = uint(n)
	case *uint8:
		*dst = uint8(n)
	case *uint16:
		*dst = uint16(n)
	case *uint32:
		*dst = uint32(n)
	case *uint64:
		*dst = n
	}
	return value, true
}

func parseFloat[T Value](text string, bits int) (T, bool) {
	var value T
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return value, false
	}
	switch dst := any(&value).(type) {
	case *float32:
		*dst = float32(f)
	case *float64:
		*dst = f
	}
	return value, true
}

// ReadInto extracts the next token and hands it to a caller supplied
// unmarshaler, for types outside the Value set.
func (s *Stream) ReadInto(dst encoding.TextUnmarshaler) bool {
	text, ok := s.NextToken()
	if !ok {
		return false
	}
	return dst.UnmarshalText([]byte(text)) == nil
}
