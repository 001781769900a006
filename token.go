package rin

import (
	"strings"
)

const (
	lineFeed    = '\n'
	carryReturn = '\r'
	space       = ' '
	tab         = '\t'
	verticalTab = '\v'
	formFeed    = '\f'
)

// Only the single byte ascii whitespaces count as token separators. Exotic
// utf8 spaces would force a full unicode class lookup per char for little
// practical gain.
func isSpace(ch rune) bool {
	switch ch {
	case space, tab, lineFeed, carryReturn, verticalTab, formFeed:
		return true
	default:
		return false
	}
}

type tokenizer struct {
	src *source
}

func newTokenizer(src *source) *tokenizer {
	tokenizer := new(tokenizer)
	tokenizer.src = src
	return tokenizer
}

// nextToken returns the next maximal run of non whitespace chars. The
// terminating whitespace is consumed but left out of the token. A token
// spanning two buffer refills comes back merged.
func (tokenizer *tokenizer) nextToken() (string, bool) {
	tokenizer.skipSpaces()
	var token strings.Builder
	for {
		ch, ok := tokenizer.src.popRune()
		if !ok {
			break // maybe eof
		}
		if isSpace(ch) {
			// Whitespace after data ends the token
			break
		}
		token.WriteRune(ch)
	}
	if token.Len() == 0 {
		return "", false
	}
	return token.String(), true
}

// skipSpaces leaves the cursor at the first non whitespace char or at the
// end of the data. Separators are single byte, so a raw byte peek never
// lands inside a multi byte char.
func (tokenizer *tokenizer) skipSpaces() {
	for {
		if !tokenizer.src.hasUnreadInput() && !tokenizer.src.loadData() {
			return
		}
		ch := tokenizer.src.buff[tokenizer.src.pos]
		if ch > space || !isSpace(rune(ch)) {
			return
		}
		tokenizer.src.pos += 1
	}
}

// nextLine returns everything up to the next line feed. The line feed is
// consumed and excluded. False means not even a terminator was left.
func (tokenizer *tokenizer) nextLine() (string, bool) {
	var line strings.Builder
	for {
		ch, ok := tokenizer.src.popRune()
		if !ok {
			if line.Len() == 0 {
				return "", false
			}
			break // last line of the source had no terminator
		}
		if ch == lineFeed {
			break
		}
		line.WriteRune(ch)
	}
	return line.String(), true
}

func (tokenizer *tokenizer) skipLine() {
	for {
		ch, ok := tokenizer.src.popRune()
		if !ok || ch == lineFeed {
			break
		}
	}
}

// skip discards the next n chars regardless of whitespace, for fixed width
// input.
func (tokenizer *tokenizer) skip(n int) {
	for i := 0; i < n; i++ {
		if _, ok := tokenizer.src.popRune(); !ok {
			break
		}
	}
}
