package fastscan

import (
	"io"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenizer struct {
	decoder *decoder
	src     *source
	lineSep rune
}

func newTokenizer(src *source) *tokenizer {
	tokenizer := new(tokenizer)
	tokenizer.decoder = newDecoder(src)
	tokenizer.src = src
	tokenizer.lineSep = lineSeparator()
	return tokenizer
}

// The reference behavior keys off the first character of the platform
// line separator only, so CRLF input outside windows keeps its \r.
func lineSeparator() rune {
	if runtime.GOOS == "windows" {
		return '\r'
	}
	return '\n'
}

func isSpaceByte(b byte) bool {
	return b < utf8.RuneSelf && unicode.IsSpace(rune(b))
}

// nextToken skips leading whitespace and returns the following maximal
// run of non whitespace characters. The delimiter after the token is
// consumed along with it. At end of input it returns the empty string.
func (t *tokenizer) nextToken() (string, error) {
	var token strings.Builder
	for {
		c, err := t.decoder.next()
		if err == io.EOF {
			return token.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(c) {
			if token.Len() > 0 {
				return token.String(), nil
			}
			// Still eating the whitespace before the token
			continue
		}
		token.WriteRune(c)
	}
}

// nextLine returns everything up to the next line separator or the end
// of input, the separator excluded but consumed.
func (t *tokenizer) nextLine() (string, error) {
	var line strings.Builder
	for {
		c, err := t.decoder.next()
		if err == io.EOF {
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
		if c == t.lineSep {
			return line.String(), nil
		}
		line.WriteRune(c)
	}
}

// hasNextLine peeks a single byte and puts it back, reporting whether
// there is anything left to read at all.
func (t *tokenizer) hasNextLine() bool {
	_, err := t.src.read()
	if err != nil {
		t.logIfNotEof(err)
		return false
	}
	t.src.unread()
	return true
}

// hasNext reads ahead over the whitespace between tokens, refilling the
// buffer as needed, and puts back the first non whitespace byte found.
// The whitespace itself stays consumed, which the token readers would
// discard anyway, so a subsequent read still yields the same token.
func (t *tokenizer) hasNext() bool {
	for {
		b, err := t.src.read()
		if err != nil {
			t.logIfNotEof(err)
			return false
		}
		if !isSpaceByte(b) {
			t.src.unread()
			return true
		}
	}
}

func (t *tokenizer) logIfNotEof(err error) {
	if err != io.EOF {
		logError("Error while looking ahead", err)
	}
}

func (t *tokenizer) numOfReads() int {
	return t.src.numOfReads()
}

func (t *tokenizer) bytesIn() int {
	return t.src.bytesIn()
}
