package fastscan

import (
	"strconv"
)

type parser struct {
	tokenizer *tokenizer
}

func newParser(src *source) *parser {
	parser := new(parser)
	parser.tokenizer = newTokenizer(src)
	return parser
}

func (parser *parser) nextToken() (string, error) {
	return parser.tokenizer.nextToken()
}

func (parser *parser) nextLine() (string, error) {
	return parser.tokenizer.nextLine()
}

func (parser *parser) hasNext() bool {
	return parser.tokenizer.hasNext()
}

func (parser *parser) hasNextLine() bool {
	return parser.tokenizer.hasNextLine()
}

func (parser *parser) nextInt() (int, error) {
	token, err := parser.nextToken()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, parser.invalidNumber("int", token)
	}
	return int(value), nil
}

func (parser *parser) nextLong() (int64, error) {
	token, err := parser.nextToken()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, parser.invalidNumber("long", token)
	}
	return value, nil
}

func (parser *parser) nextDouble() (float64, error) {
	token, err := parser.nextToken()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, parser.invalidNumber("double", token)
	}
	return value, nil
}

func (parser *parser) invalidNumber(expected string, token string) *ScanError {
	return newFormatError("invalid %v token \"%v\"", expected, token)
}

func (parser *parser) numOfReads() int {
	return parser.tokenizer.numOfReads()
}

func (parser *parser) bytesIn() int {
	return parser.tokenizer.bytesIn()
}
