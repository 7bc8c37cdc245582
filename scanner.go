// Package fastscan reads whitespace delimited tokens from a byte stream
// through a small fixed buffer, without the pattern matching machinery
// of general purpose text scanners.
package fastscan

import (
	"io"
	"os"
	"strings"
)

const defaultBufferSize = 1 << 7 // 128 bytes

// ScanSettings tunes a scanner at construction time.
type ScanSettings struct {
	// BufferSize is the fixed capacity of the internal byte buffer.
	// Zero or negative picks the default of 128 bytes.
	BufferSize int
	// PropagateErrors makes stream failures surface as reading errors.
	// By default they are logged and treated as end of input.
	PropagateErrors bool
}

// Scanner extracts tokens, numbers and lines from an underlying byte
// stream. It is not safe for concurrent use and must not be used after
// Close.
type Scanner struct {
	src    *source
	parser *parser
	closed bool
}

// NewScanner scans from an already open stream.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerWith(r, ScanSettings{})
}

// NewScannerWith scans from an already open stream with explicit settings.
func NewScannerWith(r io.Reader, settings ScanSettings) *Scanner {
	if settings.BufferSize <= 0 {
		settings.BufferSize = defaultBufferSize
	}
	src := newBufferedSource(r, settings.BufferSize, settings.PropagateErrors)
	return &Scanner{
		src:    src,
		parser: newParser(src),
	}
}

// NewFileScanner scans the file at path. The scanner owns the file and
// releases it on Close. A missing file yields a source not found error.
func NewFileScanner(path string) (*Scanner, error) {
	file, err := openSourceFile(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(file), nil
}

// NewStringScanner scans an in-memory string.
func NewStringScanner(s string) *Scanner {
	return NewScanner(strings.NewReader(s))
}

// NewStdinScanner scans the process standard input.
func NewStdinScanner() *Scanner {
	return NewScanner(os.Stdin)
}

// Next returns the next whitespace delimited token, or the empty string
// once the input is exhausted.
func (scanner *Scanner) Next() (string, error) {
	return scanner.parser.nextToken()
}

// NextInt parses the next token as a 32 bit decimal integer.
func (scanner *Scanner) NextInt() (int, error) {
	return scanner.parser.nextInt()
}

// NextLong parses the next token as a 64 bit decimal integer.
func (scanner *Scanner) NextLong() (int64, error) {
	return scanner.parser.nextLong()
}

// NextDouble parses the next token as a floating point value.
func (scanner *Scanner) NextDouble() (float64, error) {
	return scanner.parser.nextDouble()
}

// NextLine returns the rest of the current line, the separator excluded.
func (scanner *Scanner) NextLine() (string, error) {
	return scanner.parser.nextLine()
}

// HasNext reports whether a further token exists. It never consumes a
// token and repeated calls give the same answer.
func (scanner *Scanner) HasNext() bool {
	return scanner.parser.hasNext()
}

// HasNextLine reports whether any input is left at all.
func (scanner *Scanner) HasNextLine() bool {
	return scanner.parser.hasNextLine()
}

// NumReads returns how many refill calls delivered bytes so far.
func (scanner *Scanner) NumReads() int {
	return scanner.parser.numOfReads()
}

// BytesRead returns how many bytes came in from the stream so far.
func (scanner *Scanner) BytesRead() int {
	return scanner.parser.bytesIn()
}

// Close releases the underlying stream if it is closeable. Closing
// twice, or closing a scanner whose stream cannot be closed, is a no-op.
func (scanner *Scanner) Close() error {
	if scanner.closed {
		return nil
	}
	scanner.closed = true
	if closer, ok := scanner.src.fd.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
