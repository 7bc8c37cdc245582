package fastscan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTwoTokens(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("hello world")

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("hello", token)

	token, err = scanner.Next()
	assert.NoError(err)
	assert.Equal("world", token)

	assert.False(scanner.HasNext())
}

func TestScanTwoInts(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("42 100\n")

	value, err := scanner.NextInt()
	assert.NoError(err)
	assert.Equal(42, value)

	value, err = scanner.NextInt()
	assert.NoError(err)
	assert.Equal(100, value)

	// Reading the second token consumed its trailing newline too, so
	// nothing of the input is left
	assert.False(scanner.HasNextLine())
}

func TestScanTwoDoubles(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("3.14 -2.5")

	value, err := scanner.NextDouble()
	assert.NoError(err)
	assert.InDelta(3.14, value, 1e-9)

	value, err = scanner.NextDouble()
	assert.NoError(err)
	assert.InDelta(-2.5, value, 1e-9)
}

func TestScanEmptyInput(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("")

	assert.False(scanner.HasNext())
	assert.False(scanner.HasNextLine())

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("", token)
}

func TestHasNextLeavesTheTokenInPlace(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("  answer 42")

	assert.True(scanner.HasNext())
	assert.True(scanner.HasNext())

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("answer", token)

	assert.True(scanner.HasNext())

	value, err := scanner.NextInt()
	assert.NoError(err)
	assert.Equal(42, value)
}

func TestMixedTokenAndLineReads(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("GET key\nrest of the line\nlast")

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("GET", token)

	token, err = scanner.Next()
	assert.NoError(err)
	assert.Equal("key", token)

	line, err := scanner.NextLine()
	assert.NoError(err)
	assert.Equal("rest of the line", line)

	assert.True(scanner.HasNextLine())

	line, err = scanner.NextLine()
	assert.NoError(err)
	assert.Equal("last", line)

	assert.False(scanner.HasNextLine())
}

func TestScannerWithTinyBuffer(t *testing.T) {
	assert := assert.New(t)

	scanner := NewScannerWith(
		// The number spans many refills of a two byte buffer
		strings.NewReader("9223372036854775807 привет"),
		ScanSettings{BufferSize: 2},
	)

	value, err := scanner.NextLong()
	assert.NoError(err)
	assert.Equal(int64(9223372036854775807), value)

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("привет", token)
}

func TestScannerAccountsForIo(t *testing.T) {
	assert := assert.New(t)

	scanner := NewScannerWith(strings.NewReader("0123456789"), ScanSettings{BufferSize: 4})

	for scanner.HasNext() {
		_, err := scanner.Next()
		assert.NoError(err)
	}

	assert.Equal(10, scanner.BytesRead())
	assert.Equal(3, scanner.NumReads())
}

func TestMalformedIntDoesNotReturnTruncatedValue(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("12a 7")

	value, err := scanner.NextInt()
	assert.Error(err)
	assert.Equal(0, value)

	// The malformed token was still consumed whole
	value, err = scanner.NextInt()
	assert.NoError(err)
	assert.Equal(7, value)
}

func TestFileScanner(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("42 words\n"), 0644); err != nil {
		panic(err)
	}

	scanner, err := NewFileScanner(path)
	if err != nil {
		panic(err)
	}

	value, err := scanner.NextInt()
	assert.NoError(err)
	assert.Equal(42, value)

	token, err := scanner.Next()
	assert.NoError(err)
	assert.Equal("words", token)

	assert.NoError(scanner.Close())
	assert.NoError(scanner.Close()) // closing twice is a no-op
}

func TestFileScannerSourceNotFound(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "no-such-file.txt")
	scanner, err := NewFileScanner(path)

	assert.Nil(scanner)

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("Expected a ScanError, got %v", err)
	}
	assert.Equal(ErrSourceNotFound, scanErr.Kind())
}

func TestCloseWithoutCloseableSource(t *testing.T) {
	assert := assert.New(t)

	scanner := NewStringScanner("whatever")

	assert.NoError(scanner.Close())
	assert.NoError(scanner.Close())
}
