package fastscan

import (
	"io"
)

type inputStream interface {
	Read(buff []byte) (n int, err error)
}

type source struct {
	fd        inputStream
	buff      []byte
	pos       int
	size      int
	eof       bool
	pending   error
	propagate bool
	in        ioData
}

func newBufferedSource(fd inputStream, buffSize int, propagate bool) *source {
	src := new(source)
	src.fd = fd
	src.buff = make([]byte, buffSize)
	src.pos = 0
	src.size = 0
	src.propagate = propagate
	return src
}

// read returns the next unread byte, refilling the buffer from the
// underlying stream once the cursor reaches the count of valid bytes.
// After the stream is exhausted every call returns io.EOF without
// touching the stream again.
func (src *source) read() (byte, error) {
	if src.pos == src.size {
		if err := src.loadData(); err != nil {
			return 0, err
		}
	}
	b := src.buff[src.pos]
	src.pos += 1
	return b, nil
}

// unread steps the cursor back one byte. Calling it right after a read
// is always well defined, even when that read triggered a refill, since
// the cursor is reset on every refill.
func (src *source) unread() {
	if src.pos > 0 {
		src.pos -= 1
	}
}

func (src *source) loadData() error {
	if src.eof {
		return io.EOF
	}
	if src.pending != nil {
		return src.exhaust(src.pending)
	}
	for {
		nbytes, err := src.fd.Read(src.buff)
		if nbytes > 0 {
			src.size = nbytes
			src.pos = 0
			src.in.add(nbytes)
			if err != nil {
				// Hand the bytes out first, surface the error on
				// the next refill
				src.pending = err
			}
			return nil
		}
		if err != nil {
			return src.exhaust(err)
		}
		// A zero byte read without an error is transient, keep trying
	}
}

func (src *source) exhaust(err error) error {
	src.eof = true
	src.pending = nil
	if err == io.EOF {
		return io.EOF
	}
	if src.propagate {
		return newReadingError(err)
	}
	logError("Error reading from source, treating it as end of input", err)
	return io.EOF
}

func (src *source) numOfReads() int {
	return src.in.getCalls()
}

func (src *source) bytesIn() int {
	return src.in.getByteCount()
}
