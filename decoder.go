package fastscan

import (
	"io"
	"math/bits"
)

const (
	maxSequenceUnits = 4
	continuationBits = 6
	continuationMask = 0x3F // low six payload bits of a continuation byte
	continuationHigh = 0x80 // continuation bytes look like 10xxxxxx
	highBitsMask     = 0xC0
)

type decoder struct {
	src *source
}

func newDecoder(src *source) *decoder {
	return &decoder{src: src}
}

// next decodes the following code point from the byte stream. The count
// of leading one bits in the lead byte gives the sequence length: zero
// means the byte is the code point itself, two to four mean that many
// bytes, each continuation byte carrying six payload bits.
func (d *decoder) next() (rune, error) {
	lead, err := d.src.read()
	if err != nil {
		return 0, err
	}

	units := bits.LeadingZeros8(^lead)
	if units == 0 {
		return rune(lead), nil
	}
	if units == 1 || units > maxSequenceUnits {
		return 0, d.illegalLeadByte(lead)
	}

	c := rune(lead & (0xFF >> (units + 1)))
	for i := 0; i < units-1; i++ {
		next, err := d.src.read()
		if err == io.EOF {
			return 0, d.truncatedSequence(units)
		}
		if err != nil {
			return 0, err
		}
		if next&highBitsMask != continuationHigh {
			return 0, d.illegalContinuation(next)
		}
		c = (c << continuationBits) | rune(next&continuationMask)
	}
	return c, nil
}

func (d *decoder) illegalLeadByte(b byte) *ScanError {
	return newDecodingError("illegal lead byte %#x", b)
}

func (d *decoder) truncatedSequence(units int) *ScanError {
	return newDecodingError("end of input inside a %v byte sequence", units)
}

func (d *decoder) illegalContinuation(b byte) *ScanError {
	return newDecodingError("illegal continuation byte %#x", b)
}
