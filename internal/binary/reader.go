package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Decoding errors. Callers match them with errors.Is.
var (
	// ErrTruncated is returned when the stream ends before a declared field is complete
	ErrTruncated = errors.New("truncated data")
	// ErrTooLarge is returned when a declared count exceeds the configured element limit
	ErrTooLarge = errors.New("declared count exceeds limit")
)

// wordSize is the width of every scalar in the mesh and label layouts
const wordSize = 4

// chunkWords bounds the up-front allocation when the stream length is unknown
const chunkWords = 1 << 16

// Reader provides sequential little-endian reads over a binary stream.
//
// When the stream length is known, declared counts are checked against the
// bytes still available before anything is allocated, so a corrupt header
// cannot request more memory than the file could ever fill.
type Reader struct {
	r           io.Reader
	remaining   int64 // bytes left in the stream, -1 if unknown
	endian      binary.ByteOrder
	maxElements int64 // 0 means unlimited
	buf         [wordSize]byte
}

// NewReader creates a reader over r. size is the total stream length in
// bytes, or a negative value if it is not known.
func NewReader(r io.Reader, size int64) *Reader {
	if size < 0 {
		size = -1
	}
	return &Reader{
		r:         r,
		remaining: size,
		endian:    binary.LittleEndian,
	}
}

// SetMaxElements caps the number of scalars a single array may declare.
// Zero removes the cap.
func (r *Reader) SetMaxElements(n int64) {
	if n < 0 {
		n = 0
	}
	r.maxElements = n
}

// ReadUint32 reads one little-endian u32
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.readFull(r.buf[:]); err != nil {
		return 0, err
	}
	return r.endian.Uint32(r.buf[:]), nil
}

// ReadCount reads a u32 element count and returns the number of scalars it
// declares (count * width), after checking it against the stream budget.
func (r *Reader) ReadCount(width int) (int, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	n := int64(count) * int64(width)
	if err := r.checkWords(n); err != nil {
		return 0, fmt.Errorf("count %d: %w", count, err)
	}
	return int(n), nil
}

// ReadUint32s reads n little-endian u32 values
func (r *Reader) ReadUint32s(n int) ([]uint32, error) {
	if err := r.checkWords(int64(n)); err != nil {
		return nil, err
	}
	out := make([]uint32, 0, r.capHint(n))
	err := r.readWords(n, func(w uint32) {
		out = append(out, w)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFloat32s reads n little-endian IEEE-754 single precision values.
// Bit patterns are preserved exactly, NaN payloads included.
func (r *Reader) ReadFloat32s(n int) ([]float32, error) {
	if err := r.checkWords(int64(n)); err != nil {
		return nil, err
	}
	out := make([]float32, 0, r.capHint(n))
	err := r.readWords(n, func(w uint32) {
		out = append(out, math.Float32frombits(w))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// checkWords rejects a declared array that cannot fit in the remaining
// stream or exceeds the element cap
func (r *Reader) checkWords(n int64) error {
	if r.maxElements > 0 && n > r.maxElements {
		return fmt.Errorf("%d elements, limit %d: %w", n, r.maxElements, ErrTooLarge)
	}
	if r.remaining >= 0 && n*wordSize > r.remaining {
		return fmt.Errorf("need %d bytes, %d available: %w", n*wordSize, r.remaining, ErrTruncated)
	}
	return nil
}

// capHint returns the initial capacity for an n element array
func (r *Reader) capHint(n int) int {
	if r.remaining < 0 && n > chunkWords {
		return chunkWords
	}
	return n
}

// readWords reads n words in chunks and hands each one to emit in order
func (r *Reader) readWords(n int, emit func(uint32)) error {
	chunk := make([]byte, min(n, chunkWords)*wordSize)
	for n > 0 {
		k := min(n, chunkWords)
		b := chunk[:k*wordSize]
		if err := r.readFull(b); err != nil {
			return err
		}
		for i := 0; i < len(b); i += wordSize {
			emit(r.endian.Uint32(b[i:]))
		}
		n -= k
	}
	return nil
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.r, b)
	if r.remaining >= 0 {
		r.remaining -= int64(n)
		if r.remaining < 0 {
			r.remaining = 0
		}
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("read %d bytes, got %d: %w", len(b), n, ErrTruncated)
		}
		return err
	}
	return nil
}
