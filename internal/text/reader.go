package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dyuri/fsaverage/internal/model"
	"golang.org/x/text/transform"
)

// Reader handles reading a color lookup table in text format.
//
// Each line holds four integers followed by a name:
//
//	0 0 0 0 unknown
//	1 10 20 30 cortex
//
// Parsing is lenient per line and follows stream extraction: each integer
// is the longest signed decimal prefix at the current position, and the
// first failed field leaves itself and every later field at the zero value.
// The line still produces an entry. Blank lines inside the table produce a
// zero entry; blank lines at the end of the input produce nothing. Lines
// have no length limit.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader creates a LUT reader over UTF-8 input
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		line: 0,
	}
}

// NewReaderCodePage creates a LUT reader that decodes input from the given
// code page before parsing
func NewReaderCodePage(r io.Reader, codePage int) (*Reader, error) {
	dec, err := DecoderForCodePage(codePage)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}
	return NewReader(r), nil
}

// Read parses the whole input. An empty input yields an empty, non-nil table.
// Only a failure of the underlying stream is reported as an error.
func (r *Reader) Read() (model.ColorTable, error) {
	lut := make(model.ColorTable, 0)
	blank := 0 // blank lines not yet known to be followed by data

	for {
		text, err := r.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("line %d: %w", r.line+1, err)
		}
		if text == "" && err != nil {
			break
		}
		r.line++

		if strings.TrimLeft(text, spaces) == "" {
			blank++
		} else {
			for ; blank > 0; blank-- {
				lut = append(lut, model.ColorEntry{})
			}
			lut = append(lut, parseEntry(text))
		}

		if err != nil {
			break
		}
	}

	return lut, nil
}

// spaces is the C locale whitespace set
const spaces = " \t\n\v\f\r"

func isSpace(c byte) bool {
	return strings.IndexByte(spaces, c) >= 0
}

// fieldScanner extracts fields from one line left to right
type fieldScanner struct {
	s   string
	pos int
}

func (f *fieldScanner) skipSpace() {
	for f.pos < len(f.s) && isSpace(f.s[f.pos]) {
		f.pos++
	}
}

// nextInt reads an optionally signed decimal prefix. Values outside the int32
// range are clamped and reported as a failure.
func (f *fieldScanner) nextInt() (int, bool) {
	f.skipSpace()
	i := f.pos
	neg := false
	if i < len(f.s) && (f.s[i] == '+' || f.s[i] == '-') {
		neg = f.s[i] == '-'
		i++
	}
	start := i
	var v int64
	overflow := false
	for i < len(f.s) && f.s[i] >= '0' && f.s[i] <= '9' {
		if !overflow {
			v = v*10 + int64(f.s[i]-'0')
			if v > math.MaxInt32+1 {
				overflow = true
			}
		}
		i++
	}
	if i == start {
		return 0, false
	}
	f.pos = i

	if neg {
		v = -v
	}
	switch {
	case overflow || v > math.MaxInt32:
		if neg {
			return math.MinInt32, false
		}
		return math.MaxInt32, false
	case v < math.MinInt32:
		return math.MinInt32, false
	}
	return int(v), true
}

// nextWord reads the next run of non-space bytes
func (f *fieldScanner) nextWord() string {
	f.skipSpace()
	start := f.pos
	for f.pos < len(f.s) && !isSpace(f.s[f.pos]) {
		f.pos++
	}
	return f.s[start:f.pos]
}

// parseEntry extracts r, g, b, a and name from one line
func parseEntry(line string) model.ColorEntry {
	var entry model.ColorEntry
	f := fieldScanner{s: line}

	for _, dst := range [4]*int{&entry.R, &entry.G, &entry.B, &entry.A} {
		v, ok := f.nextInt()
		*dst = v
		if !ok {
			return entry
		}
	}

	entry.Name = f.nextWord()
	return entry
}
