package fsaverage

import (
	"github.com/dyuri/fsaverage/internal/text"
	"github.com/sirupsen/logrus"
)

// Option configures a Surface
type Option func(*Surface)

// WithLogger sets the sink for load diagnostics.
// The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Surface) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCodePage sets the code page used to decode names in .lut files.
// The default is UTF-8. See text.DecoderForCodePage for supported values.
func WithCodePage(codePage int) Option {
	return func(s *Surface) {
		s.codePage = codePage
	}
}

// WithMaxElements caps the number of scalars any single array in a binary
// file may declare. Zero means no cap beyond the file length itself.
func WithMaxElements(n int64) Option {
	return func(s *Surface) {
		s.maxElements = n
	}
}

func defaultOptions(s *Surface) {
	s.log = logrus.StandardLogger()
	s.codePage = text.CodePageUTF8
}
