package text

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// CodePageUTF8 is the default: names are taken as-is
const CodePageUTF8 = 65001

// DecoderForCodePage returns the decoder for a Windows/IBM code page number.
// A nil decoder means the input is already UTF-8.
func DecoderForCodePage(codePage int) (*encoding.Decoder, error) {
	switch codePage {
	case 0, CodePageUTF8:
		return nil, nil
	case 1252:
		return charmap.Windows1252.NewDecoder(), nil
	case 1250:
		return charmap.Windows1250.NewDecoder(), nil
	case 1251:
		return charmap.Windows1251.NewDecoder(), nil
	case 28591:
		return charmap.ISO8859_1.NewDecoder(), nil
	case 437:
		return charmap.CodePage437.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported code page %d", codePage)
	}
}

// CodePageName returns a human readable name for a supported code page
func CodePageName(codePage int) string {
	switch codePage {
	case 0, CodePageUTF8:
		return "UTF-8"
	case 1252:
		return "Windows-1252 (Western European)"
	case 1250:
		return "Windows-1250 (Central European)"
	case 1251:
		return "Windows-1251 (Cyrillic)"
	case 28591:
		return "ISO-8859-1 (Latin-1)"
	case 437:
		return "CP437 (IBM PC)"
	default:
		return "Unknown"
	}
}
