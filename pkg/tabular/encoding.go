package tabular

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names accepted by WithEncoding. Lookup is case-insensitive and
// common aliases (utf8, iso-8859-1, cp1252) are normalized to these.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin-1"
	EncodingWindows1252 = "windows-1252"
)

func normalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1
	case "windows-1252", "cp1252", "win-1252":
		return EncodingWindows1252
	default:
		return ""
	}
}

// decodingReader wraps r so the stream comes out as UTF-8. The UTF-8 path
// still goes through a BOM-aware transformer: spreadsheet exports routinely
// start with a byte order mark that would otherwise end up glued to the
// first column name.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	switch normalizeEncoding(name) {
	case EncodingUTF8:
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingWindows1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, errors.Join(ErrUnsupportedEncoding, fmt.Errorf("encoding %q", name))
	}
}

// encodingWriter wraps w so UTF-8 input is stored in the requested encoding.
// The returned writer must be closed to flush transformer state; the UTF-8
// passthrough closes to a no-op.
func encodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch normalizeEncoding(name) {
	case EncodingUTF8:
		return nopWriteCloser{w}, nil
	case EncodingLatin1:
		return transform.NewWriter(w, charmap.ISO8859_1.NewEncoder()), nil
	case EncodingWindows1252:
		return transform.NewWriter(w, charmap.Windows1252.NewEncoder()), nil
	default:
		return nil, errors.Join(ErrUnsupportedEncoding, fmt.Errorf("encoding %q", name))
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
