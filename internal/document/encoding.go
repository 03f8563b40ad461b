package document

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// checkEncoding verifies data is UTF-8 text without stray control characters
// and returns it with any UTF-8 byte order mark removed. Only the first
// problem is reported.
func checkEncoding(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF32LE), bytes.HasPrefix(data, bomUTF32BE):
		return nil, &EncodingError{Message: "UTF-32 byte order mark found; documents must be UTF-8"}
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		return nil, &EncodingError{Message: "UTF-16 byte order mark found; documents must be UTF-8"}
	}
	data = bytes.TrimPrefix(data, bomUTF8)

	line, column := 1, 1
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &EncodingError{
				Line:    line,
				Column:  column,
				Message: fmt.Sprintf("invalid UTF-8 byte 0x%02X", data[offset]),
			}
		}
		switch {
		case r == '\n':
			line++
			column = 0
		case r == '\r':
		case r == '\t':
			return nil, &EncodingError{Line: line, Column: column, Message: "tab character found (indent with spaces only)"}
		case r < 0x20 || r == 0x7f:
			return nil, &EncodingError{Line: line, Column: column, Message: fmt.Sprintf("control character U+%04X found", r)}
		}
		offset += size
		column++
	}
	return data, nil
}
