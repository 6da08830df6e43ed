package internal

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// ReadCountedUnicode reads a UTF-16LE string prefixed by a 16-bit count of
// code units. It returns the decoded string and the offset just past it.
func ReadCountedUnicode(data []byte, offset int) (string, int, error) {
	count, err := ReadInteger[uint16](data, offset)
	if err != nil {
		return "", 0, err
	}
	start := offset + 2
	end := start + int(count)*2
	value, err := decodeUTF16Range(data, start, end)
	if err != nil {
		return "", 0, err
	}
	return value, end, nil
}

// ReadFixedUnicode transcodes exactly length bytes of UTF-16LE at offset.
func ReadFixedUnicode(data []byte, offset, length int) (string, error) {
	if length < 0 {
		return "", &OutOfRangeError{Offset: offset, Size: length, Length: len(data)}
	}
	return decodeUTF16Range(data, offset, offset+length)
}

// ReadLatin1 reads a null-terminated Latin-1 string at offset. The returned
// length is the number of raw bytes before the terminator.
func ReadLatin1(data []byte, offset int) (string, int, error) {
	if err := checkRange(data, offset, 0); err != nil {
		return "", 0, err
	}
	length := bytes.IndexByte(data[offset:], 0)
	if length < 0 {
		return "", 0, &OutOfRangeError{Offset: offset, Size: len(data) - offset + 1, Length: len(data)}
	}
	return latin1(data[offset:offset+length]), length, nil
}

func latin1(raw []byte) string {
	// every byte value is defined in ISO 8859-1, so decoding cannot fail
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// ReadString reads a null-terminated Latin-1 string from a fixed-size field,
// stopping at the end of data when no terminator is present.
func ReadString(data []byte, offset int) string {
	if offset < 0 || offset >= len(data) {
		return ""
	}
	field := data[offset:]
	if end := bytes.IndexByte(field, 0); end >= 0 {
		field = field[:end]
	}
	return latin1(field)
}

// ReadUnicode reads a null-terminated UTF-16LE string from a fixed-size
// field, stopping at the end of data when no terminator is present.
func ReadUnicode(data []byte, offset int) string {
	if offset < 0 || offset >= len(data) {
		return ""
	}
	end := offset
	for end+2 <= len(data) && (data[end] != 0 || data[end+1] != 0) {
		end += 2
	}
	value, err := decodeUTF16Range(data, offset, end)
	if err != nil {
		return ""
	}
	return value
}
