// Package internal holds bounds-checked readers shared by the decoders.
package internal

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every bounds failure produced in this package.
var ErrOutOfRange = errors.New("offset out of range")

// OutOfRangeError describes a read that would run past the end of a buffer.
type OutOfRangeError struct {
	Offset int
	Size   int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d exceeds buffer length %d", e.Size, e.Offset, e.Length)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkRange(data []byte, offset, size int) error {
	if offset < 0 || size < 0 || offset > len(data)-size {
		return &OutOfRangeError{Offset: offset, Size: size, Length: len(data)}
	}
	return nil
}

// ReadInteger reads a little-endian unsigned integer of type T at offset.
func ReadInteger[T uint8 | uint16 | uint32](data []byte, offset int) (T, error) {
	var value T
	switch any(value).(type) {
	case uint8:
		if err := checkRange(data, offset, 1); err != nil {
			return 0, err
		}
		return T(data[offset]), nil
	case uint16:
		if err := checkRange(data, offset, 2); err != nil {
			return 0, err
		}
		return T(binary.LittleEndian.Uint16(data[offset:])), nil
	default:
		if err := checkRange(data, offset, 4); err != nil {
			return 0, err
		}
		return T(binary.LittleEndian.Uint32(data[offset:])), nil
	}
}

// Offset resolves an offset stored relative to base, rejecting anything
// that would land past the end of data.
func Offset(data []byte, base int, relative uint32) (int, error) {
	if base < 0 || base > len(data) || uint64(relative) > uint64(len(data)-base) {
		return 0, &OutOfRangeError{Offset: base, Size: int(relative), Length: len(data)}
	}
	return base + int(relative), nil
}
