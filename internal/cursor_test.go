package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInteger(t *testing.T) {
	data := []byte{0x4C, 0x00, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12}

	b, err := ReadInteger[uint8](data, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0x4C), b)

	w, err := ReadInteger[uint16](data, 2)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), w)

	d, err := ReadInteger[uint32](data, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), d)

	d, err = ReadInteger[uint32](data, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12340000|0x4C), d)
}

func TestReadIntegerOutOfRange(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	for name, tt := range map[string]struct {
		data []byte
		read func([]byte) error
	}{
		"uint8 at end":     {data, func(b []byte) error { _, err := ReadInteger[uint8](b, 4); return err }},
		"uint16 straddle":  {data, func(b []byte) error { _, err := ReadInteger[uint16](b, 3); return err }},
		"uint32 straddle":  {data, func(b []byte) error { _, err := ReadInteger[uint32](b, 1); return err }},
		"negative offset":  {data, func(b []byte) error { _, err := ReadInteger[uint8](b, -1); return err }},
		"empty buffer":     {data[:0], func(b []byte) error { _, err := ReadInteger[uint16](b, 0); return err }},
		"nil buffer":       {nil, func(b []byte) error { _, err := ReadInteger[uint8](b, 0); return err }},
		"far past the end": {data, func(b []byte) error { _, err := ReadInteger[uint32](b, 1<<20); return err }},
	} {
		t.Run(name, func(t *testing.T) {
			err := tt.read(tt.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrOutOfRange))
			var rangeErr *OutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			require.Equal(t, len(tt.data), rangeErr.Length)
		})
	}
}

func TestOffset(t *testing.T) {
	data := make([]byte, 16)

	offset, err := Offset(data, 4, 8)
	require.NoError(t, err)
	require.Equal(t, 12, offset)

	offset, err = Offset(data, 4, 12)
	require.NoError(t, err)
	require.Equal(t, 16, offset)

	_, err = Offset(data, 4, 13)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Offset(data, 4, 0xFFFFFFFF)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Offset(data, 17, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}
