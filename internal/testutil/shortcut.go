package testutil

import (
	"encoding/binary"
	"unicode/utf16"
)

// Shortcut builds a local shortcut to an ASCII target with a working
// directory.
func Shortcut(target, workingDirectory string) []byte {
	le := binary.LittleEndian
	data := make([]byte, 78)
	data[0] = 0x4C
	data[20] = 0x02 | 0x10
	le.PutUint16(data[24:], 0x0020)
	le.PutUint32(data[52:], 12)

	volume := le.AppendUint32(nil, 16+6)
	volume = le.AppendUint32(volume, 3)
	volume = le.AppendUint32(volume, 0xCAFEBABE)
	volume = le.AppendUint32(volume, 0x10)
	volume = append(volume, "Local\x00"...)
	path := append([]byte(target), 0)

	info := le.AppendUint32(nil, uint32(0x1C+len(volume)+len(path)))
	info = le.AppendUint32(info, 0x1C)
	info = le.AppendUint32(info, 0x01)
	info = le.AppendUint32(info, 0x1C)
	info = le.AppendUint32(info, uint32(0x1C+len(volume)))
	info = le.AppendUint32(info, 0)
	info = le.AppendUint32(info, 0)
	info = append(info, volume...)
	info = append(info, path...)
	data = append(data, info...)

	units := utf16.Encode([]rune(workingDirectory))
	data = le.AppendUint16(data, uint16(len(units)))
	for _, unit := range units {
		data = le.AppendUint16(data, unit)
	}
	return le.AppendUint32(data, 0)
}
