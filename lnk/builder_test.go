package lnk

import (
	"encoding/binary"
	"unicode/utf16"
)

var shellLinkCLSID = []byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}

// testLink assembles shortcut bytes for the decoder tests.
type testLink struct {
	attributes uint16
	targetSize uint32
	iconIndex  uint32
	creation   uint64
	idList     []byte

	unicode    bool
	network    bool
	volumeType VolumeType
	serial     uint32
	volumeName string
	path       string
	suffix     string

	share     string
	drive     string
	remainder string

	description      []uint16
	relativePath     string
	workingDirectory string
	arguments        string
	iconPath         string

	extra [][]byte
}

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func putUint16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}

func putUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func latin1Bytes(s string) []byte {
	raw := []byte{}
	for _, r := range s {
		if r > 0xFF {
			r = '?'
		}
		raw = append(raw, byte(r))
	}
	return append(raw, 0)
}

// ansiUnits maps every UTF-16 code unit onto one byte so that the ANSI
// path is half the length of its UTF-16 counterpart.
func ansiUnits(s string) []byte {
	raw := []byte{}
	for _, unit := range units(s) {
		if unit > 0xFF {
			unit = '?'
		}
		raw = append(raw, byte(unit))
	}
	return append(raw, 0)
}

func countedString(b []byte, value []uint16) []byte {
	b = putUint16(b, uint16(len(value)))
	for _, unit := range value {
		b = putUint16(b, unit)
	}
	return b
}

func (l testLink) linkInfo() []byte {
	headerSize := uint32(linkInfoLegacy)
	if l.unicode {
		headerSize = linkInfoUnicode
	}

	var body []byte
	var flags, volumeOffset, pathOffset, networkOffset, suffixOffset uint32
	var unicodePathOffset, unicodeSuffixOffset uint32
	if l.network {
		flags = 0x02
		networkOffset = headerSize
		names := append(latin1Bytes(l.share), latin1Bytes(l.drive)...)
		names = append(names, latin1Bytes(l.remainder)...)
		body = putUint32(body, uint32(20+len(names)))
		body = putUint32(body, 0x03)
		body = putUint32(body, 20)
		body = putUint32(body, 0)
		body = putUint32(body, 0x00020000)
		body = append(body, names...)
		// empty common path suffix
		suffixOffset = headerSize + uint32(len(body))
		body = append(body, 0)
	} else {
		flags = 0x01
		volumeOffset = headerSize
		label := latin1Bytes(l.volumeName)
		body = putUint32(body, uint32(16+len(label)))
		body = putUint32(body, uint32(l.volumeType))
		body = putUint32(body, l.serial)
		body = putUint32(body, 0x10)
		body = append(body, label...)

		pathOffset = headerSize + uint32(len(body))
		if l.unicode {
			body = append(body, ansiUnits(l.path)...)
		} else {
			body = append(body, latin1Bytes(l.path)...)
		}
		suffixOffset = headerSize + uint32(len(body))
		body = append(body, latin1Bytes(l.suffix)...)

		if l.unicode {
			unicodePathOffset = headerSize + uint32(len(body))
			for _, unit := range units(l.path) {
				body = putUint16(body, unit)
			}
			body = putUint16(body, 0)
			unicodeSuffixOffset = headerSize + uint32(len(body))
			for _, unit := range units(l.suffix) {
				body = putUint16(body, unit)
			}
			body = putUint16(body, 0)
		}
	}

	info := putUint32(nil, headerSize+uint32(len(body)))
	info = putUint32(info, headerSize)
	info = putUint32(info, flags)
	info = putUint32(info, volumeOffset)
	info = putUint32(info, pathOffset)
	info = putUint32(info, networkOffset)
	info = putUint32(info, suffixOffset)
	if l.unicode {
		info = putUint32(info, unicodePathOffset)
		info = putUint32(info, unicodeSuffixOffset)
	}
	return append(info, body...)
}

func (l testLink) flags() uint8 {
	flags := uint8(0x01 | 0x02 | 0x80)
	if l.description != nil {
		flags |= hasDescription
	}
	if l.relativePath != "" {
		flags |= hasRelativePath
	}
	if l.workingDirectory != "" {
		flags |= hasWorkingDirectory
	}
	if l.arguments != "" {
		flags |= hasArguments
	}
	if l.iconPath != "" {
		flags |= hasCustomIcon
	}
	return flags
}

// build returns the encoded shortcut without its trailing terminal block.
func (l testLink) build() []byte {
	header := make([]byte, 76)
	header[0] = headerMagic
	copy(header[4:20], shellLinkCLSID)
	header[flagsOffset] = l.flags()
	binary.LittleEndian.PutUint16(header[attributesOffset:], l.attributes)
	binary.LittleEndian.PutUint64(header[creationOffset:], l.creation)
	binary.LittleEndian.PutUint32(header[targetSizeOffset:], l.targetSize)
	binary.LittleEndian.PutUint32(header[iconIndexOffset:], l.iconIndex)

	data := putUint16(header, uint16(len(l.idList)))
	data = append(data, l.idList...)
	data = append(data, l.linkInfo()...)

	if l.description != nil {
		data = countedString(data, l.description)
	}
	for _, value := range []string{l.relativePath, l.workingDirectory, l.arguments, l.iconPath} {
		if value != "" {
			data = countedString(data, units(value))
		}
	}
	for _, block := range l.extra {
		data = append(data, block...)
	}
	return data
}

func (l testLink) bytes() []byte {
	return putUint32(l.build(), 0)
}

func pathBlock(signature uint32, ansi, unicode string) []byte {
	block := make([]byte, pathBlockSize)
	binary.LittleEndian.PutUint32(block[0:], pathBlockSize)
	binary.LittleEndian.PutUint32(block[4:], signature)
	copy(block[ansiPathStart:ansiPathEnd], ansi)
	for i, unit := range units(unicode) {
		binary.LittleEndian.PutUint16(block[unicodePathStart+i*2:], unit)
	}
	return block
}

func shimBlock(layer string) []byte {
	block := make([]byte, minShimBlockSize)
	binary.LittleEndian.PutUint32(block[0:], minShimBlockSize)
	binary.LittleEndian.PutUint32(block[4:], shimSignature)
	for i, unit := range units(layer) {
		binary.LittleEndian.PutUint16(block[blockHeaderSize+i*2:], unit)
	}
	return block
}

func opaqueBlock(signature uint32, size int) []byte {
	block := make([]byte, size)
	binary.LittleEndian.PutUint32(block[0:], uint32(size))
	binary.LittleEndian.PutUint32(block[4:], signature)
	return block
}
