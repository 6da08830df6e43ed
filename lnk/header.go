package lnk

import "time"

const (
	headerMagic = 0x4C

	flagsOffset        = 20
	attributesOffset   = 24
	creationOffset     = 28
	accessOffset       = 36
	writeOffset        = 44
	targetSizeOffset   = 52
	iconIndexOffset    = 56
	idListSizeOffset   = 76
	idListStartOffset  = 78
	filetimeEpochDelta = 11644473600
	filetimeTicks      = 10000000
)

type header struct {
	flags         uint8
	attributes    uint16
	targetSize    uint32
	creation      time.Time
	access        time.Time
	write         time.Time
	linkInfoStart int
}

func readHeader(data []byte) (header, error) {
	var h header
	magic, err := readUint8(data, 0, "magic")
	if err != nil {
		return h, err
	}
	if magic != headerMagic {
		return h, invalid("magic", 0, "unexpected magic byte 0x%02X", magic)
	}

	idListSize, err := readUint16(data, idListSizeOffset, "id list size")
	if err != nil {
		return h, err
	}
	h.linkInfoStart = idListStartOffset + int(idListSize)

	if h.flags, err = readUint8(data, flagsOffset, "link flags"); err != nil {
		return h, err
	}
	if h.attributes, err = readUint16(data, attributesOffset, "target attributes"); err != nil {
		return h, err
	}
	if h.targetSize, err = readUint32(data, targetSizeOffset, "target size"); err != nil {
		return h, err
	}
	if h.creation, err = readFiletime(data, creationOffset, "creation time"); err != nil {
		return h, err
	}
	if h.access, err = readFiletime(data, accessOffset, "access time"); err != nil {
		return h, err
	}
	if h.write, err = readFiletime(data, writeOffset, "write time"); err != nil {
		return h, err
	}
	return h, nil
}

func readFiletime(data []byte, offset int, field string) (time.Time, error) {
	low, err := readUint32(data, offset, field)
	if err != nil {
		return time.Time{}, err
	}
	high, err := readUint32(data, offset+4, field)
	if err != nil {
		return time.Time{}, err
	}
	return filetimeToTime(uint64(high)<<32 | uint64(low)), nil
}

// filetimeToTime converts 100ns ticks since 1601-01-01 into UTC.
func filetimeToTime(ticks uint64) time.Time {
	if ticks == 0 {
		return time.Time{}
	}
	seconds := int64(ticks/filetimeTicks) - filetimeEpochDelta
	nanoseconds := int64(ticks%filetimeTicks) * 100
	return time.Unix(seconds, nanoseconds).UTC()
}
