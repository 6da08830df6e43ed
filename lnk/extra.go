package lnk

import "github.com/andrewstucki/lnkinfo/internal"

const (
	blockHeaderSize  = 8
	terminalBlockMax = 4

	pathBlockSize    = 0x00000314
	minShimBlockSize = 0x00000088
	ansiPathStart    = 8
	ansiPathEnd      = 268
	unicodePathStart = 268
	unicodePathEnd   = 788

	environmentSignature     = 0xA0000001
	darwinSignature          = 0xA0000006
	iconEnvironmentSignature = 0xA0000007
	shimSignature            = 0xA0000008
)

// ExtraData collects the recognised blocks trailing the string section.
type ExtraData struct {
	Environment     *Environment     `json:"environment,omitempty"`
	IconEnvironment *IconEnvironment `json:"iconEnvironment,omitempty"`
	Darwin          *Darwin          `json:"darwin,omitempty"`
	Shim            *Shim            `json:"shim,omitempty"`
	Unknown         []uint32         `json:"unknown,omitempty"`
}

func (e *ExtraData) empty() bool {
	return e.Environment == nil && e.IconEnvironment == nil && e.Darwin == nil && e.Shim == nil && len(e.Unknown) == 0
}

// readExtraData walks the size-prefixed blocks starting at offset. A block
// smaller than four bytes terminates the list, as does the end of data. A
// malformed block ends the walk early; the blocks before it are kept.
func readExtraData(data []byte, offset int) *ExtraData {
	extra := &ExtraData{}
	for len(data)-offset >= terminalBlockMax {
		size, err := readUint32(data, offset, "extra data block size")
		if err != nil || size < blockHeaderSize {
			break
		}
		end, err := resolve(data, offset, size, "extra data block")
		if err != nil {
			break
		}
		signature, err := readUint32(data, offset+4, "extra data signature")
		if err != nil {
			break
		}
		if err := extra.add(signature, size, data[offset:end]); err != nil {
			break
		}
		offset = end
	}
	if extra.empty() {
		return nil
	}
	return extra
}

func (e *ExtraData) add(signature, size uint32, block []byte) (err error) {
	switch signature {
	case environmentSignature:
		e.Environment, err = parseExtraEnvironment(size, block)
	case iconEnvironmentSignature:
		e.IconEnvironment, err = parseExtraIconEnvironment(size, block)
	case darwinSignature:
		e.Darwin, err = parseExtraDarwin(size, block)
	case shimSignature:
		e.Shim, err = parseExtraShim(size, block)
	default:
		e.Unknown = append(e.Unknown, signature)
	}
	return err
}

func parsePathBlock(field string, size uint32, data []byte) (ansi, unicode string, err error) {
	if size != pathBlockSize {
		return "", "", invalid(field, 0, "unexpected block size 0x%08X", size)
	}
	ansi = internal.ReadString(data[ansiPathStart:ansiPathEnd], 0)
	unicode = internal.ReadUnicode(data[unicodePathStart:unicodePathEnd], 0)
	return ansi, unicode, nil
}
