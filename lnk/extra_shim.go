package lnk

import "github.com/andrewstucki/lnkinfo/internal"

// Shim names the compatibility layer applied when the target is launched.
type Shim struct {
	LayerName string `json:"layerName"`
}

func parseExtraShim(size uint32, data []byte) (*Shim, error) {
	if size < minShimBlockSize {
		return nil, invalid("shim block", 0, "block size 0x%08X too small", size)
	}
	return &Shim{
		LayerName: internal.ReadUnicode(data, blockHeaderSize),
	}, nil
}
