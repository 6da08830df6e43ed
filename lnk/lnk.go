// Package lnk decodes Windows Shell Link (.lnk) files.
package lnk

import (
	"fmt"
	"io"
	"time"

	goerrors "github.com/go-errors/errors"
)

// Info contains the decoded contents of a shortcut. A decoded Info is never
// modified afterwards; decoding again yields a new value.
type Info struct {
	TargetPath       string     `json:"targetPath"`
	RelativePath     string     `json:"relativePath,omitempty"`
	WorkingDirectory string     `json:"workingDirectory,omitempty"`
	Arguments        string     `json:"arguments,omitempty"`
	Description      string     `json:"description,omitempty"`
	IconPath         string     `json:"iconPath,omitempty"`
	IconIndex        uint32     `json:"iconIndex"`
	TargetSize       uint32     `json:"targetSize"`
	TargetAttributes uint16     `json:"targetAttributes"`
	Network          bool       `json:"network"`
	Volume           Volume     `json:"volume"`
	CreationTime     time.Time  `json:"creationTime"`
	AccessTime       time.Time  `json:"accessTime"`
	WriteTime        time.Time  `json:"writeTime"`
	Extra            *ExtraData `json:"extra,omitempty"`
}

// HasAttribute reports whether the target carries the given attribute.
func (i *Info) HasAttribute(attribute Attribute) bool {
	return Attribute(i.TargetAttributes)&attribute != 0
}

// HasCustomIcon reports whether the shortcut overrides the target's icon.
func (i *Info) HasCustomIcon() bool {
	return i.IconPath != ""
}

// Parse reads a complete shortcut from r and decodes it.
func Parse(r io.Reader) (*Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerrors.Wrap(fmt.Errorf("%w: %w", ErrIO, err), 1)
	}
	info, err := decode(data)
	if err != nil {
		return nil, goerrors.Wrap(err, 1)
	}
	return info, nil
}

// Decode decodes an in-memory shortcut. Any structural problem fails the
// whole decode with an error matching ErrInvalidFormat.
func Decode(data []byte) (*Info, error) {
	info, err := decode(data)
	if err != nil {
		return nil, goerrors.Wrap(err, 1)
	}
	return info, nil
}

func decode(data []byte) (*Info, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	target, err := readLinkInfo(data, h.linkInfoStart)
	if err != nil {
		return nil, err
	}

	info := &Info{
		TargetPath:       target.path,
		TargetSize:       h.targetSize,
		TargetAttributes: h.attributes,
		Network:          target.network,
		Volume:           target.volume,
		CreationTime:     h.creation,
		AccessTime:       h.access,
		WriteTime:        h.write,
	}
	end, err := readStrings(data, h.flags, h.linkInfoStart, info)
	if err != nil {
		return nil, err
	}
	info.Extra = readExtraData(data, end)
	return info, nil
}
