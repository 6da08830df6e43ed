package lnk

import "encoding/json"

// Attribute is a single bit of the target's file attribute mask.
type Attribute uint16

// Target file attributes recorded in the shortcut header.
const (
	ReadOnly         Attribute = 0x0001
	Hidden           Attribute = 0x0002
	System           Attribute = 0x0004
	VolumeLabel      Attribute = 0x0008
	Directory        Attribute = 0x0010
	Archive          Attribute = 0x0020
	NtfsEfs          Attribute = 0x0040
	Normal           Attribute = 0x0080
	Temporary        Attribute = 0x0100
	Sparse           Attribute = 0x0200
	ReparsePointData Attribute = 0x0400
	Compressed       Attribute = 0x0800
	Offline          Attribute = 0x1000
)

// VolumeType is the drive type of the volume holding the target.
type VolumeType uint32

// Drive types, numbered as in the volume table.
const (
	Unknown VolumeType = iota
	NoRootDirectory
	Removable
	HardDrive
	NetworkDrive
	CdRom
	RamDrive
)

var volumeTypeNames = map[VolumeType]string{
	Unknown:         "Unknown",
	NoRootDirectory: "NoRootDirectory",
	Removable:       "Removable",
	HardDrive:       "HardDrive",
	NetworkDrive:    "NetworkDrive",
	CdRom:           "CdRom",
	RamDrive:        "RamDrive",
}

func (v VolumeType) String() string {
	if name, ok := volumeTypeNames[v]; ok {
		return name
	}
	return volumeTypeNames[Unknown]
}

// MarshalJSON renders the volume type by name.
func (v VolumeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Volume identifies the drive or share the target lives on.
type Volume struct {
	Type   VolumeType `json:"type"`
	Serial uint32     `json:"serial"`
	Name   string     `json:"name,omitempty"`
}
