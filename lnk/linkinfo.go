package lnk

import "github.com/andrewstucki/lnkinfo/internal"

const (
	linkInfoLegacy  = 0x1C
	linkInfoUnicode = 0x24

	linkInfoNetworkFlag = 0x02

	linkInfoHeaderSizeOffset = 4
	linkInfoFlagsOffset      = 8
	volumeTableOffset        = 12
	localPathOffset          = 16
	networkShareOffset       = 20
	unicodePathOffset        = 28

	volumeTypeOffset   = 4
	volumeSerialOffset = 8
	volumeNameOffset   = 16
	shareNameOffset    = 20
)

type linkInfo struct {
	path    string
	network bool
	volume  Volume
}

func readLinkInfo(data []byte, start int) (linkInfo, error) {
	var info linkInfo

	structureSize, err := readUint8(data, start+linkInfoHeaderSizeOffset, "link info structure size")
	if err != nil {
		return info, err
	}
	if structureSize != linkInfoLegacy && structureSize != linkInfoUnicode {
		return info, invalid("link info structure size", start+linkInfoHeaderSizeOffset, "unrecognized value 0x%02X", structureSize)
	}

	flags, err := readUint8(data, start+linkInfoFlagsOffset, "link info flags")
	if err != nil {
		return info, err
	}
	info.network = flags&linkInfoNetworkFlag != 0

	if info.network {
		err = readNetworkTarget(data, start, &info)
	} else {
		err = readLocalTarget(data, start, structureSize == linkInfoUnicode, &info)
	}
	return info, err
}

func readLocalTarget(data []byte, start int, unicode bool, info *linkInfo) error {
	relative, err := readUint32(data, start+volumeTableOffset, "volume table offset")
	if err != nil {
		return err
	}
	volumeOffset, err := resolve(data, start, relative, "volume table")
	if err != nil {
		return err
	}

	volumeType, err := readUint32(data, volumeOffset+volumeTypeOffset, "volume type")
	if err != nil {
		return err
	}
	serial, err := readUint32(data, volumeOffset+volumeSerialOffset, "volume serial")
	if err != nil {
		return err
	}
	name, _, err := internal.ReadLatin1(data, volumeOffset+volumeNameOffset)
	if err != nil {
		return fieldError("volume name", volumeOffset+volumeNameOffset, err)
	}
	info.volume = Volume{Type: VolumeType(volumeType), Serial: serial, Name: name}

	relative, err = readUint32(data, start+localPathOffset, "local path offset")
	if err != nil {
		return err
	}
	pathOffset, err := resolve(data, start, relative, "local path")
	if err != nil {
		return err
	}
	path, length, err := internal.ReadLatin1(data, pathOffset)
	if err != nil {
		return fieldError("local path", pathOffset, err)
	}
	info.path = path

	if unicode {
		// the UTF-16 copy supersedes the Latin-1 path
		relative, err = readUint32(data, start+unicodePathOffset, "unicode local path offset")
		if err != nil {
			return err
		}
		unicodeOffset, err := resolve(data, start, relative, "unicode local path")
		if err != nil {
			return err
		}
		path, err = internal.ReadFixedUnicode(data, unicodeOffset, length*2)
		if err != nil {
			return fieldError("unicode local path", unicodeOffset, err)
		}
		info.path = path
	}
	return nil
}

func readNetworkTarget(data []byte, start int, info *linkInfo) error {
	relative, err := readUint32(data, start+networkShareOffset, "network share offset")
	if err != nil {
		return err
	}
	shareOffset, err := resolve(data, start, relative, "network share")
	if err != nil {
		return err
	}

	offset := shareOffset + shareNameOffset
	share, length, err := internal.ReadLatin1(data, offset)
	if err != nil {
		return fieldError("share name", offset, err)
	}
	info.volume = Volume{Type: NetworkDrive, Serial: 0, Name: share}

	offset += length + 1
	drive, length, err := internal.ReadLatin1(data, offset)
	if err != nil {
		return fieldError("network drive", offset, err)
	}
	offset += length + 1
	remainder, _, err := internal.ReadLatin1(data, offset)
	if err != nil {
		return fieldError("network path", offset, err)
	}
	info.path = drive + `\` + remainder
	return nil
}
