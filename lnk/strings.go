package lnk

import "github.com/andrewstucki/lnkinfo/internal"

const (
	hasDescription      = 0x04
	hasRelativePath     = 0x08
	hasWorkingDirectory = 0x10
	hasArguments        = 0x20
	hasCustomIcon       = 0x40
)

// stringFields is walked in file order; each present field starts where the
// previous one ended.
var stringFields = []struct {
	flag  uint8
	field string
	set   func(*Info, string)
}{
	{hasDescription, "description", func(info *Info, value string) { info.Description = value }},
	{hasRelativePath, "relative path", func(info *Info, value string) { info.RelativePath = value }},
	{hasWorkingDirectory, "working directory", func(info *Info, value string) { info.WorkingDirectory = value }},
	{hasArguments, "command line arguments", func(info *Info, value string) { info.Arguments = value }},
	{hasCustomIcon, "icon location", func(info *Info, value string) { info.IconPath = value }},
}

// readStrings decodes the string section into info and returns the offset
// just past the last field read.
func readStrings(data []byte, flags uint8, linkInfoStart int, info *Info) (int, error) {
	size, err := readUint32(data, linkInfoStart, "link info size")
	if err != nil {
		return 0, err
	}
	cursor, err := resolve(data, linkInfoStart, size, "string section")
	if err != nil {
		return 0, err
	}

	for _, entry := range stringFields {
		if flags&entry.flag == 0 {
			continue
		}
		value, next, err := internal.ReadCountedUnicode(data, cursor)
		if err != nil {
			return 0, fieldError(entry.field, cursor, err)
		}
		entry.set(info, value)
		cursor = next
	}

	if flags&hasCustomIcon != 0 {
		// stored in the header, not in the string section
		if info.IconIndex, err = readUint32(data, iconIndexOffset, "icon index"); err != nil {
			return 0, err
		}
	}
	return cursor, nil
}
