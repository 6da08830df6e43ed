package lnk

import "github.com/andrewstucki/lnkinfo/internal"

func readUint8(data []byte, offset int, field string) (uint8, error) {
	value, err := internal.ReadInteger[uint8](data, offset)
	return value, fieldError(field, offset, err)
}

func readUint16(data []byte, offset int, field string) (uint16, error) {
	value, err := internal.ReadInteger[uint16](data, offset)
	return value, fieldError(field, offset, err)
}

func readUint32(data []byte, offset int, field string) (uint32, error) {
	value, err := internal.ReadInteger[uint32](data, offset)
	return value, fieldError(field, offset, err)
}

func resolve(data []byte, base int, relative uint32, field string) (int, error) {
	offset, err := internal.Offset(data, base, relative)
	return offset, fieldError(field, base, err)
}
