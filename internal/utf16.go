package internal

import "unicode/utf8"

const (
	genericSurrogateMask  = 0xF800
	genericSurrogateValue = 0xD800
	surrogateMask         = 0xFC00
	highSurrogateValue    = 0xD800
	lowSurrogateValue     = 0xDC00
	surrogateCodeMask     = 0x03FF
	surrogateCodeBits     = 10
	surrogateCodeOffset   = 0x10000
)

// DecodeUTF16 decodes the UTF-16LE scalar starting at offset and returns its
// UTF-8 encoding along with the number of source bytes consumed (2 or 4).
// end is the exclusive bound of the field being decoded. Unpaired or
// truncated surrogates decode to U+FFFD instead of failing.
func DecodeUTF16(data []byte, offset, end int) ([]byte, int, error) {
	high, err := ReadInteger[uint16](data, offset)
	if err != nil {
		return nil, 0, err
	}

	codepoint := rune(high)
	consumed := 2
	if high&genericSurrogateMask == genericSurrogateValue {
		codepoint = utf8.RuneError
		if high&surrogateMask == highSurrogateValue && end-offset >= 4 {
			low, err := ReadInteger[uint16](data, offset+2)
			if err != nil {
				return nil, 0, err
			}
			if low&surrogateMask == lowSurrogateValue {
				codepoint = (rune(high&surrogateCodeMask)<<surrogateCodeBits | rune(low&surrogateCodeMask)) + surrogateCodeOffset
				consumed = 4
			}
		}
	}
	return utf8.AppendRune(nil, codepoint), consumed, nil
}

// decodeUTF16Range transcodes every code unit in [offset, end).
func decodeUTF16Range(data []byte, offset, end int) (string, error) {
	if end <= offset {
		return "", nil
	}
	// catch a field that runs off the buffer before decoding any of it
	if err := checkRange(data, offset, end-offset); err != nil {
		return "", err
	}
	result := make([]byte, 0, end-offset)
	for offset+2 <= end {
		encoded, consumed, err := DecodeUTF16(data, offset, end)
		if err != nil {
			return "", err
		}
		result = append(result, encoded...)
		offset += consumed
	}
	return string(result), nil
}
