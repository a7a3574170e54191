package classfile

import "unicode/utf16"

// modifiedUTF8 encodes s the way class files store strings: U+0000 takes two
// bytes and supplementary characters are written as surrogate pairs.
func modifiedUTF8(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r != 0 && r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			out = appendThree(out, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			out = appendThree(out, hi)
			out = appendThree(out, lo)
		}
	}
	return out
}

func appendThree(out []byte, r rune) []byte {
	return append(out, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

// decodeModifiedUTF8 is the inverse of modifiedUTF8.
func decodeModifiedUTF8(b []byte) (string, bool) {
	var units []uint16
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", false
		}
	}
	return string(utf16.Decode(units)), true
}
