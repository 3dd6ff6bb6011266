package log

import (
	"fmt"
	"strconv"
	"strings"
)

type fieldKind uint8

const (
	kindString fieldKind = iota
	kindBool
	kindHex8
	kindHex16
	kindAddr
	kindInt
	kindUint
	kindError
	kindStringer
)

// zfield is a key/value pair whose value is only formatted when the entry is
// emitted.
type zfield struct {
	key  string
	kind fieldKind
	num  uint64
	str  string
	obj  any // error or fmt.Stringer
}

func (f *zfield) format() string {
	switch f.kind {
	case kindString:
		return f.str
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindHex8:
		return hex(f.num, 2)
	case kindHex16:
		return hex(f.num, 4)
	case kindAddr:
		return hex(f.num, 6)
	case kindInt:
		return strconv.FormatInt(int64(f.num), 10)
	case kindUint:
		return strconv.FormatUint(f.num, 10)
	case kindError:
		if f.obj == nil {
			return "<nil>"
		}
		return f.obj.(error).Error()
	case kindStringer:
		return f.obj.(fmt.Stringer).String()
	}
	return ""
}

// hex formats v in lowercase hexadecimal, zero-padded to digits.
func hex(v uint64, digits int) string {
	s := strconv.FormatUint(v, 16)
	if len(s) >= digits {
		return s
	}
	return strings.Repeat("0", digits-len(s)) + s
}
