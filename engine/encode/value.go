package encode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mklane/sqleval/sql"
)

const (
	nullValueTag    = 0
	boolValueTag    = 1
	int64ValueTag   = 2
	float64ValueTag = 3
	stringValueTag  = 4
)

func EncodeVarint(buf []byte, u uint64) []byte {
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}

func DecodeVarint(buf []byte) ([]byte, uint64, bool) {
	u, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, 0, false
	}
	return buf[n:], u, true
}

func EncodeZigzag64(buf []byte, n int64) []byte {
	return EncodeVarint(buf, uint64(n<<1)^uint64(n>>63))
}

func DecodeZigzag64(buf []byte) ([]byte, int64, bool) {
	buf, u, ok := DecodeVarint(buf)
	if !ok {
		return nil, 0, false
	}
	return buf, int64(u>>1) ^ -int64(u&1), true
}

func EncodeUint64(buf []byte, u uint64) []byte {
	return append(buf, byte(u>>56), byte(u>>48), byte(u>>40), byte(u>>32), byte(u>>24),
		byte(u>>16), byte(u>>8), byte(u))
}

// EncodeValue encodes one value as a tag byte followed by the payload; NULL is
// a bare tag.
func EncodeValue(val sql.Value) []byte {
	switch val := val.(type) {
	case nil:
		return []byte{nullValueTag}
	case sql.BoolValue:
		if val {
			return []byte{boolValueTag, 1}
		}
		return []byte{boolValueTag, 0}
	case sql.Int64Value:
		return EncodeZigzag64([]byte{int64ValueTag}, int64(val))
	case sql.Float64Value:
		return EncodeUint64([]byte{float64ValueTag}, math.Float64bits(float64(val)))
	case sql.StringValue:
		b := []byte(val)
		buf := EncodeVarint([]byte{stringValueTag}, uint64(len(b)))
		return append(buf, b...)
	default:
		panic(fmt.Sprintf("unexpected type for sql.Value: %T: %v", val, val))
	}
}

// DecodeValue decodes one encoded value; false means the buffer is not a
// complete encoded value.
func DecodeValue(buf []byte) (sql.Value, bool) {
	if len(buf) == 0 {
		return nil, false
	}
	tag := buf[0]
	buf = buf[1:]

	switch tag {
	case nullValueTag:
		return nil, len(buf) == 0
	case boolValueTag:
		if len(buf) != 1 {
			return nil, false
		}
		return sql.BoolValue(buf[0] != 0), true
	case int64ValueTag:
		buf, n, ok := DecodeZigzag64(buf)
		if !ok || len(buf) != 0 {
			return nil, false
		}
		return sql.Int64Value(n), true
	case float64ValueTag:
		if len(buf) != 8 {
			return nil, false
		}
		u := binary.BigEndian.Uint64(buf)
		return sql.Float64Value(math.Float64frombits(u)), true
	case stringValueTag:
		buf, u, ok := DecodeVarint(buf)
		if !ok || uint64(len(buf)) != u {
			return nil, false
		}
		return sql.StringValue(buf), true
	}
	return nil, false
}
