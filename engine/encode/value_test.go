package encode_test

import (
	"testing"

	"github.com/mklane/sqleval/engine/encode"
	"github.com/mklane/sqleval/sql"
)

func TestVarint(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1<<32 - 1, 1 << 40, 1<<64 - 1}

	for _, u := range cases {
		buf := encode.EncodeVarint(nil, u)
		rest, ret, ok := encode.DecodeVarint(buf)
		if !ok {
			t.Errorf("DecodeVarint(%d) failed", u)
		} else if ret != u {
			t.Errorf("DecodeVarint(%d) got %d", u, ret)
		} else if len(rest) != 0 {
			t.Errorf("DecodeVarint(%d) left %d bytes", u, len(rest))
		}
	}

	_, _, ok := encode.DecodeVarint(nil)
	if ok {
		t.Error("DecodeVarint(nil) did not fail")
	}
	_, _, ok = encode.DecodeVarint([]byte{0x80})
	if ok {
		t.Error("DecodeVarint(incomplete) did not fail")
	}
}

func TestZigzag64(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 1024, -1024, 1<<63 - 1, -1 << 63}

	for _, n := range cases {
		buf := encode.EncodeZigzag64(nil, n)
		rest, ret, ok := encode.DecodeZigzag64(buf)
		if !ok {
			t.Errorf("DecodeZigzag64(%d) failed", n)
		} else if ret != n {
			t.Errorf("DecodeZigzag64(%d) got %d", n, ret)
		} else if len(rest) != 0 {
			t.Errorf("DecodeZigzag64(%d) left %d bytes", n, len(rest))
		}
	}
}

func TestValue(t *testing.T) {
	cases := []sql.Value{
		nil,
		sql.BoolValue(true),
		sql.BoolValue(false),
		sql.Int64Value(0),
		sql.Int64Value(123),
		sql.Int64Value(-456),
		sql.Int64Value(1<<63 - 1),
		sql.Float64Value(0),
		sql.Float64Value(1.5),
		sql.Float64Value(-123.456),
		sql.StringValue(""),
		sql.StringValue("abc"),
		sql.StringValue("quoted 'string'"),
	}

	for _, val := range cases {
		buf := encode.EncodeValue(val)
		ret, ok := encode.DecodeValue(buf)
		if !ok {
			t.Errorf("DecodeValue(%s) failed", sql.Format(val))
		} else if !sql.Equal(ret, val) {
			t.Errorf("DecodeValue(%s) got %s", sql.Format(val), sql.Format(ret))
		}
	}
}

func TestDecodeValueErrors(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{99},
		{1},
		{2},
		{3, 1, 2, 3},
		{4, 5, 'a', 'b'},
	}

	for _, buf := range cases {
		val, ok := encode.DecodeValue(buf)
		if ok {
			t.Errorf("DecodeValue(%v) got %s did not fail", buf, sql.Format(val))
		}
	}
}
