package memkv_test

import (
	"testing"

	"github.com/mklane/sqleval/engine/memkv"
	"github.com/mklane/sqleval/engine/test"
)

func TestKV(t *testing.T) {
	test.RunKVTest(t, memkv.Engine{}, "", false)
}
