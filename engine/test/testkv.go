package test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mklane/sqleval/engine/kv"
)

func withReadTx(t *testing.T, db kv.DB, fn func(tx kv.ReadTx) error) {
	t.Helper()

	tx, err := db.ReadTx()
	if err != nil {
		t.Errorf("ReadTx() failed with %s", err)
		return
	}
	defer tx.Discard()

	err = fn(tx)
	if err != nil {
		t.Error(err)
	}
}

func withWriteTx(t *testing.T, db kv.DB, commit bool, fn func(tx kv.WriteTx) error) {
	t.Helper()

	tx, err := db.WriteTx()
	if err != nil {
		t.Errorf("WriteTx() failed with %s", err)
		return
	}
	defer tx.Discard()

	err = fn(tx)
	if err != nil {
		t.Error(err)
		return
	}
	if commit {
		err = tx.Commit()
		if err != nil {
			t.Errorf("Commit() failed with %s", err)
		}
	}
}

func getValue(tx kv.ReadTx, key string) (string, error) {
	var val string
	err := tx.Get([]byte(key), func(b []byte) error {
		val = string(b)
		return nil
	})
	return val, err
}

func checkGet(t *testing.T, db kv.DB, key, want string) {
	t.Helper()

	withReadTx(t, db,
		func(tx kv.ReadTx) error {
			val, err := getValue(tx, key)
			if err != nil {
				return fmt.Errorf("Get(%s) failed with %s", key, err)
			}
			if val != want {
				return fmt.Errorf("Get(%s) got %s want %s", key, val, want)
			}
			return nil
		})
}

func checkNotFound(t *testing.T, db kv.DB, key string) {
	t.Helper()

	withReadTx(t, db,
		func(tx kv.ReadTx) error {
			val, err := getValue(tx, key)
			if err == nil {
				return fmt.Errorf("Get(%s) got %s did not fail", key, val)
			}
			if err != kv.ErrKeyNotFound {
				return fmt.Errorf("Get(%s) failed with %s want ErrKeyNotFound", key, err)
			}
			return nil
		})
}

func checkIterate(t *testing.T, db kv.DB, prefix string, want []string) {
	t.Helper()

	withReadTx(t, db,
		func(tx kv.ReadTx) error {
			it := tx.Iterate([]byte(prefix))
			defer it.Close()

			var keys []string
			for it.Rewind(); it.Valid(); it.Next() {
				if !bytes.HasPrefix(it.Key(), []byte(prefix)) {
					return fmt.Errorf("Iterate(%s) got key %s outside the prefix",
						prefix, it.Key())
				}
				keys = append(keys, string(it.Key()))
			}

			if len(keys) != len(want) {
				return fmt.Errorf("Iterate(%s) got %v want %v", prefix, keys, want)
			}
			for i := range keys {
				if keys[i] != want[i] {
					return fmt.Errorf("Iterate(%s) got %v want %v", prefix, keys, want)
				}
			}
			return nil
		})
}

// RunKVTest exercises a store through one open database: reads, writes,
// prefix iteration, and discarded transactions. With durable set, the store
// is closed, reopened, and checked again.
func RunKVTest(t *testing.T, eng kv.Engine, path string, durable bool) {
	db, err := eng.Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed with %s", path, err)
	}

	checkNotFound(t, db, "var/a")

	withWriteTx(t, db, true,
		func(tx kv.WriteTx) error {
			for _, kval := range [][2]string{
				{"var/b", "2"}, {"var/a", "1"}, {"other/x", "9"}, {"var/c", "3"},
			} {
				err := tx.Set([]byte(kval[0]), []byte(kval[1]))
				if err != nil {
					return fmt.Errorf("Set(%s) failed with %s", kval[0], err)
				}
			}

			// A write transaction sees its own writes.
			val, err := getValue(tx, "var/a")
			if err != nil {
				return fmt.Errorf("Get(var/a) failed with %s", err)
			}
			if val != "1" {
				return fmt.Errorf("Get(var/a) got %s want 1", val)
			}
			return nil
		})

	checkGet(t, db, "var/a", "1")
	checkGet(t, db, "other/x", "9")
	checkIterate(t, db, "var/", []string{"var/a", "var/b", "var/c"})
	checkIterate(t, db, "zzz/", nil)

	// A discarded transaction leaves the store unchanged.
	withWriteTx(t, db, false,
		func(tx kv.WriteTx) error {
			err := tx.Set([]byte("var/d"), []byte("4"))
			if err != nil {
				return fmt.Errorf("Set(var/d) failed with %s", err)
			}
			return tx.Delete([]byte("var/a"))
		})

	checkNotFound(t, db, "var/d")
	checkGet(t, db, "var/a", "1")

	withWriteTx(t, db, true,
		func(tx kv.WriteTx) error {
			return tx.Delete([]byte("var/b"))
		})

	checkNotFound(t, db, "var/b")
	checkIterate(t, db, "var/", []string{"var/a", "var/c"})

	withWriteTx(t, db, true,
		func(tx kv.WriteTx) error {
			return tx.Set([]byte("var/a"), []byte("10"))
		})

	checkGet(t, db, "var/a", "10")

	err = db.Close()
	if err != nil {
		t.Fatalf("Close() failed with %s", err)
	}

	if !durable {
		return
	}

	db, err = eng.Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed with %s", path, err)
	}
	defer db.Close()

	checkGet(t, db, "var/a", "10")
	checkIterate(t, db, "var/", []string{"var/a", "var/c"})
}
