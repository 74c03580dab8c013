package pebble

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/mklane/sqleval/engine/kv"
)

type Engine struct{}

type database struct {
	mutex sync.Mutex
	db    *pebble.DB
}

type readTx struct {
	snap *pebble.Snapshot
}

type writeTx struct {
	db    *database
	batch *pebble.Batch
	done  bool
}

type iterator struct {
	it     *pebble.Iterator
	prefix []byte
}

func (Engine) Open(path string) (kv.DB, error) {
	os.MkdirAll(path, 0755)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &database{db: db}, nil
}

func (db *database) ReadTx() (kv.ReadTx, error) {
	return readTx{db.db.NewSnapshot()}, nil
}

// Write transactions are serialized; an indexed batch sees its own writes.
func (db *database) WriteTx() (kv.WriteTx, error) {
	db.mutex.Lock()
	return &writeTx{
		db:    db,
		batch: db.db.NewIndexedBatch(),
	}, nil
}

func (db *database) Close() error {
	return db.db.Close()
}

func get(key []byte, vf func(val []byte) error,
	fn func(key []byte) ([]byte, io.Closer, error)) error {

	val, closer, err := fn(key)
	if err == pebble.ErrNotFound {
		return kv.ErrKeyNotFound
	} else if err != nil {
		return err
	}
	defer closer.Close()
	return vf(val)
}

func (rtx readTx) Discard() {
	rtx.snap.Close()
}

func (rtx readTx) Get(key []byte, vf func(val []byte) error) error {
	return get(key, vf, rtx.snap.Get)
}

func (rtx readTx) Iterate(prefix []byte) kv.Iterator {
	return &iterator{
		it:     rtx.snap.NewIter(nil),
		prefix: prefix,
	}
}

func (wtx *writeTx) Discard() {
	if wtx.done {
		return
	}
	wtx.done = true
	wtx.batch.Close()
	wtx.db.mutex.Unlock()
}

func (wtx *writeTx) Commit() error {
	wtx.done = true
	err := wtx.batch.Commit(pebble.Sync)
	wtx.db.mutex.Unlock()
	return err
}

func (wtx *writeTx) Get(key []byte, vf func(val []byte) error) error {
	return get(key, vf, wtx.batch.Get)
}

func (wtx *writeTx) Iterate(prefix []byte) kv.Iterator {
	return &iterator{
		it:     wtx.batch.NewIter(nil),
		prefix: prefix,
	}
}

func (wtx *writeTx) Delete(key []byte) error {
	return wtx.batch.Delete(key, nil)
}

func (wtx *writeTx) Set(key []byte, val []byte) error {
	return wtx.batch.Set(key, val, nil)
}

func (it *iterator) Close() {
	it.it.Close()
}

func (it *iterator) Key() []byte {
	if !it.Valid() {
		return nil
	}
	return it.it.Key()
}

func (it *iterator) Next() {
	it.it.Next()
}

func (it *iterator) Rewind() {
	it.it.SeekGE(it.prefix)
}

func (it *iterator) Valid() bool {
	return it.it.Valid() && bytes.HasPrefix(it.it.Key(), it.prefix)
}

func (it *iterator) Value(vf func(val []byte) error) error {
	return vf(it.it.Value())
}
