package memkv

import (
	"bytes"
	"errors"
	"sync"

	"github.com/google/btree"

	"github.com/mklane/sqleval/engine/kv"
)

// Engine is an in-memory store for testing and throwaway sessions; the path
// is ignored and nothing survives Close. Write transactions copy-on-write a
// clone of the tree and publish it on commit.
type Engine struct{}

type database struct {
	mutex sync.RWMutex
	tree  *btree.BTree
}

type readTx struct {
	db   *database
	tree *btree.BTree
}

type writeTx struct {
	readTx
}

type iterator struct {
	tree   *btree.BTree
	prefix []byte
	keys   [][]byte
	vals   [][]byte
}

type keyVal struct {
	key []byte
	val []byte
}

func (kval keyVal) Less(item btree.Item) bool {
	return bytes.Compare(kval.key, item.(keyVal).key) < 0
}

func (Engine) Open(path string) (kv.DB, error) {
	return &database{
		tree: btree.New(16),
	}, nil
}

func (db *database) ReadTx() (kv.ReadTx, error) {
	db.mutex.RLock()
	tree := db.tree
	db.mutex.RUnlock()

	return &readTx{db: db, tree: tree}, nil
}

func (db *database) WriteTx() (kv.WriteTx, error) {
	db.mutex.Lock()
	return &writeTx{readTx{db: db, tree: db.tree.Clone()}}, nil
}

func (db *database) Close() error {
	return nil
}

func (rtx *readTx) Discard() {
	rtx.tree = nil
}

func (rtx *readTx) Get(key []byte, vf func(val []byte) error) error {
	item := rtx.tree.Get(keyVal{key: key})
	if item == nil {
		return kv.ErrKeyNotFound
	}
	return vf(item.(keyVal).val)
}

func (rtx *readTx) Iterate(prefix []byte) kv.Iterator {
	return &iterator{
		tree:   rtx.tree,
		prefix: prefix,
	}
}

func (wtx *writeTx) Discard() {
	if wtx.tree == nil {
		return
	}
	wtx.tree = nil
	wtx.db.mutex.Unlock()
}

func (wtx *writeTx) Commit() error {
	if wtx.tree == nil {
		return errors.New("memkv: transaction already committed or discarded")
	}
	wtx.db.tree = wtx.tree
	wtx.tree = nil
	wtx.db.mutex.Unlock()
	return nil
}

func (wtx *writeTx) Delete(key []byte) error {
	wtx.tree.Delete(keyVal{key: key})
	return nil
}

func (wtx *writeTx) Set(key []byte, val []byte) error {
	wtx.tree.ReplaceOrInsert(keyVal{
		key: append([]byte(nil), key...),
		val: append([]byte(nil), val...),
	})
	return nil
}

func (it *iterator) Close() {
	it.keys = nil
	it.vals = nil
}

func (it *iterator) Key() []byte {
	if len(it.keys) == 0 {
		return nil
	}
	return it.keys[0]
}

func (it *iterator) Next() {
	if len(it.keys) > 0 {
		it.keys = it.keys[1:]
		it.vals = it.vals[1:]
	}
}

func (it *iterator) Rewind() {
	it.keys = nil
	it.vals = nil
	it.tree.AscendGreaterOrEqual(keyVal{key: it.prefix},
		func(item btree.Item) bool {
			kval := item.(keyVal)
			if !bytes.HasPrefix(kval.key, it.prefix) {
				return false
			}
			it.keys = append(it.keys, kval.key)
			it.vals = append(it.vals, kval.val)
			return true
		})
}

func (it *iterator) Valid() bool {
	return len(it.keys) > 0
}

func (it *iterator) Value(vf func(val []byte) error) error {
	return vf(it.vals[0])
}
